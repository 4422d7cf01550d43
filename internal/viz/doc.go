// Package viz renders ternary diagrams in the terminal.
//
//   - [Heatmap]: lattice values as lipgloss-colored cells stacked into a triangle
//   - [Sketch]: line and trajectory figures on a braille [Canvas]
//   - [Swatch], [Legend]: palette strips
//   - [Explorer]: a Bubble Tea model for browsing scalar fields
//
// # Key Bindings
//
//	+/-  - Change the lattice resolution
//	←/→  - Cycle functions
//	p    - Cycle palettes
//	b    - Toggle boundary points
//	t    - Cycle color themes
//	q    - Quit
package viz
