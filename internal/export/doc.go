// Package export rasterizes recorded figures and serializes diagram data.
//
//   - [WriteSVG]: a direct SVG rendering using svgo
//   - [WritePlot]: PNG, SVG or PDF through gonum/plot, with a colorbar axis
//   - [CellsGeoJSON], [TrajectoriesGeoJSON]: geometry in projected coordinates
package export
