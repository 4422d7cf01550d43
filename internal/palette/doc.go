// Package palette maps normalized scalars to colors.
//
// A [Palette] is anything that can evaluate a color at a position in
// [0, 1]. Gradient palettes are blended in CIE-Lab space with go-colorful;
// the diverging and luminance maps come from gonum's moreland package.
// [Lookup] resolves palette names, [ColorMapper] turns a raw value and a
// range into a hex color string.
package palette
