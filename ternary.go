// A small geometry package for ternary (simplex) plots.
//
// This package computes the line work of a ternary plot: the triangle
// boundary, interior gridlines, and axis tick marks. Points are given
// in barycentric coordinates relative to a simplex of a chosen scale,
// projected into 2D, and handed to a drawing surface as plain line
// segments. The package never renders anything itself; see the render
// subpackage for raster (fogleman/gg) and SVG surfaces, or implement
// Surface yourself.
package ternary

// Surface is the drawing target for all operations in this package.
// Implementations receive already-projected Cartesian segments along
// with the caller's style options, forwarded verbatim.
type Surface interface {
	AddLine(seg Segment, style Style)
}

// TextSurface is an optional upgrade for surfaces that can also draw
// text. Ticks emits labels through it when the surface supports it, and
// quietly skips them otherwise.
type TextSurface interface {
	Surface
	AddText(at Point, label string, style Style)
}
