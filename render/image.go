// Package render provides drawing surfaces for the ternary package: a
// raster surface backed by fogleman/gg and a vector surface emitting
// SVG.
package render

import (
	"image"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/ternplot/ternary"
)

// Padding around the simplex so ticks and labels, which extend outside
// the triangle, stay inside the image.
const imagePadding = 40

// Image is a raster Surface backed by a gg context. The context
// carries a flipped, scaled transform so draw calls use plot
// coordinates directly, with the origin at the bottom left.
type Image struct {
	ctx   *gg.Context
	scale float64
}

// NewImage allocates a widthPx-wide canvas sized for a simplex of the
// given scale; the height follows from the triangle's aspect ratio.
func NewImage(widthPx int, scale float64) *Image {
	pxPerUnit := float64(widthPx-2*imagePadding) / scale
	heightPx := int(ternary.Sqrt3Over2*scale*pxPerUnit) + 2*imagePadding

	ctx := gg.NewContext(widthPx, heightPx)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.SetFontFace(basicfont.Face7x13)

	// Flip the context so the origin is at the bottom left, then pad
	// and scale into plot units.
	ctx.Translate(0, float64(heightPx))
	ctx.Scale(1, -1)
	ctx.Translate(imagePadding, imagePadding)
	ctx.Scale(pxPerUnit, pxPerUnit)

	return &Image{ctx: ctx, scale: scale}
}

func (img *Image) AddLine(seg ternary.Segment, style ternary.Style) {
	img.applyStroke(style)
	img.ctx.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
	img.ctx.Stroke()
}

func (img *Image) AddText(at ternary.Point, label string, style ternary.Style) {
	// gg transforms only the anchor point, so text stays upright in the
	// flipped context.
	img.ctx.SetHexColor(style.Color("#000000"))
	img.ctx.DrawStringAnchored(label, at.X, at.Y, 0.5, 0.5)
}

// applyStroke maps the loose style options onto the gg context. Line
// widths and dash lengths are in output pixels, not plot units.
func (img *Image) applyStroke(style ternary.Style) {
	c := img.ctx
	c.SetHexColor(style.Color("#000000"))
	c.SetLineWidth(style.LineWidth(1))
	switch style.LineStyle("-") {
	case ":":
		c.SetDash(1, 3)
	case "--":
		c.SetDash(6, 6)
	case "-.":
		c.SetDash(6, 3, 1, 3)
	default:
		c.SetDash()
	}
}

// Context exposes the underlying gg context for callers that want to
// draw more than line work.
func (img *Image) Context() *gg.Context {
	return img.ctx
}

// Image returns the rendered image.
func (img *Image) Image() image.Image {
	return img.ctx.Image()
}

// SavePNG writes the image to path.
func (img *Image) SavePNG(path string) error {
	if err := img.ctx.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Preview writes the image to a temp file and cats it to stdout using
// iTerm's inline image protocol.
func (img *Image) Preview() error {
	f, err := os.CreateTemp("", "ternary-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	f.Close()
	defer os.Remove(f.Name())
	if err := img.ctx.SavePNG(f.Name()); err != nil {
		return errors.Wrap(err, "rendering preview")
	}
	imgcat.CatFile(f.Name(), os.Stdout)
	return nil
}
