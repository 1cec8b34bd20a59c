package render

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ternplot/ternary"
)

// SVG is a vector Surface that accumulates line and text elements and
// writes a standalone SVG document. The Y axis is flipped so the
// simplex sits with its bottom edge down, matching the raster surface.
type SVG struct {
	scale  float64
	margin float64
	elems  []string
}

// NewSVG returns an empty document sized for a simplex of the given
// scale, with a margin for ticks and labels.
func NewSVG(scale float64) *SVG {
	return &SVG{scale: scale, margin: scale * 0.1}
}

func (s *SVG) AddLine(seg ternary.Segment, style ternary.Style) {
	s.elems = append(s.elems, fmt.Sprintf(
		`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"%s/>`,
		seg.Start.X, s.flipY(seg.Start.Y),
		seg.End.X, s.flipY(seg.End.Y),
		style.Color("#000000"),
		style.LineWidth(1)*s.px(),
		s.dashAttr(style)))
}

func (s *SVG) AddText(at ternary.Point, label string, style ternary.Style) {
	s.elems = append(s.elems, fmt.Sprintf(
		`<text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		at.X, s.flipY(at.Y),
		3*s.px(),
		style.Color("#000000"),
		html.EscapeString(label)))
}

// WriteTo writes the accumulated document. SVG implements io.WriterTo
// rather than holding a writer so the same surface can be written more
// than once.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	height := ternary.Sqrt3Over2 * s.scale
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		-s.margin, -s.margin, s.scale+2*s.margin, height+2*s.margin)
	for _, e := range s.elems {
		b.WriteString(e)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), errors.Wrap(err, "writing svg")
	}
	return int64(n), nil
}

// Save writes the document to path.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

func (s *SVG) flipY(y float64) float64 {
	return ternary.Sqrt3Over2*s.scale - y
}

// px is one pixel of a nominal 100px-wide plot, so the raster and
// vector surfaces agree on what "linewidth: 1" looks like.
func (s *SVG) px() float64 {
	return s.scale / 100
}

func (s *SVG) dashAttr(style ternary.Style) string {
	px := s.px()
	switch style.LineStyle("-") {
	case ":":
		return fmt.Sprintf(` stroke-dasharray="%g %g"`, 1*px, 3*px)
	case "--":
		return fmt.Sprintf(` stroke-dasharray="%g %g"`, 6*px, 6*px)
	case "-.":
		return fmt.Sprintf(` stroke-dasharray="%g %g %g %g"`, 6*px, 3*px, 1*px, 3*px)
	}
	return ""
}
