package ternary

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/ternplot/ternary/dbg"
)

// Recorder is a Surface that remembers every draw call instead of
// rendering. Useful in tests and for inspecting exactly what an
// operation emitted.
type Recorder struct {
	Segments []Segment
	Styles   []Style
	Texts    []RecordedText
}

// RecordedText is one AddText call captured by a Recorder.
type RecordedText struct {
	At    Point
	Label string
	Style Style
}

func (r *Recorder) AddLine(seg Segment, style Style) {
	r.Segments = append(r.Segments, seg)
	r.Styles = append(r.Styles, style)
}

func (r *Recorder) AddText(at Point, label string, style Style) {
	r.Texts = append(r.Texts, RecordedText{At: at, Label: label, Style: style})
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Segments = nil
	r.Styles = nil
	r.Texts = nil
}

// String lists the recorded segments under readable names, colored by
// shape: red for zero-length segments (usually a degenerate index),
// cyan for segments dipping below or left of the origin corner (tick
// marks), green otherwise. Names are not stable between runs.
func (r *Recorder) String() string {
	var b strings.Builder
	for i := range r.Segments {
		seg := r.Segments[i]
		name := dbg.Name(&r.Segments[i])
		switch {
		case Equal(seg.Length(), 0):
			name = aurora.Red(name).String()
		case outsideFirstQuadrant(seg.Start) || outsideFirstQuadrant(seg.End):
			name = aurora.Cyan(name).String()
		default:
			name = aurora.Green(name).String()
		}
		fmt.Fprintf(&b, "%s (%g, %g) -> (%g, %g)\n",
			name, seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
	}
	return b.String()
}

func outsideFirstQuadrant(p Point) bool {
	return p.X < -Tolerance || p.Y < -Tolerance
}
