package ternary

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TickOptions configures Ticks.
type TickOptions struct {
	// Axes selects the sides to tick: any combination of 'l', 'r' and
	// 'b', case-insensitive, repeats allowed. Empty means "b".
	Axes string
	// Multiple is the spacing between ticks. Zero means 1.
	Multiple float64
	// Offset is the tick length as a fraction of the scale. Zero means
	// 0.01.
	Offset float64
	// Clockwise flips the direction ticks point off each edge.
	Clockwise bool
	// Labels are drawn beside the ticks when the surface implements
	// TextSurface. When nil, Locations are formatted instead; when those
	// are also nil, the default tick locations [0, scale) by Multiple.
	// The final tick on each side has no default label.
	Labels []string
	// Locations are the values labelled when Labels is nil.
	Locations []float64
	// Style is forwarded to every tick segment and label.
	Style Style
}

// Ticks draws short tick marks off the sides named by opt.Axes. Each
// tick is an independent segment from a point on the simplex edge to a
// point offset outward. The selector is validated in full before
// anything is drawn, so an invalid selector has no side effects.
func Ticks(s Surface, scale float64, opt TickOptions) error {
	axes := strings.ToLower(opt.Axes)
	if axes == "" {
		axes = "b"
	}
	for _, c := range axes {
		if c != 'l' && c != 'r' && c != 'b' {
			return errors.Errorf("axes must be some combination of 'l', 'r' and 'b', got %q", opt.Axes)
		}
	}

	multiple := opt.Multiple
	if multiple == 0 {
		multiple = 1
	}
	offset := opt.Offset
	if offset == 0 {
		offset = 0.01
	}

	labels := opt.Labels
	if labels == nil {
		locations := opt.Locations
		if locations == nil {
			locations = arange(0, scale, multiple)
		}
		labels = make([]string, len(locations))
		for n, loc := range locations {
			labels[n] = strconv.FormatFloat(loc, 'g', -1, 64)
		}
	}

	text, hasText := s.(TextSurface)
	indices := arange(0, scale+multiple, multiple)

	emit := func(n int, base, tip Tern) {
		Line(s, base, tip, Permutation{}, opt.Style)
		if hasText && n < len(labels) {
			text.AddText(labelAnchor(base, tip), labels[n], opt.Style)
		}
	}

	if strings.ContainsRune(axes, 'r') {
		for n, i := range indices {
			base := Tern{scale - i, i, 0}
			var tip Tern
			if opt.Clockwise {
				// Right parallel
				tip = Tern{scale - i, i + offset*scale, 0}
			} else {
				// Horizontal
				tip = Tern{scale - i + offset*scale, i, 0}
			}
			emit(n, base, tip)
		}
	}

	if strings.ContainsRune(axes, 'l') {
		for n, i := range indices {
			base := Tern{0, i, 0}
			var tip Tern
			if opt.Clockwise {
				// Horizontal
				tip = Tern{-offset * scale, i, 0}
			} else {
				// Right parallel
				tip = Tern{-offset * scale, i + offset*scale, 0}
			}
			emit(n, base, tip)
		}
	}

	if strings.ContainsRune(axes, 'b') {
		for n, i := range indices {
			base := Tern{i, 0, 0}
			var tip Tern
			if opt.Clockwise {
				// Right parallel
				tip = Tern{i + offset*scale, -offset * scale, 0}
			} else {
				// Left parallel
				tip = Tern{i, -offset * scale, 0}
			}
			emit(n, base, tip)
		}
	}

	return nil
}

// labelAnchor extends the tick past its tip by its own length so the
// label clears the line work.
func labelAnchor(base, tip Tern) Point {
	p0 := Project(base, Permutation{})
	p1 := Project(tip, Permutation{})
	return p1.Add(p1.Sub(p0))
}
