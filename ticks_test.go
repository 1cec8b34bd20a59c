package ternary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksRejectsBadSelector(t *testing.T) {
	for _, axes := range []string{"x", "lrx", "b l", "rb!"} {
		rec := new(Recorder)
		err := Ticks(rec, 10, TickOptions{Axes: axes})
		assert.Error(t, err, "selector %q should be rejected", axes)
		// Validation happens before any drawing
		assert.Empty(t, rec.Segments)
		assert.Empty(t, rec.Texts)
	}
}

func TestTicksSelectorIsCaseInsensitive(t *testing.T) {
	upper := new(Recorder)
	require.NoError(t, Ticks(upper, 10, TickOptions{Axes: "LR", Multiple: 5}))
	lower := new(Recorder)
	require.NoError(t, Ticks(lower, 10, TickOptions{Axes: "lr", Multiple: 5}))
	assert.Equal(t, lower.Segments, upper.Segments)
}

func TestTicksPerSideCount(t *testing.T) {
	// Indices {0, 5, 10} for scale 10, multiple 5
	cases := []struct {
		axes  string
		sides int
	}{
		{"b", 1},
		{"lr", 2},
		{"LRB", 3},
		{"bb", 1}, // repeats draw once
	}
	for _, c := range cases {
		c := c
		t.Run(c.axes, func(t *testing.T) {
			rec := new(Recorder)
			require.NoError(t, Ticks(rec, 10, TickOptions{Axes: c.axes, Multiple: 5}))
			assert.Len(t, rec.Segments, 3*c.sides)
		})
	}
}

func TestTicksDefaultSideIsBottom(t *testing.T) {
	rec := new(Recorder)
	require.NoError(t, Ticks(rec, 10, TickOptions{Multiple: 5}))
	explicit := new(Recorder)
	require.NoError(t, Ticks(explicit, 10, TickOptions{Axes: "b", Multiple: 5}))
	assert.Equal(t, explicit.Segments, rec.Segments)
}

func TestTickGeometry(t *testing.T) {
	scale, multiple, offset := 10.0, 5.0, 0.02
	length := offset * scale

	t.Run("bottom, counterclockwise", func(t *testing.T) {
		rec := new(Recorder)
		require.NoError(t, Ticks(rec, scale, TickOptions{
			Axes: "b", Multiple: multiple, Offset: offset,
		}))
		require.Len(t, rec.Segments, 3)
		for n, i := range []float64{0, 5, 10} {
			seg := rec.Segments[n]
			assert.Equal(t, Project(Tern{i, 0, 0}, Permutation{}), seg.Start)
			assert.Equal(t, Project(Tern{i, -length, 0}, Permutation{}), seg.End)
			assert.InDelta(t, length, seg.Length(), Tolerance)
		}
	})

	t.Run("bottom, clockwise", func(t *testing.T) {
		rec := new(Recorder)
		require.NoError(t, Ticks(rec, scale, TickOptions{
			Axes: "b", Multiple: multiple, Offset: offset, Clockwise: true,
		}))
		require.Len(t, rec.Segments, 3)
		for n, i := range []float64{0, 5, 10} {
			seg := rec.Segments[n]
			assert.Equal(t, Project(Tern{i, 0, 0}, Permutation{}), seg.Start)
			assert.Equal(t, Project(Tern{i + length, -length, 0}, Permutation{}), seg.End)
		}
	})

	t.Run("right and left", func(t *testing.T) {
		rec := new(Recorder)
		require.NoError(t, Ticks(rec, scale, TickOptions{
			Axes: "rl", Multiple: multiple, Offset: offset,
		}))
		require.Len(t, rec.Segments, 6)
		// Right side first, then left, regardless of selector order
		for n, i := range []float64{0, 5, 10} {
			assert.Equal(t, Project(Tern{scale - i, i, 0}, Permutation{}), rec.Segments[n].Start)
			assert.Equal(t, Project(Tern{scale - i + length, i, 0}, Permutation{}), rec.Segments[n].End)
		}
		for n, i := range []float64{0, 5, 10} {
			assert.Equal(t, Project(Tern{0, i, 0}, Permutation{}), rec.Segments[3+n].Start)
			assert.Equal(t, Project(Tern{-length, i + length, 0}, Permutation{}), rec.Segments[3+n].End)
		}
	})
}

func TestTickLabels(t *testing.T) {
	rec := new(Recorder)
	require.NoError(t, Ticks(rec, 10, TickOptions{Axes: "b", Multiple: 5}))
	// Default labels come from the half-open default locations, so the
	// final tick at the scale itself is unlabelled.
	require.Len(t, rec.Texts, 2)
	assert.Equal(t, "0", rec.Texts[0].Label)
	assert.Equal(t, "5", rec.Texts[1].Label)

	rec.Reset()
	require.NoError(t, Ticks(rec, 10, TickOptions{
		Axes:     "b",
		Multiple: 5,
		Labels:   []string{"low", "mid", "high"},
	}))
	require.Len(t, rec.Texts, 3)
	assert.Equal(t, "high", rec.Texts[2].Label)
}

// A surface without text support still gets its tick segments.
type lineOnlySurface struct {
	segments int
}

func (s *lineOnlySurface) AddLine(seg Segment, style Style) { s.segments++ }

func TestTicksWithoutTextSurface(t *testing.T) {
	s := new(lineOnlySurface)
	require.NoError(t, Ticks(s, 10, TickOptions{Axes: "b", Multiple: 5}))
	assert.Equal(t, 3, s.segments)
}
