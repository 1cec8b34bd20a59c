package ternary

import (
	"math"

	"github.com/pkg/errors"
)

// Sqrt3Over2 is the height of a unit equilateral triangle.
var Sqrt3Over2 = math.Sqrt(3) / 2

// Permutation reorders the three barycentric components before
// projection, changing the plot's visual orientation. The zero value is
// the identity.
type Permutation struct {
	order [3]int
	set   bool
}

// ParsePermutation reads the conventional digit-string form: "120"
// means position 0 takes component 1, position 1 takes component 2,
// and position 2 takes component 0. The empty string is the identity.
func ParsePermutation(s string) (Permutation, error) {
	if s == "" {
		return Permutation{}, nil
	}
	if len(s) != 3 {
		return Permutation{}, errors.Errorf("permutation must have exactly 3 digits, got %q", s)
	}
	var perm Permutation
	var seen [3]bool
	for i, c := range s {
		if c < '0' || c > '2' {
			return Permutation{}, errors.Errorf("permutation %q: digit %q out of range", s, c)
		}
		d := int(c - '0')
		if seen[d] {
			return Permutation{}, errors.Errorf("permutation %q repeats digit %d", s, d)
		}
		seen[d] = true
		perm.order[i] = d
	}
	perm.set = true
	return perm, nil
}

// Apply returns the reordered point, so Apply of "120" on (a, b, c)
// yields (b, c, a).
func (perm Permutation) Apply(p Tern) Tern {
	if !perm.set {
		return p
	}
	c := [3]float64{p.A, p.B, p.C}
	return Tern{c[perm.order[0]], c[perm.order[1]], c[perm.order[2]]}
}

// Project maps a barycentric point onto the plane. After permutation,
// the first component runs along the bottom edge and the second along
// the skewed left edge: x = a + b/2, y = b*sqrt(3)/2. The third
// component is redundant when a+b+c equals the scale.
func Project(p Tern, perm Permutation) Point {
	q := perm.Apply(p)
	return Point{
		X: q.A + q.B/2,
		Y: Sqrt3Over2 * q.B,
	}
}
