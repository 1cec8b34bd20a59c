package ternary

// Line projects p1 and p2 under the same permutation and submits the
// segment between them to the surface.
func Line(s Surface, p1, p2 Tern, perm Permutation, style Style) {
	s.AddLine(Segment{
		Start: Project(p1, perm),
		End:   Project(p2, perm),
	}, style)
}

// HorizontalLine draws the i-th line parallel to the bottom edge of a
// simplex of the given scale. Valid for i in [0, scale].
func HorizontalLine(s Surface, scale, i float64, style Style) {
	Line(s, Tern{0, scale - i, i}, Tern{scale - i, 0, i}, Permutation{}, style)
}

// LeftParallelLine draws the i-th line parallel to the left edge.
func LeftParallelLine(s Surface, scale, i float64, style Style) {
	Line(s, Tern{0, i, scale - i}, Tern{scale - i, i, 0}, Permutation{}, style)
}

// RightParallelLine draws the i-th line parallel to the right edge.
func RightParallelLine(s Surface, scale, i float64, style Style) {
	Line(s, Tern{i, scale - i, 0}, Tern{i, 0, scale - i}, Permutation{}, style)
}

// Boundary draws the three edges of the simplex.
func Boundary(s Surface, scale float64, style Style) {
	HorizontalLine(s, scale, 0, style)
	LeftParallelLine(s, scale, 0, style)
	RightParallelLine(s, scale, 0, style)
}
