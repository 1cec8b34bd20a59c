package ternary

import "math"

// Tern is a point in barycentric coordinates relative to a simplex of
// some scale. Nothing here enforces that A+B+C equals the scale; that
// is the caller's convention to keep.
type Tern struct {
	A, B, C float64
}

// Point is a 2D point in plotting-surface coordinates.
type Point struct {
	X, Y float64
}

// Segment is a single projected line, the unit of work a Surface
// receives.
type Segment struct {
	Start Point
	End   Point
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

func (s Segment) Length() float64 { return s.End.Sub(s.Start).Length() }
