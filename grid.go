package ternary

// GridOptions configures Gridlines. The zero value draws dotted
// half-width lines at every integer index.
type GridOptions struct {
	// Multiple is the spacing between gridlines. Zero means 1.
	Multiple float64
	// Horizontal, Left and Right override Style for one line family.
	Horizontal, Left, Right Style
	// Style applies to all three families.
	Style Style
}

// Gridlines draws the interior gridlines parallel to each of the three
// edges. The family parallel to the bottom edge stops one line short of
// the top vertex, while the left- and right-parallel families run
// through the full index range including the far boundary, so those two
// families draw one line more. The imbalance is longstanding observable
// behavior and is kept as is.
func Gridlines(s Surface, scale float64, opt GridOptions) {
	defaults := Style{}
	if !opt.Style.has("linewidth") {
		defaults["linewidth"] = 0.5
	}
	if !opt.Style.has("linestyle") {
		defaults["linestyle"] = ":"
	}
	style := defaults.Merge(opt.Style)
	horizontal := style.Merge(opt.Horizontal)
	left := style.Merge(opt.Left)
	right := style.Merge(opt.Right)

	multiple := opt.Multiple
	if multiple == 0 {
		multiple = 1
	}

	for _, i := range arange(0, scale, multiple) {
		HorizontalLine(s, scale, i, horizontal)
	}
	for _, i := range arange(0, scale+multiple, multiple) {
		LeftParallelLine(s, scale, i, left)
		RightParallelLine(s, scale, i, right)
	}
}
