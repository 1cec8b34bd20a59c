package ternary

// Style carries drawing options by name, forwarded verbatim to the
// surface. The keys this package itself reads are "linewidth",
// "linestyle" and "color"; surfaces are free to understand more.
type Style map[string]interface{}

// Merge returns a new Style: a shallow copy of s with updates written
// over it, later values winning per key. Neither input is modified, and
// nil inputs act as empty, so a nil-nil merge is an empty Style.
func (s Style) Merge(updates Style) Style {
	merged := make(Style, len(s)+len(updates))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return merged
}

// MergeStyles is Merge as a free function.
func MergeStyles(base, updates Style) Style {
	return base.Merge(updates)
}

// LineWidth returns the "linewidth" option, or fallback when absent or
// not numeric.
func (s Style) LineWidth(fallback float64) float64 {
	switch w := s["linewidth"].(type) {
	case float64:
		return w
	case int:
		return float64(w)
	}
	return fallback
}

// LineStyle returns the "linestyle" option ("-", ":", "--", "-."), or
// fallback when absent.
func (s Style) LineStyle(fallback string) string {
	if v, ok := s["linestyle"].(string); ok {
		return v
	}
	return fallback
}

// Color returns the "color" option as a hex string, or fallback when
// absent.
func (s Style) Color(fallback string) string {
	if v, ok := s["color"].(string); ok {
		return v
	}
	return fallback
}

func (s Style) has(key string) bool {
	_, ok := s[key]
	return ok
}
