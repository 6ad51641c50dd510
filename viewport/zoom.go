package viewport

import "math"

// Zoom steps a cell size by a fixed amount per wheel tick.
//
// Changing the cell size does not move the scroll origin, so the cell under
// the cursor can drift while zooming.
type Zoom struct {
	Default int
	Min     int
	Max     int
	Step    int
}

// Apply returns cellSize changed by wheel ticks and clamped to [Min, Max].
// Fractional wheel deltas are truncated the same way for both directions.
func (z Zoom) Apply(cellSize int, wheel float64) int {
	next := cellSize + int(wheel*float64(z.Step))
	return min(max(next, z.Min), z.Max)
}

// Percent is the zoom level of cellSize relative to Default.
func (z Zoom) Percent(cellSize int) int {
	if z.Default <= 0 {
		return 100
	}
	return int(float64(cellSize) * 100 / float64(z.Default))
}

// Scaled returns z with every size multiplied by s.
func (z Zoom) Scaled(s Scale) Zoom {
	return Zoom{
		Default: s.Px(z.Default),
		Min:     s.Px(z.Min),
		Max:     s.Px(z.Max),
		Step:    max(s.Px(z.Step), 1),
	}
}

// Scale converts layout constants designed for a 1080 pixel tall window to
// the current window.
type Scale float64

// MinScale is the smallest scale UIScale returns.
const MinScale Scale = 0.5

// UIScale derives a scale from the window height.
func UIScale(screenHeight int) Scale {
	s := Scale(float64(screenHeight) / 1080)
	return max(s, MinScale)
}

// Px scales an integer layout constant.
func (s Scale) Px(v int) int {
	return int(float64(v) * float64(s))
}

// Changed reports whether two scales differ enough to relayout.
func (s Scale) Changed(o Scale) bool {
	return math.Abs(float64(s-o)) > 0.001
}
