package metrics

// FrontPosition is the first position where the profile drops to level,
// interpolated linearly. It returns the last position if it never does.
func FrontPosition(xs, cs []float64, level float64) float64 {
	for i := 1; i < len(xs); i++ {
		if cs[i] > level {
			continue
		}
		if cs[i-1] == cs[i] {
			return xs[i]
		}
		frac := (cs[i-1] - level) / (cs[i-1] - cs[i])
		return xs[i-1] + frac*(xs[i]-xs[i-1])
	}
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
