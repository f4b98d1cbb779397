package services

// CurrentStreak counts leading true values in a most-recent-first sequence:
// zero when the first element is false, the full length when nothing breaks
// the run.
func CurrentStreak(values []bool) int {
	count := 0
	for _, value := range values {
		if !value {
			break
		}
		count++
	}
	return count
}

type ColorStreaks struct {
	GreenOnly int `json:"green_only"`
	NonRed    int `json:"non_red"`
}

// CurrentColorStreaks computes two independent leading runs over the same
// most-recent-first color sequence: strictly green, and anything non-red.
// Each scan stops at the first value violating its own predicate, so the two
// counts are not slices of a single walk.
func CurrentColorStreaks(colors []string) ColorStreaks {
	streaks := ColorStreaks{}
	for _, color := range colors {
		if color != ColorGreen {
			break
		}
		streaks.GreenOnly++
	}
	for _, color := range colors {
		if color != ColorGreen && color != ColorYellow {
			break
		}
		streaks.NonRed++
	}
	return streaks
}
