package board

// percent maps a battery voltage in millivolts linearly onto 0-100%, clamping
// outside the empty and full voltages.
func percent(mv, empty, full int) int {
	switch {
	case mv <= empty:
		return 0
	case mv >= full:
		return 100
	}
	return (mv - empty) * 100 / (full - empty)
}
