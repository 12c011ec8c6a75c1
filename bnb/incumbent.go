package bnb

// incumbent is the best lower value found so far in one Solve call.
// It is owned by that call's engine and threaded through every recursion
// step by pointer; nothing outside the engine can reach it.
//
// history[0] is always 0 and the slice is non-decreasing.
type incumbent struct {
	value   float64
	history []float64
	best    []int // lower vector that produced value; nil until the first raise
}

func newIncumbent() *incumbent {
	return &incumbent{history: []float64{0}}
}

// raise records lower as the new incumbent if it improves the current one.
// It reports whether a raise happened.
func (inc *incumbent) raise(lower float64, vector []int) bool {
	if !(lower > inc.value) {
		return false
	}
	inc.value = lower
	inc.history = append(inc.history, lower)
	inc.best = vector

	return true
}
