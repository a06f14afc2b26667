package life

// HasWon reports whether a step reached total extinction: the accumulated
// scalar of the result is zero.
func HasWon(r Result) bool { return r.Total == 0 }
