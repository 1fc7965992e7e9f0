package recordhub

// Visit calls fn once for every stored record.
//
// Order is not guaranteed. fn sees the records present when Visit started;
// writes made by fn are not visited.
func (s *Store[T]) Visit(fn func(T)) {
	for _, r := range s.snapshot() {
		fn(r)
	}
}

// SelectBest returns the record with the greatest score.
//
// The scan starts from a baseline of zero and only a strictly greater
// score replaces the current best, so:
//   - an empty store returns false
//   - a store where no record scores above zero returns false, even if
//     every score is negative
//   - on ties the first maximizer in scan order wins; scan order is not
//     guaranteed
func (s *Store[T]) SelectBest(score func(T) float64) (T, bool) {
	var (
		best  T
		found bool
		top   float64
	)

	for _, r := range s.snapshot() {
		if v := score(r); v > top {
			best, top, found = r, v, true
		}
	}

	return best, found
}
