package providers

// NewestFirst returns the last limit items of a chronological slice, most recent first.
// A non-positive limit keeps every item.
func NewestFirst[T any](chronological []T, limit int) []T {
	start := 0
	if limit > 0 && len(chronological) > limit {
		start = len(chronological) - limit
	}
	tail := chronological[start:]
	out := make([]T, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
