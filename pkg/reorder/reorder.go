// Package reorder moves one element of an ordered sequence to a new position.
package reorder

// Move returns a new slice with the element at from moved to to. The target
// index is interpreted against the slice after removal (splice out, then
// splice in). Out-of-range indexes return an unchanged copy. The input slice
// is never modified.
func Move[T any](seq []T, from, to int) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	if from < 0 || from >= len(seq) || to < 0 || to >= len(seq) || from == to {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}

// Valid reports whether from and to are both usable indexes for a sequence
// of length n.
func Valid(n, from, to int) bool {
	return from >= 0 && from < n && to >= 0 && to < n
}
