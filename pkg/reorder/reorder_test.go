package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "first to last", from: 0, to: 2, want: []string{"B", "C", "A"}},
		{name: "last to first", from: 2, to: 0, want: []string{"C", "A", "B"}},
		{name: "identity", from: 1, to: 1, want: []string{"A", "B", "C"}},
		{name: "adjacent forward", from: 0, to: 1, want: []string{"B", "A", "C"}},
		{name: "out of range", from: 3, to: 0, want: []string{"A", "B", "C"}},
		{name: "negative", from: 0, to: -1, want: []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []string{"A", "B", "C"}
			got := Move(in, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"A", "B", "C"}, in, "input must not be modified")
		})
	}
}

func TestMoveRoundTrip(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	for from := range in {
		for to := range in {
			back := Move(Move(in, from, to), to, from)
			assert.Equal(t, in, back, "from=%d to=%d", from, to)
		}
	}
}

func TestMoveEmpty(t *testing.T) {
	assert.Empty(t, Move([]int{}, 0, 0))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(3, 0, 2))
	assert.False(t, Valid(3, 0, 3))
	assert.False(t, Valid(0, 0, 0))
}
