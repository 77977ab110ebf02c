package core

import "testing"

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		total   int
		want    int
	}{
		{"forward wrap", 3, 1, 4, 0},
		{"backward wrap", 0, -1, 4, 3},
		{"forward", 0, 1, 4, 1},
		{"backward", 2, -1, 4, 1},
		{"no slots", 0, 1, 0, 0},
		{"single slot", 0, -1, 1, 0},
		{"large step", 1, 9, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextIndex(tt.current, tt.delta, tt.total); got != tt.want {
				t.Errorf("NextIndex(%d, %d, %d) = %d, want %d",
					tt.current, tt.delta, tt.total, got, tt.want)
			}
		})
	}
}
