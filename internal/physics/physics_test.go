package physics

import (
	"math"
	"testing"
)

type cell struct{ x, y int }

func collectLine(x1, y1, x2, y2 int) []cell {
	var got []cell
	WalkLine(x1, y1, x2, y2, func(x, y int) bool {
		got = append(got, cell{x, y})
		return true
	})
	return got
}

func TestWalkLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           []cell
	}{
		{"same cell", 2, 2, 2, 2, nil},
		{"horizontal", 0, 0, 3, 0, []cell{{1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 1, 3, 1, 1, []cell{{1, 2}, {1, 1}}},
		{"diagonal", 0, 0, 2, 2, []cell{{1, 1}, {2, 2}}},
		{"shallow slope", 0, 0, 3, 1, []cell{{1, 0}, {2, 1}, {3, 1}}},
		{"reverse", 3, 1, 0, 0, []cell{{2, 1}, {1, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectLine(tt.x1, tt.y1, tt.x2, tt.y2)
			if len(got) != len(tt.want) {
				t.Fatalf("WalkLine visited %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWalkLine_StopsEarly(t *testing.T) {
	visited := 0
	ok := WalkLine(0, 0, 5, 0, func(x, y int) bool {
		visited++
		return x < 2
	})
	if ok {
		t.Error("WalkLine() = true, want false after early stop")
	}
	if visited != 2 {
		t.Errorf("visited %d cells, want 2", visited)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", got)
	}
	if got := Distance(1, 1, 2, 2); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("Distance(1,1,2,2) = %v, want sqrt(2)", got)
	}
}

func TestWithinRadius(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		radius float64
		want   bool
	}{
		{"center", 5, 5, 2, true},
		{"inside", 6, 5, 2, true},
		{"on edge", 7, 5, 2, false},
		{"on edge vertical", 5, 3, 2, false},
		{"just inside edge", 7, 5, 2.01, true},
		{"diagonal inside", 6, 6, 2, true},
		{"diagonal outside", 7, 7, 2, false},
		{"past edge", 8, 5, 2, false},
		{"zero radius", 5, 5, 0, false},
		{"negative radius", 5, 5, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinRadius(tt.px, tt.py, 5, 5, tt.radius); got != tt.want {
				t.Errorf("WithinRadius(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestPushVector(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"east of source", 6, 5, 1, 0},
		{"north-west of source", 3, 2, -1, -1},
		{"same column", 5, 8, 0, 1},
		{"coincident", 5, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := PushVector(tt.x, tt.y, 5, 5)
			if dx != tt.wantX || dy != tt.wantY {
				t.Errorf("PushVector = (%d,%d), want (%d,%d)", dx, dy, tt.wantX, tt.wantY)
			}
		})
	}
}
