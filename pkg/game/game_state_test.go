package game

import "testing"

func TestGameStateUnlockOnce(t *testing.T) {
	gs := NewGameState("level-1", 800, 600)
	if !gs.Locked || gs.KeyObtained {
		t.Fatal("new level should start locked without key")
	}
	if !gs.Unlock() {
		t.Error("first Unlock should report true")
	}
	if gs.Unlock() {
		t.Error("second Unlock should be a no-op")
	}
	if gs.Locked || !gs.KeyObtained {
		t.Error("state should be unlocked with key")
	}
}

func TestGameStateInExtent(t *testing.T) {
	gs := NewGameState("t", 100, 50)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 25, true},
		{"in margin", -5, 55, true},
		{"outside left", -11, 25, false},
		{"outside bottom", 50, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gs.InExtent(tt.x, tt.y, 10); got != tt.want {
				t.Errorf("InExtent(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestInputMoveAxis(t *testing.T) {
	tests := []struct {
		name   string
		in     InputState
		dx, dy float64
	}{
		{"none", InputState{}, 0, 0},
		{"left", InputState{Left: true}, -1, 0},
		{"opposite cancels", InputState{Left: true, Right: true}, 0, 0},
		{"diagonal", InputState{Right: true, Down: true}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.in.MoveAxis()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("MoveAxis() = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}
