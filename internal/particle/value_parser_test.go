package particle

import (
	"math"
	"testing"
)

// fixedSource 每次返回固定值的随机源
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// TestParseValue_FixedValue tests parsing of fixed value format
func TestParseValue_FixedValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Integer", "1500", 1500, 1500},
		{"Float", "3.14", 3.14, 3.14},
		{"Negative", "-10.5", -10.5, -10.5},
		{"Zero", "0", 0, 0},
		{"Bracketed single", "[7]", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, keyframes, interp := ParseValue(tt.input)
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("ParseValue(%q) = [%v %v], want [%v %v]", tt.input, min, max, tt.wantMin, tt.wantMax)
			}
			if keyframes != nil {
				t.Errorf("ParseValue(%q) keyframes = %v, want nil", tt.input, keyframes)
			}
			if interp != "" {
				t.Errorf("ParseValue(%q) interpolation = %q, want empty", tt.input, interp)
			}
		})
	}
}

// TestParseValue_Range tests parsing of range format
func TestParseValue_Range(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Float range", "[0.5 1.1]", 0.5, 1.1},
		{"Integer range", "[10 20]", 10, 20},
		{"Negative range", "[-360 -240]", -360, -240},
		{"Reversed range", "[2 1]", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, _, _ := ParseValue(tt.input)
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("ParseValue(%q) = [%v %v], want [%v %v]", tt.input, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestParseValue_Keyframes(t *testing.T) {
	_, _, kf, interp := ParseValue("EaseOut 0,1 0.5,0.8 1,0")
	if interp != "EaseOut" {
		t.Errorf("interpolation = %q, want EaseOut", interp)
	}
	want := []Keyframe{{0, 1}, {0.5, 0.8}, {1, 0}}
	if len(kf) != len(want) {
		t.Fatalf("got %d keyframes, want %d", len(kf), len(want))
	}
	for i := range want {
		if kf[i] != want[i] {
			t.Errorf("keyframe[%d] = %+v, want %+v", i, kf[i], want[i])
		}
	}
}

func TestParseValue_EdgeCases(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "[a b]", "x,y"} {
		min, max, kf, _ := ParseValue(input)
		if min != 0 || max != 0 || kf != nil {
			t.Errorf("ParseValue(%q) = %v %v %v, want zero values", input, min, max, kf)
		}
	}
}

func TestEvaluateKeyframes_Linear(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0}}
	tests := []struct {
		t    float64
		want float64
	}{
		{-1, 1},
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := EvaluateKeyframes(kf, tt.t, ""); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EvaluateKeyframes(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEvaluateKeyframes_Easing(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 1}}
	if got := EvaluateKeyframes(kf, 0.5, "EaseIn"); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("EaseIn(0.5) = %v, want 0.25", got)
	}
	if got := EvaluateKeyframes(kf, 0.5, "EaseOut"); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("EaseOut(0.5) = %v, want 0.75", got)
	}
	if got := EvaluateKeyframes(nil, 0.5, ""); got != 0 {
		t.Errorf("empty keyframes = %v, want 0", got)
	}
}

func TestRandomInRange(t *testing.T) {
	if got := RandomInRange(fixedSource(0.5), 10, 20); got != 15 {
		t.Errorf("RandomInRange mid = %v, want 15", got)
	}
	if got := RandomInRange(fixedSource(0.9), 3, 3); got != 3 {
		t.Errorf("degenerate range = %v, want 3", got)
	}
	if got := Sample(fixedSource(0.99), "0,0.78 1,0"); got != 0.78 {
		t.Errorf("Sample keyframes = %v, want first keyframe value", got)
	}
}
