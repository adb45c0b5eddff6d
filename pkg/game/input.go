package game

// MouseButton 鼠标按键
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Click 一次鼠标点击，坐标已转换为世界坐标
type Click struct {
	Button MouseButton
	X, Y   float64
}

// InputState 一帧的玩家输入
// 由场景从 ebiten 采集，模拟核心只依赖这个结构体，便于测试。
type InputState struct {
	Left, Right, Up, Down bool

	Clicks []Click

	ClearEffects   bool
	ToggleTrail    bool
	ToggleFountain bool
}

// MoveAxis 按键合成的移动方向分量（-1/0/1）
func (in InputState) MoveAxis() (float64, float64) {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}
