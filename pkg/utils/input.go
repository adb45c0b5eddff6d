// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/uforaid/pkg/game"
)

// ScreenToWorld 屏幕坐标到世界坐标的转换函数，通常由镜头提供
type ScreenToWorld func(sx, sy float64) (float64, float64)

// 键位
var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	pauseKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeySpace}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// PollInput 采集当前帧的键盘、鼠标和触摸输入
//
// 移动键按住即生效；点击和特效开关只在刚按下的那一帧出现。
// 触摸等同于鼠标左键。toWorld 为 nil 时点击坐标保持屏幕坐标。
func PollInput(toWorld ScreenToWorld) game.InputState {
	in := game.InputState{
		Left:  anyPressed(leftKeys),
		Right: anyPressed(rightKeys),
		Up:    anyPressed(upKeys),
		Down:  anyPressed(downKeys),

		ClearEffects:   inpututil.IsKeyJustPressed(ebiten.KeyC),
		ToggleTrail:    inpututil.IsKeyJustPressed(ebiten.KeyV),
		ToggleFountain: inpututil.IsKeyJustPressed(ebiten.KeyF),
	}

	click := func(button game.MouseButton, sx, sy int) {
		x, y := float64(sx), float64(sy)
		if toWorld != nil {
			x, y = toWorld(x, y)
		}
		in.Clicks = append(in.Clicks, game.Click{Button: button, X: x, Y: y})
	}

	// 首先检查触摸输入（移动设备）
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		click(game.MouseLeft, x, y)
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		click(game.MouseLeft, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		click(game.MouseRight, x, y)
	}
	return in
}

// PauseJustPressed 暂停键（Esc/空格）是否刚按下
func PauseJustPressed() bool {
	return anyJustPressed(pauseKeys)
}
