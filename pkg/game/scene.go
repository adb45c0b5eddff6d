package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., gameplay, game over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// LevelRequester 可选接口：场景在完成关卡后请求切换到下一关
type LevelRequester interface {
	// RequestedLevel 返回请求加载的关卡ID，没有请求时返回空串
	RequestedLevel() string
}
