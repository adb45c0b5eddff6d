package game

import "github.com/gonewx/uforaid/pkg/ecs"

// GameState 存储一局游戏的全局状态
// 每个关卡场景持有自己的实例，系统通过构造函数拿到指针。
type GameState struct {
	LevelID string

	// 世界尺寸（像素）
	WorldWidth  float64
	WorldHeight float64

	// Locked 关卡是否仍处于锁定状态（门未打开）
	Locked bool
	// KeyObtained 已从宝箱中取得钥匙
	KeyObtained bool
	// ExitReached 已到达出口，事件只发一次
	ExitReached bool
	// PlayerDead 玩家已死亡
	PlayerDead bool

	PlayerID ecs.EntityID

	// 镜头中心（世界坐标），由 CameraSystem 写入，渲染时用于世界→屏幕坐标转换
	CameraX float64
	CameraY float64

	Tick   uint64
	Paused bool
}

// NewGameState 创建关卡初始状态
func NewGameState(levelID string, worldWidth, worldHeight float64) *GameState {
	return &GameState{
		LevelID:     levelID,
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		Locked:      true,
	}
}

// InExtent 点是否位于世界范围外扩 margin 后的区域内
// 子弹和炸弹离开该区域即被销毁
func (gs *GameState) InExtent(x, y, margin float64) bool {
	return x >= -margin && y >= -margin &&
		x <= gs.WorldWidth+margin && y <= gs.WorldHeight+margin
}

// Unlock 打开关卡，返回是否是本次调用打开的
func (gs *GameState) Unlock() bool {
	if !gs.Locked {
		return false
	}
	gs.Locked = false
	gs.KeyObtained = true
	return true
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.Paused = !gs.Paused
}
