package components

// PlayerComponent 玩家状态
type PlayerComponent struct {
	Speed     float64
	BombCount int
	// Dead 死亡事件已发出，保证只发一次
	Dead bool
}
