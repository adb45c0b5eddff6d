package components

// PerceptionState 敌人的感知状态
type PerceptionState int

const (
	// PerceptionUnaware 看不到玩家，原地不动
	PerceptionUnaware PerceptionState = iota
	// PerceptionAware 与玩家之间视线通畅，追击并射击
	PerceptionAware
)

func (s PerceptionState) String() string {
	if s == PerceptionAware {
		return "aware"
	}
	return "unaware"
}

// EnemyComponent 敌人（飞碟）的行为状态
type EnemyComponent struct {
	Speed           float64
	DetectionRadius float64

	Perception  PerceptionState
	VisionTimer float64 // 距上次视线判定的时间

	AttackTimer    float64 // 距上次射击的时间
	AttackInterval float64 // 本次射击间隔（每次射击后重新随机）

	// PulseDirection 边界框尺寸的变化速度（单位/秒），到达上下限时反向
	PulseDirection float64
}

