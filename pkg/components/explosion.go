package components

import "github.com/gonewx/uforaid/pkg/ecs"

// ExplosionComponent 爆炸：尺寸每帧线性增长，透明度每帧线性衰减
type ExplosionComponent struct {
	Size   float64 // 直径
	Alpha  float64 // 0-1
	Damage int
	Ticks  int

	// Hit 已受过伤害的敌人，仅在 once_per_enemy 模式下使用
	Hit map[ecs.EntityID]struct{}
}
