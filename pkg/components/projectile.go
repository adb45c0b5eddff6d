package components

import "github.com/gonewx/uforaid/pkg/ecs"

// Owner 子弹归属
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// ProjectileComponent 子弹
// 速度保存在 VelocityComponent 中
type ProjectileComponent struct {
	Damage int
	Owner  Owner
	// Shooter 发射者实体，玩家子弹同样记录玩家ID
	Shooter ecs.EntityID
	// Angle 飞行方向（弧度），仅用于渲染
	Angle float64
}
