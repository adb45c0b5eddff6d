package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
)

// aimVelocity 计算从起点指向目标点、速率为 speed 的速度分量
func aimVelocity(fromX, fromY, toX, toY, speed float64) (vx, vy, angle float64) {
	angle = math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle) * speed, math.Sin(angle) * speed, angle
}

// NewProjectile 创建子弹实体
// 子弹从发射者中心出发，以固定速率飞向目标点
//
// 参数：
//   - em: 实体管理器
//   - cfg: 子弹配置
//   - owner: 子弹归属（玩家/敌人）
//   - shooter: 发射者实体ID
//   - fromX, fromY: 起点
//   - toX, toY: 目标点
//
// 返回：
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, cfg config.ProjectileConfig, owner components.Owner, shooter ecs.EntityID, fromX, fromY, toX, toY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	damage := cfg.Damage
	if owner == components.OwnerEnemy {
		damage = cfg.EnemyDamage
	}
	vx, vy, angle := aimVelocity(fromX, fromY, toX, toY, cfg.Speed)

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: fromX, Y: fromY})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Damage:  damage,
		Owner:   owner,
		Shooter: shooter,
		Angle:   angle,
	})
	return entityID, nil
}

// NewBomb 创建炸弹实体
func NewBomb(em *ecs.EntityManager, cfg config.BombConfig, fromX, fromY, toX, toY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	vx, vy, _ := aimVelocity(fromX, fromY, toX, toY, cfg.Speed)

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: fromX, Y: fromY})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: cfg.Size, Height: cfg.Size})
	ecs.AddComponent(em, entityID, &components.BombComponent{Fuse: cfg.Fuse, Damage: cfg.Damage})
	return entityID, nil
}

// NewExplosion 在炸弹位置创建爆炸实体
func NewExplosion(em *ecs.EntityManager, cfg config.ExplosionConfig, x, y float64, damage int) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ExplosionComponent{
		Size:   cfg.InitialSize,
		Alpha:  1,
		Damage: damage,
		Hit:    make(map[ecs.EntityID]struct{}),
	})
	return entityID
}
