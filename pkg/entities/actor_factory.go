package entities

import (
	"fmt"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/utils"
)

// NewPlayer 创建玩家实体
func NewPlayer(em *ecs.EntityManager, cfg config.PlayerConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.MaxHealth, MaxHealth: cfg.MaxHealth})
	ecs.AddComponent(em, id, &components.PlayerComponent{Speed: cfg.Speed, BombCount: cfg.StartBombs})
	return id, nil
}

// NewEnemy 创建敌人实体
// 首次射击间隔从配置范围内随机
func NewEnemy(em *ecs.EntityManager, cfg config.EnemyConfig, rng utils.Random, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}
	size := cfg.PulseMin
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.Health, MaxHealth: cfg.Health})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Speed:           cfg.Speed,
		DetectionRadius: cfg.DetectionRadius,
		AttackInterval:  utils.Uniform(rng, cfg.AttackInterval.Min, cfg.AttackInterval.Max),
		PulseDirection:  cfg.PulseSpeed,
	})
	return id, nil
}
