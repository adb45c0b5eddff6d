package entities

import (
	"fmt"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
)

// NewObstacle 按关卡矩形创建障碍物实体
func NewObstacle(em *ecs.EntityManager, kind components.ObstacleKind, rect config.RectConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return 0, fmt.Errorf("%s obstacle has non-positive size %.0fx%.0f", kind, rect.Width, rect.Height)
	}
	cx, cy := rect.Center()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: rect.Width, Height: rect.Height})
	ecs.AddComponent(em, id, &components.ObstacleComponent{Kind: kind})
	return id, nil
}

// NewLoot 在木桶位置创建掉落物
func NewLoot(em *ecs.EntityManager, cfg config.LootConfig, kind components.LootKind, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Size, Height: cfg.Size})
	ecs.AddComponent(em, id, &components.LootComponent{Kind: kind})
	return id
}

// NewKeyIndicator 创建钥匙 HUD 图标
func NewKeyIndicator(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KeyIndicatorComponent{})
	return id
}
