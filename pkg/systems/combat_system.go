package systems

import (
	"log"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// CombatSystem 玩家子弹与玩家接触判定
//
// 玩家子弹每帧按以下优先级处理：
//  1. 越出世界范围 → 静默移除
//  2. 撞到墙/门 → 移除，不造成任何效果
//  3. 命中敌人 → 移除，对所有重叠的敌人各造成一次伤害
//  4. 命中木桶 → 移除，木桶破坏并掉落一个物品
//
// 3 和 4 可以在同一帧同时发生。玩家本身与木桶、宝箱、掉落物、出口的接触也在这里处理。
type CombatSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	collision *CollisionSystem
	loot      config.LootConfig
	margin    float64
	rng       utils.Random
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, cs *CollisionSystem, gp *config.GameplayConfig, rng utils.Random) *CombatSystem {
	return &CombatSystem{
		em:        em,
		gameState: gs,
		collision: cs,
		loot:      gp.Loot,
		margin:    gp.World.ExtentMargin,
		rng:       rng,
	}
}

// Update 推进玩家子弹并处理玩家接触
func (s *CombatSystem) Update(dt float64) []events.Event {
	var out []events.Event
	out = append(out, s.updateProjectiles(dt)...)
	out = append(out, s.updatePlayerContacts()...)
	return out
}

func (s *CombatSystem) updateProjectiles(dt float64) []events.Event {
	var out []events.Event

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if proj.Owner != components.OwnerPlayer {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			pos.X += vel.VX * dt
			pos.Y += vel.VY * dt
		}

		if !s.gameState.InExtent(pos.X, pos.Y, s.margin) {
			s.em.DestroyEntity(id)
			continue
		}

		rect, _ := Bounds(s.em, id)
		if len(s.collision.Blocking(rect)) > 0 {
			s.em.DestroyEntity(id)
			continue
		}

		enemies := Overlapping(s.em, rect, ecs.GetEntitiesWith1[*components.EnemyComponent](s.em))
		barrels := s.collision.OfKind(rect, components.ObstacleBarrel)
		if len(enemies) == 0 && len(barrels) == 0 {
			continue
		}
		s.em.DestroyEntity(id)

		for _, enemyID := range enemies {
			out = append(out, damageEnemy(s.em, enemyID, proj.Damage)...)
		}
		for _, barrelID := range barrels {
			out = append(out, s.breakBarrel(barrelID)...)
		}
	}
	return out
}

func (s *CombatSystem) updatePlayerContacts() []events.Event {
	playerRect, ok := Bounds(s.em, s.gameState.PlayerID)
	if !ok {
		return nil
	}
	var out []events.Event

	for _, barrelID := range s.collision.OfKind(playerRect, components.ObstacleBarrel) {
		out = append(out, s.breakBarrel(barrelID)...)
	}

	if s.gameState.Locked && len(s.collision.OfKind(playerRect, components.ObstacleChest)) > 0 {
		out = append(out, s.unlock()...)
	}

	for _, lootID := range Overlapping(s.em, playerRect, ecs.GetEntitiesWith1[*components.LootComponent](s.em)) {
		out = append(out, s.pickUp(lootID)...)
	}

	if !s.gameState.ExitReached && len(s.collision.OfKind(playerRect, components.ObstacleExit)) > 0 {
		s.gameState.ExitReached = true
		log.Printf("[Combat] 到达关卡出口")
		out = append(out, events.Event{Kind: events.LevelExitReached, Entity: s.gameState.PlayerID, Detail: s.gameState.LevelID})
	}
	return out
}

// breakBarrel 破坏木桶并按权重掉落一个物品
// 同一帧内被多次命中的木桶只会掉落一次。
func (s *CombatSystem) breakBarrel(barrelID ecs.EntityID) []events.Event {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, barrelID)
	if !ok {
		return nil
	}
	x, y := pos.X, pos.Y
	if !s.em.DestroyEntity(barrelID) {
		return nil
	}

	kind, _ := utils.ChooseWeighted(s.rng, []utils.WeightedEntry[components.LootKind]{
		{Value: components.LootHeal, Weight: s.loot.HealWeight},
		{Value: components.LootBomb, Weight: s.loot.BombWeight},
	})
	lootID := entities.NewLoot(s.em, s.loot, kind, x, y)
	return []events.Event{{Kind: events.LootDropped, Entity: lootID, X: x, Y: y, Detail: string(kind)}}
}

// unlock 打开宝箱：获得钥匙并移除所有门
func (s *CombatSystem) unlock() []events.Event {
	if !s.gameState.Unlock() {
		return nil
	}
	entities.NewKeyIndicator(s.em)

	doors := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](s.em) {
		obstacle, _ := ecs.GetComponent[*components.ObstacleComponent](s.em, id)
		if obstacle.Kind == components.ObstacleDoor && s.em.DestroyEntity(id) {
			doors++
		}
	}
	log.Printf("[Combat] 获得钥匙,移除 %d 扇门", doors)
	return []events.Event{{Kind: events.KeyObtained, Entity: s.gameState.PlayerID, Amount: doors}}
}

// pickUp 拾取掉落物
func (s *CombatSystem) pickUp(lootID ecs.EntityID) []events.Event {
	loot, ok := ecs.GetComponent[*components.LootComponent](s.em, lootID)
	if !ok || !s.em.DestroyEntity(lootID) {
		return nil
	}

	amount := 0
	switch loot.Kind {
	case components.LootHeal:
		health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.gameState.PlayerID)
		if ok {
			before := health.CurrentHealth
			health.CurrentHealth += s.loot.HealAmount
			if s.loot.HealCapsAtMax && health.CurrentHealth > health.MaxHealth {
				health.CurrentHealth = health.MaxHealth
			}
			amount = health.CurrentHealth - before
		}
	case components.LootBomb:
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.gameState.PlayerID); ok {
			player.BombCount++
			amount = 1
		}
	}
	return []events.Event{{Kind: events.LootPicked, Entity: lootID, Amount: amount, Detail: string(loot.Kind)}}
}
