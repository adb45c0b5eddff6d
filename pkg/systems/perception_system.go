package systems

import (
	"log"
	"math"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// PerceptionSystem 敌人感知与行为
//
// 每个敌人每帧依次：
//  1. 推进自己发射的子弹（越界/撞墙移除，命中玩家造成伤害）
//  2. 边界框在 PulseMin 与 PulseMax 之间来回缩放
//  3. 每隔 VisionInterval 秒重新判定能否看到玩家（距离 + 视线）
//  4. 看到玩家时朝玩家移动，射击计时器到点后开火并重新随机间隔
//
// 敌人的位移由 MovementSystem 统一积分，这里只设置速度。
type PerceptionSystem struct {
	em         *ecs.EntityManager
	gameState  *game.GameState
	collision  *CollisionSystem
	enemyCfg   config.EnemyConfig
	projectile config.ProjectileConfig
	margin     float64
	rng        utils.Random
}

// NewPerceptionSystem 创建敌人感知系统
func NewPerceptionSystem(em *ecs.EntityManager, gs *game.GameState, cs *CollisionSystem, gp *config.GameplayConfig, rng utils.Random) *PerceptionSystem {
	return &PerceptionSystem{
		em:         em,
		gameState:  gs,
		collision:  cs,
		enemyCfg:   gp.Enemy,
		projectile: gp.Projectile,
		margin:     gp.World.ExtentMargin,
		rng:        rng,
	}
}

// Update 更新所有敌人
func (ps *PerceptionSystem) Update(dt float64) []events.Event {
	var out []events.Event

	for _, enemyID := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](ps.em) {
		// 前面的敌人子弹可能已经结束了战斗，但敌人自身仍然存活
		if !ps.em.IsAlive(enemyID) {
			continue
		}
		out = append(out, ps.advanceProjectiles(enemyID, dt)...)
		ps.pulse(enemyID, dt)
		ps.think(enemyID, dt)
	}
	return out
}

// advanceProjectiles 推进敌人自己的子弹
func (ps *PerceptionSystem) advanceProjectiles(enemyID ecs.EntityID, dt float64) []events.Event {
	var out []events.Event

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](ps.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
		if proj.Owner != components.OwnerEnemy || proj.Shooter != enemyID {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, id); ok {
			pos.X += vel.VX * dt
			pos.Y += vel.VY * dt
		}

		if !ps.gameState.InExtent(pos.X, pos.Y, ps.margin) {
			ps.em.DestroyEntity(id)
			continue
		}
		rect, _ := Bounds(ps.em, id)
		if len(ps.collision.Blocking(rect)) > 0 {
			ps.em.DestroyEntity(id)
			continue
		}

		playerRect, ok := Bounds(ps.em, ps.gameState.PlayerID)
		if ok && rect.Intersects(playerRect) {
			ps.em.DestroyEntity(id)
			out = append(out, damagePlayer(ps.em, ps.gameState, proj.Damage)...)
		}
	}
	return out
}

// pulse 边界框尺寸在上下限之间往返
func (ps *PerceptionSystem) pulse(enemyID ecs.EntityID, dt float64) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](ps.em, enemyID)
	col, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, enemyID)
	if !ok {
		return
	}

	size := col.Width + enemy.PulseDirection*dt
	if size > ps.enemyCfg.PulseMax || size < ps.enemyCfg.PulseMin {
		enemy.PulseDirection = -enemy.PulseDirection
		size = utils.Clamp(size, ps.enemyCfg.PulseMin, ps.enemyCfg.PulseMax)
	}
	col.Width = size
	col.Height = size
}

// think 视线判定、追击与射击
func (ps *PerceptionSystem) think(enemyID ecs.EntityID, dt float64) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](ps.em, enemyID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, enemyID)
	vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, enemyID)
	if !ok {
		return
	}

	playerPos, playerAlive := ecs.GetComponent[*components.PositionComponent](ps.em, ps.gameState.PlayerID)
	if !playerAlive {
		enemy.Perception = components.PerceptionUnaware
		vel.VX, vel.VY = 0, 0
		return
	}

	enemy.VisionTimer += dt
	enemy.AttackTimer += dt

	if enemy.VisionTimer > ps.enemyCfg.VisionInterval {
		enemy.VisionTimer = 0
		previous := enemy.Perception
		enemy.Perception = components.PerceptionUnaware
		if math.Hypot(playerPos.X-pos.X, playerPos.Y-pos.Y) < enemy.DetectionRadius &&
			ps.collision.LineOfSight(pos.X, pos.Y, playerPos.X, playerPos.Y, ps.enemyCfg.SightResolution) {
			enemy.Perception = components.PerceptionAware
		}
		if previous != enemy.Perception {
			log.Printf("[Perception] 敌人 %d: %s -> %s", enemyID, previous, enemy.Perception)
		}
	}

	if enemy.Perception != components.PerceptionAware {
		vel.VX, vel.VY = 0, 0
		return
	}

	dx := playerPos.X - pos.X
	dy := playerPos.Y - pos.Y
	if dist := math.Hypot(dx, dy); dist > ps.enemyCfg.StopDistance {
		vel.VX = dx / dist * enemy.Speed
		vel.VY = dy / dist * enemy.Speed
	}

	if enemy.AttackTimer >= enemy.AttackInterval {
		enemy.AttackTimer = 0
		enemy.AttackInterval = utils.Uniform(ps.rng, ps.enemyCfg.AttackInterval.Min, ps.enemyCfg.AttackInterval.Max)
		if _, err := entities.NewProjectile(ps.em, ps.projectile, components.OwnerEnemy, enemyID,
			pos.X, pos.Y, playerPos.X, playerPos.Y); err != nil {
			log.Printf("[Perception] 敌人 %d 射击失败: %v", enemyID, err)
		}
	}
}

// damagePlayer 玩家受到伤害，生命值最低为 0，死亡事件只发一次
func damagePlayer(em *ecs.EntityManager, gs *game.GameState, amount int) []events.Event {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, gs.PlayerID)
	if !ok || amount <= 0 {
		return nil
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, gs.PlayerID)
	if !ok || player.Dead {
		return nil
	}

	health.CurrentHealth = max(0, health.CurrentHealth-amount)
	out := []events.Event{{Kind: events.PlayerDamaged, Entity: gs.PlayerID, Amount: amount}}
	if health.CurrentHealth == 0 {
		player.Dead = true
		gs.PlayerDead = true
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, gs.PlayerID)
		out = append(out, events.Event{Kind: events.PlayerDied, Entity: gs.PlayerID, X: pos.X, Y: pos.Y})
		log.Printf("[Perception] 玩家死亡")
	}
	return out
}
