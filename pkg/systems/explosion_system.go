package systems

import (
	"log"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// ExplosionSystem 炸弹与爆炸的范围效果
//
// 炸弹按轴分离积分，碰到墙/门时推回边缘并反转该轴速度；
// 引信时间到达后原地生成爆炸。爆炸每帧尺寸增长、透明度衰减，
// 对与爆炸圆相交的敌人造成伤害，尺寸超过上限或完全透明后移除。
type ExplosionSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	collision *CollisionSystem
	explosion config.ExplosionConfig
	margin    float64
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(em *ecs.EntityManager, gs *game.GameState, cs *CollisionSystem, gp *config.GameplayConfig) *ExplosionSystem {
	return &ExplosionSystem{
		em:        em,
		gameState: gs,
		collision: cs,
		explosion: gp.Explosion,
		margin:    gp.World.ExtentMargin,
	}
}

// Update 先推进炸弹，再推进爆炸（本帧引爆的爆炸当帧即生效）
func (s *ExplosionSystem) Update(dt float64) []events.Event {
	var out []events.Event
	out = append(out, s.updateBombs(dt)...)
	out = append(out, s.updateExplosions()...)
	return out
}

func (s *ExplosionSystem) updateBombs(dt float64) []events.Event {
	var out []events.Event

	for _, id := range ecs.GetEntitiesWith1[*components.BombComponent](s.em) {
		bomb, _ := ecs.GetComponent[*components.BombComponent](s.em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			continue
		}
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok {
			continue
		}

		bomb.Elapsed += dt
		s.bounceX(pos, vel, col, dt)
		s.bounceY(pos, vel, col, dt)

		if !s.gameState.InExtent(pos.X, pos.Y, s.margin) {
			s.em.DestroyEntity(id)
			continue
		}

		if bomb.Elapsed > bomb.Fuse {
			s.em.DestroyEntity(id)
			explosionID := entities.NewExplosion(s.em, s.explosion, pos.X, pos.Y, bomb.Damage)
			log.Printf("[Explosion] 炸弹 %d 在 (%.0f, %.0f) 引爆", id, pos.X, pos.Y)
			out = append(out, events.Event{Kind: events.ExplosionTriggered, Entity: explosionID, X: pos.X, Y: pos.Y, Amount: bomb.Damage})
		}
	}
	return out
}

// bounceX 只移动 X 轴，撞墙则贴边并反转 VX,Y 方向速度不受影响
func (s *ExplosionSystem) bounceX(pos *components.PositionComponent, vel *components.VelocityComponent, col *components.CollisionComponent, dt float64) {
	pos.X += vel.VX * dt
	hits := s.collision.Blocking(utils.RectAt(pos.X, pos.Y, col.Width, col.Height))
	if len(hits) == 0 {
		return
	}
	for _, wall := range hits {
		rect, _ := Bounds(s.em, wall)
		if vel.VX > 0 {
			pos.X = min(pos.X, rect.Left()-col.Width/2)
		} else if vel.VX < 0 {
			pos.X = max(pos.X, rect.Right()+col.Width/2)
		}
	}
	vel.VX = -vel.VX
}

func (s *ExplosionSystem) bounceY(pos *components.PositionComponent, vel *components.VelocityComponent, col *components.CollisionComponent, dt float64) {
	pos.Y += vel.VY * dt
	hits := s.collision.Blocking(utils.RectAt(pos.X, pos.Y, col.Width, col.Height))
	if len(hits) == 0 {
		return
	}
	for _, wall := range hits {
		rect, _ := Bounds(s.em, wall)
		if vel.VY > 0 {
			pos.Y = min(pos.Y, rect.Top()-col.Height/2)
		} else if vel.VY < 0 {
			pos.Y = max(pos.Y, rect.Bottom()+col.Height/2)
		}
	}
	vel.VY = -vel.VY
}

func (s *ExplosionSystem) updateExplosions() []events.Event {
	var out []events.Event
	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](s.em)

	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}

		exp.Ticks++
		exp.Size += s.explosion.GrowthPerTick
		exp.Alpha -= s.explosion.FadePerTick

		if s.explosion.SmokeEveryTick {
			out = append(out, events.Effect(particle.PresetSmokePuff, pos.X, pos.Y))
		}

		radius := exp.Size / 2
		for _, enemyID := range enemies {
			if !s.em.IsAlive(enemyID) {
				continue
			}
			rect, ok := Bounds(s.em, enemyID)
			if !ok || !utils.CircleIntersectsRect(pos.X, pos.Y, radius, rect) {
				continue
			}
			if s.explosion.DamageMode == config.DamageModeOncePerEnemy {
				if _, done := exp.Hit[enemyID]; done {
					continue
				}
				exp.Hit[enemyID] = struct{}{}
			}
			out = append(out, damageEnemy(s.em, enemyID, exp.Damage)...)
		}

		if exp.Size > s.explosion.MaxSize || exp.Alpha <= 0 {
			s.em.DestroyEntity(id)
		}
	}
	return out
}
