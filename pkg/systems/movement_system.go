package systems

import (
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// MovementSystem 玩家与敌人的位移积分
//
// 按轴分离处理：先移动 X，与墙/门重叠则推回到障碍物边缘；再对 Y 做同样处理。
// 这样贴墙斜向移动时仍能沿墙滑动。最终位置夹紧在世界范围内。
// 子弹和炸弹有各自的碰撞规则，不在这里处理。
type MovementSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	collision *CollisionSystem
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState, cs *CollisionSystem) *MovementSystem {
	return &MovementSystem{em: em, gameState: gs, collision: cs}
}

// Update 移动玩家和所有敌人
func (ms *MovementSystem) Update(dt float64) {
	movers := []ecs.EntityID{ms.gameState.PlayerID}
	movers = append(movers, ecs.GetEntitiesWith1[*components.EnemyComponent](ms.em)...)

	for _, id := range movers {
		ms.move(id, dt)
	}
}

func (ms *MovementSystem) move(id ecs.EntityID, dt float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](ms.em, id)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](ms.em, id)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](ms.em, id)
	if !ok {
		return
	}

	if vel.VX != 0 {
		pos.X += vel.VX * dt
		for _, wall := range ms.collision.Blocking(utils.RectAt(pos.X, pos.Y, col.Width, col.Height)) {
			rect, _ := Bounds(ms.em, wall)
			if vel.VX > 0 {
				pos.X = min(pos.X, rect.Left()-col.Width/2)
			} else {
				pos.X = max(pos.X, rect.Right()+col.Width/2)
			}
		}
	}

	if vel.VY != 0 {
		pos.Y += vel.VY * dt
		for _, wall := range ms.collision.Blocking(utils.RectAt(pos.X, pos.Y, col.Width, col.Height)) {
			rect, _ := Bounds(ms.em, wall)
			if vel.VY > 0 {
				pos.Y = min(pos.Y, rect.Top()-col.Height/2)
			} else {
				pos.Y = max(pos.Y, rect.Bottom()+col.Height/2)
			}
		}
	}

	pos.X = utils.Clamp(pos.X, col.Width/2, ms.gameState.WorldWidth-col.Width/2)
	pos.Y = utils.Clamp(pos.Y, col.Height/2, ms.gameState.WorldHeight-col.Height/2)
}
