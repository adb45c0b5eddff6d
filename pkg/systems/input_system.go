package systems

import (
	"log"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/game"
)

// InputSystem 把一帧的玩家输入转换为玩家速度、子弹和炸弹
//
// 输入以 game.InputState 传入，点击坐标已是世界坐标；
// 从 ebiten 采集输入由场景负责，这里不依赖任何窗口状态。
type InputSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	player    config.PlayerConfig
	bullet    config.ProjectileConfig
	bomb      config.BombConfig
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, gp *config.GameplayConfig) *InputSystem {
	return &InputSystem{
		em:        em,
		gameState: gs,
		player:    gp.Player,
		bullet:    gp.Projectile,
		bomb:      gp.Bomb,
	}
}

// Update 处理移动按键和鼠标点击
// 左键向点击位置发射子弹；右键在有炸弹时投掷炸弹。
func (s *InputSystem) Update(in game.InputState) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.gameState.PlayerID)
	if !ok || player.Dead {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.gameState.PlayerID)
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.gameState.PlayerID)
	if !ok {
		return
	}

	dx, dy := in.MoveAxis()
	vel.VX = dx * player.Speed
	vel.VY = dy * player.Speed
	if dx != 0 && dy != 0 {
		vel.VX *= s.player.DiagonalFactor
		vel.VY *= s.player.DiagonalFactor
	}

	for _, click := range in.Clicks {
		switch click.Button {
		case game.MouseLeft:
			if _, err := entities.NewProjectile(s.em, s.bullet, components.OwnerPlayer, s.gameState.PlayerID,
				pos.X, pos.Y, click.X, click.Y); err != nil {
				log.Printf("[InputSystem] 发射子弹失败: %v", err)
			}
		case game.MouseRight:
			if player.BombCount <= 0 {
				continue
			}
			if _, err := entities.NewBomb(s.em, s.bomb, pos.X, pos.Y, click.X, click.Y); err != nil {
				log.Printf("[InputSystem] 投掷炸弹失败: %v", err)
				continue
			}
			if s.bomb.ConsumeOnThrow {
				player.BombCount--
			}
			log.Printf("[InputSystem] 投掷炸弹 -> (%.0f, %.0f), 剩余 %d", click.X, click.Y, player.BombCount)
		}
	}
}
