// Package sim 把各个系统按固定顺序组装成一帧的模拟步进。
//
// 每次 Tick:
//
//	输入 → 碰撞索引重建 → 敌人感知 → 移动 → 战斗结算 → 炸弹/爆炸
//	→ 执行命令并转发事件 → 粒子 → 镜头 → 释放本帧移除的实体
//
// 玩家死亡后只有粒子和镜头继续推进。
package sim

import (
	"fmt"
	"log"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/systems"
	"github.com/gonewx/uforaid/pkg/utils"
)

// LogOutputFrameInterval 统计日志的输出间隔（帧）
const LogOutputFrameInterval = 600

// Frame 渲染快照
type Frame = systems.Frame

// Options 创建模拟所需的依赖
type Options struct {
	Gameplay  *config.GameplayConfig
	Level     *config.LevelConfig
	Particles *particle.ParticleConfig
	// Random 为 nil 时使用以当前时间为种子的随机源
	Random utils.Random
	// Sink 接收除命令外的所有事件，可以为 nil
	Sink events.Sink
}

// Simulation 一个关卡的模拟
type Simulation struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	gameplay  *config.GameplayConfig
	level     *config.LevelConfig
	particles *particle.ParticleConfig
	sink      events.Sink

	collision  *systems.CollisionSystem
	input      *systems.InputSystem
	perception *systems.PerceptionSystem
	movement   *systems.MovementSystem
	combat     *systems.CombatSystem
	explosion  *systems.ExplosionSystem
	particle   *systems.ParticleSystem
	camera     *systems.CameraSystem

	// 手动开关的特效，0 表示未开启
	trailID    ecs.EntityID
	fountainID ecs.EntityID
}

// New 按关卡配置创建模拟
func New(opts Options) (*Simulation, error) {
	if opts.Gameplay == nil || opts.Level == nil {
		return nil, fmt.Errorf("gameplay and level config are required")
	}
	if opts.Particles == nil {
		opts.Particles = particle.DefaultConfig()
	}
	if opts.Random == nil {
		opts.Random = utils.NewRandomService(0)
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(opts.Level.ID, opts.Level.World.Width, opts.Level.World.Height)

	playerID, err := entities.BuildLevel(em, opts.Gameplay, opts.Level, opts.Random)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", opts.Level.ID, err)
	}
	gs.PlayerID = playerID

	collision := systems.NewCollisionSystem(em, gs, opts.Gameplay.World.CellSize)
	s := &Simulation{
		em:         em,
		gameState:  gs,
		gameplay:   opts.Gameplay,
		level:      opts.Level,
		particles:  opts.Particles,
		sink:       opts.Sink,
		collision:  collision,
		input:      systems.NewInputSystem(em, gs, opts.Gameplay),
		perception: systems.NewPerceptionSystem(em, gs, collision, opts.Gameplay, opts.Random),
		movement:   systems.NewMovementSystem(em, gs, collision),
		combat:     systems.NewCombatSystem(em, gs, collision, opts.Gameplay, opts.Random),
		explosion:  systems.NewExplosionSystem(em, gs, collision, opts.Gameplay),
		particle:   systems.NewParticleSystem(em, opts.Random),
		camera:     systems.NewCameraSystem(em, gs, opts.Gameplay.Camera, playerID),
	}
	log.Printf("[Simulation] 关卡 %s 初始化完成 (%.0fx%.0f), 实体 %d",
		gs.LevelID, gs.WorldWidth, gs.WorldHeight, em.EntityCount())
	return s, nil
}

// Tick 推进一帧，返回本帧产生的事件（包括已执行的特效命令）
func (s *Simulation) Tick(dt float64, in game.InputState) []events.Event {
	if dt < 0 {
		dt = 0
	}
	gs := s.gameState
	if gs.Paused {
		return nil
	}
	gs.Tick++

	s.handleEffectToggles(in)

	var out []events.Event
	if !gs.PlayerDead {
		s.input.Update(in)
		s.collision.Rebuild()
		out = append(out, s.perception.Update(dt)...)
		s.movement.Update(dt)
		out = append(out, s.combat.Update(dt)...)
		out = append(out, s.explosion.Update(dt)...)
	}
	s.apply(out)

	reaped := s.particle.Update(dt)
	s.camera.Update(dt)
	removed := s.em.RemoveMarkedEntities()

	if gs.Tick%LogOutputFrameInterval == 0 {
		log.Printf("[Simulation] tick=%d 实体=%d 发射器=%d 粒子=%d 本帧回收发射器=%d 释放实体=%d",
			gs.Tick, s.em.EntityCount(), s.particle.EmitterCount(), s.particle.ParticleCount(), reaped, removed)
	}
	return out
}

// apply 执行命令，其余事件转发给 Sink
func (s *Simulation) apply(evs []events.Event) {
	for _, e := range evs {
		if e.IsCommand() {
			if _, err := entities.CreateParticleEffect(s.em, s.particles, e.Detail, e.X, e.Y); err != nil {
				log.Printf("[Simulation] 生成特效失败: %v", err)
			}
			continue
		}
		if s.sink != nil {
			s.sink.Publish(e)
		}
	}
}

// handleEffectToggles 处理 C/V/F 三个特效开关
func (s *Simulation) handleEffectToggles(in game.InputState) {
	if in.ClearEffects {
		s.ClearEffects()
	}
	if in.ToggleTrail {
		s.ToggleTrail()
	}
	if in.ToggleFountain {
		s.ToggleFountain()
	}
}

// ClearEffects 移除所有特效
func (s *Simulation) ClearEffects() {
	s.particle.Clear()
	s.trailID = 0
	s.fountainID = 0
}

// ToggleTrail 开关跟随玩家的拖尾，返回切换后是否开启
func (s *Simulation) ToggleTrail() bool {
	if s.trailID != 0 && s.em.IsAlive(s.trailID) {
		s.particle.RemoveEmitter(s.trailID)
		s.trailID = 0
		return false
	}
	id, err := entities.CreateFollowingEffect(s.em, s.particles, particle.PresetTrail, s.gameState.PlayerID)
	if err != nil {
		log.Printf("[Simulation] 开启拖尾失败: %v", err)
		s.trailID = 0
		return false
	}
	s.trailID = id
	return true
}

// ToggleFountain 在玩家当前位置开关喷泉，返回切换后是否开启
func (s *Simulation) ToggleFountain() bool {
	if s.fountainID != 0 && s.em.IsAlive(s.fountainID) {
		s.particle.RemoveEmitter(s.fountainID)
		s.fountainID = 0
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.gameState.PlayerID)
	if !ok {
		return false
	}
	id, err := entities.CreateParticleEffect(s.em, s.particles, particle.PresetFountain, pos.X, pos.Y)
	if err != nil {
		log.Printf("[Simulation] 开启喷泉失败: %v", err)
		return false
	}
	s.fountainID = id
	return true
}

// Snapshot 当前帧的渲染快照
func (s *Simulation) Snapshot() Frame {
	return systems.BuildFrame(s.em, s.gameState, s.camera.Camera())
}

// State 关卡全局状态
func (s *Simulation) State() *game.GameState {
	return s.gameState
}

// EntityManager 底层实体管理器，供测试和调试使用
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.em
}

// Level 当前关卡配置
func (s *Simulation) Level() *config.LevelConfig {
	return s.level
}

// ScreenToWorld 屏幕坐标转换为世界坐标
func (s *Simulation) ScreenToWorld(sx, sy float64) (float64, float64) {
	return s.camera.ScreenToWorld(sx, sy)
}

// SetViewport 窗口尺寸变化时调用
func (s *Simulation) SetViewport(width, height float64) {
	s.camera.SetViewport(width, height)
}

// EmitterCount 存活的特效发射器数量
func (s *Simulation) EmitterCount() int {
	return s.particle.EmitterCount()
}
