package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/sim"
	"github.com/gonewx/uforaid/pkg/systems"
	"github.com/gonewx/uforaid/pkg/utils"
)

// InputSource 每帧提供玩家输入
// 正式运行时从 ebiten 轮询，测试中可以替换为脚本化输入。
type InputSource interface {
	Poll(toWorld utils.ScreenToWorld) game.InputState
	PauseRequested() bool
}

type ebitenInput struct{}

func (ebitenInput) Poll(toWorld utils.ScreenToWorld) game.InputState { return utils.PollInput(toWorld) }
func (ebitenInput) PauseRequested() bool                             { return utils.PauseJustPressed() }

// GameSceneOptions 创建关卡场景的参数
type GameSceneOptions struct {
	Gameplay  *config.GameplayConfig
	Level     *config.LevelConfig
	Particles *particle.ParticleConfig
	Random    utils.Random
	// Sink 额外的事件接收者，场景自己总会记录日志
	Sink events.Sink
	// Input 为 nil 时使用键盘鼠标
	Input InputSource
	// ShowDebug 在 HUD 上显示调试信息
	ShowDebug bool
}

// GameScene 一个关卡的游戏场景
//
// 场景只负责输入采集、暂停和换关，玩法逻辑全部在 sim.Simulation 中。
// 到达出口后通过 RequestedLevel 向 SceneManager 请求下一关；
// 关卡没有配置下一关时重新开始本关。
type GameScene struct {
	simulation   *sim.Simulation
	renderSystem *systems.RenderSystem
	input        InputSource

	nextLevel string
	requested bool
}

// NewGameScene 创建关卡场景
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Input == nil {
		opts.Input = ebitenInput{}
	}
	sinks := events.Fanout{events.LogSink{}}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}

	s, err := sim.New(sim.Options{
		Gameplay:  opts.Gameplay,
		Level:     opts.Level,
		Particles: opts.Particles,
		Random:    opts.Random,
		Sink:      sinks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	scene := &GameScene{
		simulation:   s,
		renderSystem: systems.NewRenderSystem(),
		input:        opts.Input,
		nextLevel:    opts.Level.Next,
	}
	scene.renderSystem.ShowDebug = opts.ShowDebug
	if scene.nextLevel == "" {
		scene.nextLevel = opts.Level.ID
	}
	log.Printf("[GameScene] 进入关卡 %s (%s), 下一关 %s", opts.Level.ID, opts.Level.Name, scene.nextLevel)
	return scene, nil
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	gs := s.simulation.State()
	if s.input.PauseRequested() {
		gs.TogglePause()
		log.Printf("[GameScene] 暂停: %v", gs.Paused)
	}

	in := s.input.Poll(s.simulation.ScreenToWorld)
	s.simulation.Tick(deltaTime, in)
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.simulation.Snapshot())
}

// RequestedLevel 到达出口后返回下一关ID，每个场景只请求一次
func (s *GameScene) RequestedLevel() string {
	if s.requested || !s.simulation.State().ExitReached {
		return ""
	}
	s.requested = true
	return s.nextLevel
}

// Simulation 场景持有的模拟
func (s *GameScene) Simulation() *sim.Simulation {
	return s.simulation
}
