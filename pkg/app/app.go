// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、场景管理和 ebiten 主循环从 main 包中提取出来。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/scenes"
	"github.com/gonewx/uforaid/pkg/utils"
)

const (
	// GameplayConfigPath 玩法配置文件
	GameplayConfigPath = "data/gameplay.yaml"
	// ParticleConfigPath 粒子预设文件
	ParticleConfigPath = "data/particles.yaml"
	// DefaultLevel 未指定关卡时加载的关卡
	DefaultLevel = "level-1"

	// fixedDeltaTime 固定步长，与 ebiten 默认 TPS 一致
	fixedDeltaTime = 1.0 / 60.0
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "level-2"），为空则从第一关开始
	Level string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Debug 在 HUD 上显示调试信息
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameplay     *config.GameplayConfig
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := config.LoadGameplayConfig(GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	particles, err := particle.LoadParticleConfig(ParticleConfigPath)
	if err != nil {
		return nil, fmt.Errorf("粒子配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载粒子预设 %d 个", len(particles.Names()))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] 随机种子: %d", seed)
	rng := utils.NewRandomService(seed)

	// 创建场景管理器
	sceneManager := game.NewSceneManager(func(levelID string) (game.Scene, error) {
		level, err := config.LoadLevelConfig(config.LevelPath(levelID))
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Gameplay:  gameplay,
			Level:     level,
			Particles: particles,
			Random:    rng,
			ShowDebug: cfg.Debug,
		})
	})

	levelToLoad := cfg.Level
	if levelToLoad == "" {
		levelToLoad = DefaultLevel
	}
	log.Printf("[App] Starting level: %s", levelToLoad)
	if err := sceneManager.LoadLevel(levelToLoad); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		gameplay:     gameplay,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(fixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，与镜头视口一致
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 窗口尺寸（像素）
func (a *App) WindowSize() (int, int) {
	return int(a.gameplay.Camera.ViewportWidth), int(a.gameplay.Camera.ViewportHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
