// Package main provides a particle preset viewer for tuning data/particles.yaml.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--effect <name>   Start with specific preset (e.g., --effect=explosion)
//	--seed <n>        Random seed (0 = time based)
//	--verbose         Enable verbose logging (default off)
//
// Controls:
//
//	Mouse Click       - Spawn current preset at cursor position
//	Left/Right Arrow  - Switch to previous/next preset
//	Space             - Spawn current preset at screen center
//	P                 - Toggle pause
//	R                 - Clear all active particles
//	Q/Escape          - Quit
//
// Must be run from the repository root so data/ is reachable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/embedded"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/systems"
	"github.com/gonewx/uforaid/pkg/utils"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	effectFlag  = flag.String("effect", "", "Start with specific preset name")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// ParticleViewerGame implements ebiten.Game interface for the particle viewer
type ParticleViewerGame struct {
	entityManager  *ecs.EntityManager
	gameState      *game.GameState
	particleSystem *systems.ParticleSystem
	cameraSystem   *systems.CameraSystem
	renderSystem   *systems.RenderSystem

	presets      *particle.ParticleConfig
	names        []string
	currentIndex int

	paused        bool
	statusMessage string
}

// NewParticleViewerGame creates a new particle viewer game instance
func NewParticleViewerGame() (*ParticleViewerGame, error) {
	embedded.Init(os.DirFS("."))
	presets, err := particle.LoadParticleConfig("data/particles.yaml")
	if err != nil {
		log.Printf("Warning: %v (using built-in presets)", err)
		presets = particle.DefaultConfig()
	}
	names := presets.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("no particle presets found")
	}

	em := ecs.NewEntityManager()
	// 世界与屏幕一样大，镜头固定在中心，世界坐标即屏幕坐标
	gs := game.NewGameState("particles", screenWidth, screenHeight)
	cameraCfg := config.CameraConfig{ViewportWidth: screenWidth, ViewportHeight: screenHeight, Zoom: 1, Smoothing: 1}

	g := &ParticleViewerGame{
		entityManager:  em,
		gameState:      gs,
		particleSystem: systems.NewParticleSystem(em, utils.NewRandomService(*seedFlag)),
		cameraSystem:   systems.NewCameraSystem(em, gs, cameraCfg, 0),
		renderSystem:   &systems.RenderSystem{ShowDebug: true, HideHUD: true},
		presets:        presets,
		names:          names,
	}
	if i := slices.Index(names, *effectFlag); i >= 0 {
		g.currentIndex = i
	}

	log.Printf("Particle Viewer initialized: %d presets", len(names))
	g.spawnCurrentEffect(screenWidth/2, screenHeight/2)
	return g, nil
}

func (g *ParticleViewerGame) current() string {
	return g.names[g.currentIndex]
}

func (g *ParticleViewerGame) spawnCurrentEffect(x, y float64) {
	if _, err := entities.CreateParticleEffect(g.entityManager, g.presets, g.current(), x, y); err != nil {
		g.statusMessage = err.Error()
		return
	}
	g.statusMessage = fmt.Sprintf("Spawned %s at (%.0f, %.0f)", g.current(), x, y)
}

// Update updates the game state
func (g *ParticleViewerGame) Update() error {
	dt := 1.0 / 60.0

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		n := g.particleSystem.Clear()
		g.statusMessage = fmt.Sprintf("Cleared %d emitters", n)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.currentIndex = (g.currentIndex + 1) % len(g.names)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.currentIndex = (g.currentIndex - 1 + len(g.names)) % len(g.names)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnCurrentEffect(screenWidth/2, screenHeight/2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.spawnCurrentEffect(g.cameraSystem.ScreenToWorld(float64(x), float64(y)))
	}

	if !g.paused {
		g.particleSystem.Update(dt)
		g.entityManager.RemoveMarkedEntities()
		g.gameState.Tick++
	}
	return nil
}

// Draw renders the particles and the viewer status
func (g *ParticleViewerGame) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, systems.BuildFrame(g.entityManager, g.gameState, g.cameraSystem.Camera()))

	pause := ""
	if g.paused {
		pause = "  [PAUSED]"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Preset %d/%d: %s%s", g.currentIndex+1, len(g.names), g.current(), pause), 10, 10)
	ebitenutil.DebugPrintAt(screen, g.statusMessage, 10, screenHeight-40)
	ebitenutil.DebugPrintAt(screen, "Click/Space: spawn  Left/Right: switch  P: pause  R: clear  Q: quit", 10, screenHeight-20)
}

// Layout returns the logical screen size
func (g *ParticleViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	game, err := NewParticleViewerGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize particle viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Preset Viewer")
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
		os.Exit(1)
	}
}
