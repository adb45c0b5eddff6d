package systems

import (
	"testing"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// testWorld 测试用的最小世界
// 这是一个测试辅助结构，被多个测试文件共享使用
type testWorld struct {
	t   testing.TB
	em  *ecs.EntityManager
	gs  *game.GameState
	gp  *config.GameplayConfig
	cs  *CollisionSystem
	rng utils.Random
}

func newTestWorld(t testing.TB, width, height float64) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	gs := game.NewGameState("test", width, height)
	gp := config.DefaultGameplayConfig()
	return &testWorld{
		t:   t,
		em:  em,
		gs:  gs,
		gp:  gp,
		cs:  NewCollisionSystem(em, gs, gp.World.CellSize),
		rng: utils.NewRandomService(42),
	}
}

// obstacle 以左上角坐标创建障碍物，并重建碰撞索引
func (w *testWorld) obstacle(kind components.ObstacleKind, x, y, width, height float64) ecs.EntityID {
	w.t.Helper()
	id, err := entities.NewObstacle(w.em, kind, config.RectConfig{X: x, Y: y, Width: width, Height: height})
	if err != nil {
		w.t.Fatalf("NewObstacle failed: %v", err)
	}
	w.cs.Rebuild()
	return id
}

func (w *testWorld) player(x, y float64) ecs.EntityID {
	w.t.Helper()
	id, err := entities.NewPlayer(w.em, w.gp.Player, x, y)
	if err != nil {
		w.t.Fatalf("NewPlayer failed: %v", err)
	}
	w.gs.PlayerID = id
	return id
}

func (w *testWorld) enemy(x, y float64) ecs.EntityID {
	w.t.Helper()
	id, err := entities.NewEnemy(w.em, w.gp.Enemy, w.rng, x, y)
	if err != nil {
		w.t.Fatalf("NewEnemy failed: %v", err)
	}
	return id
}

// playerShot 创建一颗玩家子弹，停在 (x, y) 不动
func (w *testWorld) playerShot(x, y float64, damage int) ecs.EntityID {
	w.t.Helper()
	id, err := entities.NewProjectile(w.em, w.gp.Projectile, components.OwnerPlayer, w.gs.PlayerID, x, y, x+1, y)
	if err != nil {
		w.t.Fatalf("NewProjectile failed: %v", err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	vel.VX, vel.VY = 0, 0
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
	proj.Damage = damage
	return id
}

func (w *testWorld) health(id ecs.EntityID) int {
	h, ok := ecs.GetComponent[*components.HealthComponent](w.em, id)
	if !ok {
		return -1
	}
	return h.CurrentHealth
}

func (w *testWorld) position(id ecs.EntityID) (float64, float64) {
	w.t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		w.t.Fatalf("entity %d has no position", id)
	}
	return pos.X, pos.Y
}

// countEvents 统计指定类型事件的数量
func countEvents(evs []events.Event, kind events.Kind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// fixedRandom 返回固定值的随机源
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }

func (r fixedRandom) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}
