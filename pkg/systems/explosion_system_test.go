package systems

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/entities"
	"github.com/gonewx/uforaid/pkg/events"
)

// placeBomb 创建一个速度固定的炸弹
func placeBomb(t testing.TB, w *testWorld, x, y, vx, vy float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBomb(w.em, w.gp.Bomb, x, y, x+1, y)
	if err != nil {
		t.Fatalf("NewBomb failed: %v", err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	vel.VX, vel.VY = vx, vy
	return id
}

// 撞到竖直的墙时只反转 X 速度，Y 速度方向不变
func TestExplosionSystem_BounceKeepsOtherAxis(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vy := rapid.Float64Range(20, 200).Draw(rt, "vy")
		if rapid.Bool().Draw(rt, "up") {
			vy = -vy
		}

		w := newTestWorld(t, 1000, 1000)
		w.obstacle(components.ObstacleWall, 600, 0, 20, 1000)
		bomb := placeBomb(t, w, 500, 500, 300, vy)
		bc, _ := ecs.GetComponent[*components.BombComponent](w.em, bomb)
		bc.Fuse = 100
		es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, bomb)
		for i := 0; i < 60 && vel.VX > 0; i++ {
			es.Update(frameDT)
		}
		if vel.VX != -300 {
			rt.Fatalf("VX after bounce = %.2f, want -300", vel.VX)
		}
		if vel.VY != vy {
			rt.Fatalf("VY changed from %.2f to %.2f", vy, vel.VY)
		}
		x, _ := w.position(bomb)
		if x+w.gp.Bomb.Size/2 > 600 {
			rt.Fatalf("bomb overlaps wall after bounce: x=%.2f", x)
		}
	})
}

func TestExplosionSystem_FuseTriggersExplosion(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	bomb := placeBomb(t, w, 400, 300, 0, 0)
	es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

	for i := 0; i < 47; i++ {
		if evs := es.Update(frameDT); countEvents(evs, events.ExplosionTriggered) != 0 {
			t.Fatalf("exploded early at frame %d", i+1)
		}
	}

	triggered := 0
	for i := 0; i < 3; i++ {
		triggered += countEvents(es.Update(frameDT), events.ExplosionTriggered)
	}
	if triggered != 1 {
		t.Fatalf("ExplosionTriggered = %d, want 1", triggered)
	}
	if w.em.IsAlive(bomb) {
		t.Error("bomb should be removed when it explodes")
	}
	explosions := ecs.GetEntitiesWith1[*components.ExplosionComponent](w.em)
	if len(explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(explosions))
	}
	if x, y := w.position(explosions[0]); x != 400 || y != 300 {
		t.Errorf("explosion at (%.0f, %.0f), want (400, 300)", x, y)
	}
}

func TestExplosionSystem_BombLeavingExtent(t *testing.T) {
	w := newTestWorld(t, 400, 400)
	bomb := placeBomb(t, w, 390, 200, 6000, 0)
	es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

	evs := es.Update(frameDT)
	if w.em.IsAlive(bomb) {
		t.Error("bomb outside world extent should be removed")
	}
	if len(evs) != 0 || len(ecs.GetEntitiesWith1[*components.ExplosionComponent](w.em)) != 0 {
		t.Error("bomb leaving the world must not explode")
	}
}

// 持续 T 帧与敌人重叠的爆炸，每帧造成一次伤害
func TestExplosionSystem_DamageEveryTick(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ticks := rapid.IntRange(1, 18).Draw(rt, "ticks")
		damage := rapid.IntRange(1, 100).Draw(rt, "damage")

		w := newTestWorld(t, 800, 600)
		w.gp.Enemy.Health = 100000
		enemy := w.enemy(420, 300)
		entities.NewExplosion(w.em, w.gp.Explosion, 400, 300, damage)
		es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

		for i := 0; i < ticks; i++ {
			es.Update(frameDT)
		}
		if got, want := w.health(enemy), 100000-ticks*damage; got != want {
			rt.Fatalf("health after %d ticks = %d, want %d", ticks, got, want)
		}
	})
}

func TestExplosionSystem_OncePerEnemyMode(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	w.gp.Explosion.DamageMode = config.DamageModeOncePerEnemy
	w.gp.Enemy.Health = 10000
	enemy := w.enemy(420, 300)
	entities.NewExplosion(w.em, w.gp.Explosion, 400, 300, 100)
	es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

	for i := 0; i < 10; i++ {
		es.Update(frameDT)
	}
	if got := w.health(enemy); got != 9900 {
		t.Errorf("health = %d, want 9900", got)
	}
}

func TestExplosionSystem_GrowthAndRemoval(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	id := entities.NewExplosion(w.em, w.gp.Explosion, 400, 300, 500)
	es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)
	exp, _ := ecs.GetComponent[*components.ExplosionComponent](w.em, id)

	evs := es.Update(frameDT)
	if exp.Size != 64+18 {
		t.Errorf("size after one tick = %.1f, want 82", exp.Size)
	}
	if want := 1 - 10.0/255.0; exp.Alpha < want-1e-9 || exp.Alpha > want+1e-9 {
		t.Errorf("alpha after one tick = %.4f, want %.4f", exp.Alpha, want)
	}
	if len(evs) != 1 || evs[0].Kind != events.SpawnEffect || evs[0].Detail != particle.PresetSmokePuff {
		t.Errorf("expected one smoke effect per tick, got %v", evs)
	}

	// 64 + 18*19 = 406 > 400，第 19 帧移除
	ticks := 1
	for w.em.IsAlive(id) && ticks < 100 {
		es.Update(frameDT)
		ticks++
	}
	if ticks != 19 {
		t.Errorf("explosion lived %d ticks, want 19", ticks)
	}
}

func TestExplosionSystem_KillsEnemies(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	near := w.enemy(400, 300)
	far := w.enemy(700, 300)
	entities.NewExplosion(w.em, w.gp.Explosion, 400, 300, 500)
	es := NewExplosionSystem(w.em, w.gs, w.cs, w.gp)

	evs := es.Update(frameDT)
	if w.em.IsAlive(near) {
		t.Error("enemy inside the explosion should die")
	}
	if !w.em.IsAlive(far) || w.health(far) != 100 {
		t.Error("enemy outside the explosion must not be damaged")
	}
	if countEvents(evs, events.EnemyDied) != 1 {
		t.Errorf("EnemyDied = %d, want 1", countEvents(evs, events.EnemyDied))
	}
}
