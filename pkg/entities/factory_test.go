package entities

import (
	"math"
	"testing"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/utils"
)

// TestNewProjectile 测试子弹朝目标点发射
func TestNewProjectile(t *testing.T) {
	gp := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()

	tests := []struct {
		name       string
		owner      components.Owner
		toX, toY   float64
		wantVX     float64
		wantVY     float64
		wantDamage int
	}{
		{"玩家向右射击", components.OwnerPlayer, 200, 100, gp.Projectile.Speed, 0, gp.Projectile.Damage},
		{"玩家向下射击", components.OwnerPlayer, 100, 300, 0, gp.Projectile.Speed, gp.Projectile.Damage},
		{"敌人向左射击", components.OwnerEnemy, 0, 100, -gp.Projectile.Speed, 0, gp.Projectile.EnemyDamage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewProjectile(em, gp.Projectile, tt.owner, 7, 100, 100, tt.toX, tt.toY)
			if err != nil {
				t.Fatalf("NewProjectile() error = %v", err)
			}
			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !ok {
				t.Fatal("projectile should have VelocityComponent")
			}
			if math.Abs(vel.VX-tt.wantVX) > 1e-6 || math.Abs(vel.VY-tt.wantVY) > 1e-6 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.VX, vel.VY, tt.wantVX, tt.wantVY)
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if proj.Damage != tt.wantDamage || proj.Owner != tt.owner || proj.Shooter != 7 {
				t.Errorf("projectile = %+v", proj)
			}
		})
	}

	if _, err := NewProjectile(nil, gp.Projectile, components.OwnerPlayer, 0, 0, 0, 1, 1); err == nil {
		t.Error("nil entity manager should fail")
	}
}

func TestNewBombAndExplosion(t *testing.T) {
	gp := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()

	id, err := NewBomb(em, gp.Bomb, 0, 0, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if speed := math.Hypot(vel.VX, vel.VY); math.Abs(speed-gp.Bomb.Speed) > 1e-6 {
		t.Errorf("bomb speed = %v, want %v", speed, gp.Bomb.Speed)
	}
	bomb, _ := ecs.GetComponent[*components.BombComponent](em, id)
	if bomb.Fuse != 0.8 || bomb.Damage != 500 {
		t.Errorf("bomb = %+v", bomb)
	}

	ex := NewExplosion(em, gp.Explosion, 10, 20, bomb.Damage)
	comp, ok := ecs.GetComponent[*components.ExplosionComponent](em, ex)
	if !ok || comp.Size != gp.Explosion.InitialSize || comp.Alpha != 1 || comp.Damage != 500 {
		t.Errorf("explosion = %+v", comp)
	}
}

func TestBuildLevel(t *testing.T) {
	gp := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	level := &config.LevelConfig{
		ID:          "t",
		World:       config.SizeConfig{Width: 500, Height: 500},
		PlayerSpawn: config.PointConfig{X: 50, Y: 50},
		Walls:       []config.RectConfig{{X: 0, Y: 0, Width: 500, Height: 10}},
		Doors:       []config.RectConfig{{X: 200, Y: 10, Width: 10, Height: 50}, {X: 300, Y: 10, Width: 10, Height: 50}},
		Barrels:     []config.RectConfig{{X: 100, Y: 100, Width: 32, Height: 32}},
		Chests:      []config.RectConfig{{X: 400, Y: 400, Width: 40, Height: 32}},
		Exits:       []config.RectConfig{{X: 450, Y: 450, Width: 40, Height: 40}},
		Enemies:     []config.PointConfig{{X: 250, Y: 250}, {X: 350, Y: 250}},
	}

	playerID, err := BuildLevel(em, gp, level, utils.NewRandomService(1))
	if err != nil {
		t.Fatalf("BuildLevel() error = %v", err)
	}
	if !ecs.HasComponent[*components.PlayerComponent](em, playerID) {
		t.Error("returned id should be the player")
	}

	counts := map[components.ObstacleKind]int{}
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](em) {
		o, _ := ecs.GetComponent[*components.ObstacleComponent](em, id)
		counts[o.Kind]++
	}
	want := map[components.ObstacleKind]int{
		components.ObstacleWall: 1, components.ObstacleDoor: 2, components.ObstacleBarrel: 1,
		components.ObstacleChest: 1, components.ObstacleExit: 1,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%s count = %d, want %d", kind, counts[kind], n)
		}
	}

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	if len(enemies) != 2 {
		t.Fatalf("enemy count = %d, want 2", len(enemies))
	}
	for _, id := range enemies {
		e, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if e.AttackInterval < 0.5 || e.AttackInterval > 4.0 {
			t.Errorf("attack interval %v outside [0.5, 4.0]", e.AttackInterval)
		}
		h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if h.CurrentHealth != 100 {
			t.Errorf("enemy health = %d, want 100", h.CurrentHealth)
		}
	}
}

func TestCreateParticleEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	presets := particle.DefaultConfig()

	id, err := CreateParticleEffect(em, presets, particle.PresetExplosion, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, id)
	if !ok || !emitter.Active || emitter.Config.Name != particle.PresetExplosion {
		t.Errorf("emitter = %+v", emitter)
	}

	if _, err := CreateParticleEffect(em, presets, "nope", 0, 0); err == nil {
		t.Error("unknown preset should fail")
	}

	player, _ := NewPlayer(em, config.DefaultGameplayConfig().Player, 40, 50)
	trail, err := CreateFollowingEffect(em, presets, particle.PresetTrail, player)
	if err != nil {
		t.Fatal(err)
	}
	te, _ := ecs.GetComponent[*components.EmitterComponent](em, trail)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, trail)
	if te.Follow != player || pos.X != 40 || pos.Y != 50 {
		t.Errorf("trail should start at and follow the player, got follow=%d pos=%+v", te.Follow, pos)
	}
}
