package systems

import (
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/game"
)

// SpriteKind 渲染层区分实体外观用的类型
type SpriteKind string

const (
	SpritePlayer       SpriteKind = "player"
	SpriteEnemy        SpriteKind = "enemy"
	SpritePlayerBullet SpriteKind = "player_bullet"
	SpriteEnemyBullet  SpriteKind = "enemy_bullet"
	SpriteBomb         SpriteKind = "bomb"
	SpriteExplosion    SpriteKind = "explosion"
	SpriteLootHeal     SpriteKind = "loot_heal"
	SpriteLootBomb     SpriteKind = "loot_bomb"
	SpriteWall         SpriteKind = "wall"
	SpriteDoor         SpriteKind = "door"
	SpriteBarrel       SpriteKind = "barrel"
	SpriteChest        SpriteKind = "chest"
	SpriteExit         SpriteKind = "exit"
)

// Sprite 一个可绘制实体的只读快照（世界坐标，中心点）
type Sprite struct {
	ID     ecs.EntityID
	Kind   SpriteKind
	X, Y   float64
	W, H   float64
	Angle  float64
	Alpha  float64
	Aware  bool // 敌人是否发现了玩家
	Health int
	Max    int
}

// ParticleView 一个粒子的渲染状态
type ParticleView struct {
	X, Y    float64
	Scale   float64
	Alpha   float64
	Texture string
}

// HUD 界面需要的玩家状态
type HUD struct {
	PlayerX     float64
	PlayerY     float64
	Health      int
	MaxHealth   int
	Bombs       int
	HasKey      bool
	Dead        bool
	ExitReached bool
	Paused      bool
	Level       string
	Emitters    int
}

// Frame 一帧的渲染快照
// 渲染层只读取 Frame，不直接访问实体管理器。
type Frame struct {
	Tick        uint64
	WorldWidth  float64
	WorldHeight float64
	CameraX     float64
	CameraY     float64
	Zoom        float64
	ViewportW   float64
	ViewportH   float64

	Sprites   []Sprite
	Particles []ParticleView
	HUD       HUD
}

var obstacleSprites = map[components.ObstacleKind]SpriteKind{
	components.ObstacleWall:   SpriteWall,
	components.ObstacleDoor:   SpriteDoor,
	components.ObstacleBarrel: SpriteBarrel,
	components.ObstacleChest:  SpriteChest,
	components.ObstacleExit:   SpriteExit,
}

// BuildFrame 从实体管理器生成渲染快照
// 绘制顺序：出口/障碍物 → 掉落物 → 敌人 → 玩家 → 子弹/炸弹 → 爆炸
func BuildFrame(em *ecs.EntityManager, gs *game.GameState, cam *components.CameraComponent) Frame {
	f := Frame{
		Tick:        gs.Tick,
		WorldWidth:  gs.WorldWidth,
		WorldHeight: gs.WorldHeight,
		CameraX:     gs.CameraX,
		CameraY:     gs.CameraY,
		Zoom:        1,
	}
	if cam != nil {
		f.Zoom = cam.Zoom
		f.ViewportW = cam.ViewportWidth
		f.ViewportH = cam.ViewportHeight
	}

	add := func(id ecs.EntityID, kind SpriteKind) *Sprite {
		rect, ok := Bounds(em, id)
		if !ok {
			return nil
		}
		f.Sprites = append(f.Sprites, Sprite{ID: id, Kind: kind, X: rect.CX, Y: rect.CY, W: rect.W, H: rect.H, Alpha: 1})
		return &f.Sprites[len(f.Sprites)-1]
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](em) {
		obstacle, _ := ecs.GetComponent[*components.ObstacleComponent](em, id)
		add(id, obstacleSprites[obstacle.Kind])
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LootComponent](em) {
		loot, _ := ecs.GetComponent[*components.LootComponent](em, id)
		kind := SpriteLootHeal
		if loot.Kind == components.LootBomb {
			kind = SpriteLootBomb
		}
		add(id, kind)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if s := add(id, SpriteEnemy); s != nil {
			s.Aware = enemy.Perception == components.PerceptionAware
			if h, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
				s.Health, s.Max = h.CurrentHealth, h.MaxHealth
			}
		}
	}
	if s := add(gs.PlayerID, SpritePlayer); s != nil {
		f.HUD.PlayerX, f.HUD.PlayerY = s.X, s.Y
		if h, ok := ecs.GetComponent[*components.HealthComponent](em, gs.PlayerID); ok {
			s.Health, s.Max = h.CurrentHealth, h.MaxHealth
			f.HUD.Health, f.HUD.MaxHealth = h.CurrentHealth, h.MaxHealth
		}
		if p, ok := ecs.GetComponent[*components.PlayerComponent](em, gs.PlayerID); ok {
			f.HUD.Bombs = p.BombCount
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		kind := SpritePlayerBullet
		if proj.Owner == components.OwnerEnemy {
			kind = SpriteEnemyBullet
		}
		if s := add(id, kind); s != nil {
			s.Angle = proj.Angle
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BombComponent](em) {
		add(id, SpriteBomb)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.PositionComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		f.Sprites = append(f.Sprites, Sprite{ID: id, Kind: SpriteExplosion, X: pos.X, Y: pos.Y, W: exp.Size, H: exp.Size, Alpha: exp.Alpha})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		f.Particles = append(f.Particles, ParticleView{X: pos.X, Y: pos.Y, Scale: p.Scale, Alpha: p.Alpha, Texture: p.Texture})
	}

	f.HUD.HasKey = len(ecs.GetEntitiesWith1[*components.KeyIndicatorComponent](em)) > 0
	f.HUD.Dead = gs.PlayerDead
	f.HUD.ExitReached = gs.ExitReached
	f.HUD.Paused = gs.Paused
	f.HUD.Level = gs.LevelID
	f.HUD.Emitters = len(ecs.GetEntitiesWith1[*components.EmitterComponent](em))
	return f
}
