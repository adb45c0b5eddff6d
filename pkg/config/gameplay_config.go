package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/uforaid/pkg/embedded"
)

// 爆炸伤害模式
const (
	// DamageModePerTick 爆炸存在期间每帧对重叠的敌人造成一次伤害
	DamageModePerTick = "per_tick"
	// DamageModeOncePerEnemy 每个敌人在一次爆炸中只受一次伤害
	DamageModeOncePerEnemy = "once_per_enemy"
)

// GameplayConfig 玩法数值配置
//
// 配置文件位置：data/gameplay.yaml
// 速度单位为像素/秒，时间单位为秒。
type GameplayConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Bomb       BombConfig       `yaml:"bomb"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Loot       LootConfig       `yaml:"loot"`
	Camera     CameraConfig     `yaml:"camera"`
	World      WorldConfig      `yaml:"world"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`
	MaxHealth  int     `yaml:"maxHealth"`
	StartBombs int     `yaml:"startBombs"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	// DiagonalFactor 斜向移动时两个分量的缩放系数
	DiagonalFactor float64 `yaml:"diagonalFactor"`
}

// EnemyConfig 敌人（飞碟）配置
type EnemyConfig struct {
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	DetectionRadius float64 `yaml:"detectionRadius"`
	// VisionInterval 视线重新判定的间隔
	VisionInterval float64 `yaml:"visionInterval"`
	// SightResolution 视线采样步长
	SightResolution float64     `yaml:"sightResolution"`
	AttackInterval  RangeConfig `yaml:"attackInterval"`
	// StopDistance 与玩家距离小于该值时保持原速度
	StopDistance float64 `yaml:"stopDistance"`
	PulseMin     float64 `yaml:"pulseMin"`
	PulseMax     float64 `yaml:"pulseMax"`
	PulseSpeed   float64 `yaml:"pulseSpeed"`
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	Speed       float64 `yaml:"speed"`
	Damage      int     `yaml:"damage"`
	EnemyDamage int     `yaml:"enemyDamage"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// BombConfig 炸弹配置
type BombConfig struct {
	Speed  float64 `yaml:"speed"`
	Fuse   float64 `yaml:"fuse"`
	Damage int     `yaml:"damage"`
	Size   float64 `yaml:"size"`
	// ConsumeOnThrow 投掷时是否扣减炸弹数量
	ConsumeOnThrow bool `yaml:"consumeOnThrow"`
}

// ExplosionConfig 爆炸配置，增长和淡出都是每帧固定增量
type ExplosionConfig struct {
	InitialSize   float64 `yaml:"initialSize"`
	GrowthPerTick float64 `yaml:"growthPerTick"`
	FadePerTick   float64 `yaml:"fadePerTick"`
	MaxSize       float64 `yaml:"maxSize"`
	DamageMode    string  `yaml:"damageMode"`
	// SmokeEveryTick 每帧在爆炸中心请求一次烟雾粒子
	SmokeEveryTick bool `yaml:"smokeEveryTick"`
}

// LootConfig 掉落物配置
type LootConfig struct {
	HealAmount int     `yaml:"healAmount"`
	HealWeight int     `yaml:"healWeight"`
	BombWeight int     `yaml:"bombWeight"`
	Size       float64 `yaml:"size"`
	// HealCapsAtMax 治疗是否封顶到最大生命值
	HealCapsAtMax bool `yaml:"healCapsAtMax"`
}

// CameraConfig 镜头配置
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewportWidth"`
	ViewportHeight float64 `yaml:"viewportHeight"`
	Zoom           float64 `yaml:"zoom"`
	Smoothing      float64 `yaml:"smoothing"`
}

// WorldConfig 世界配置
type WorldConfig struct {
	// ExtentMargin 子弹/炸弹允许越出世界边界的距离，超出即销毁
	ExtentMargin float64 `yaml:"extentMargin"`
	// CellSize 碰撞空间哈希的格子尺寸
	CellSize float64 `yaml:"cellSize"`
}

// RangeConfig 数值范围
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultGameplayConfig 返回默认配置，与 data/gameplay.yaml 一致
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerConfig{
			Speed:          300,
			MaxHealth:      100,
			StartBombs:     0,
			Width:          32,
			Height:         46,
			DiagonalFactor: 0.7071,
		},
		Enemy: EnemyConfig{
			Health:          100,
			Speed:           90,
			DetectionRadius: 500,
			VisionInterval:  0.2,
			SightResolution: 16,
			AttackInterval:  RangeConfig{Min: 0.5, Max: 4.0},
			StopDistance:    10,
			PulseMin:        58,
			PulseMax:        70,
			PulseSpeed:      15,
		},
		Projectile: ProjectileConfig{
			Speed:       800,
			Damage:      50,
			EnemyDamage: 10,
			Width:       14,
			Height:      14,
		},
		Bomb: BombConfig{
			Speed:          300,
			Fuse:           0.8,
			Damage:         500,
			Size:           24,
			ConsumeOnThrow: true,
		},
		Explosion: ExplosionConfig{
			InitialSize:    64,
			GrowthPerTick:  18,
			FadePerTick:    10.0 / 255.0,
			MaxSize:        400,
			DamageMode:     DamageModePerTick,
			SmokeEveryTick: true,
		},
		Loot: LootConfig{
			HealAmount:    30,
			HealWeight:    70,
			BombWeight:    30,
			Size:          24,
			HealCapsAtMax: true,
		},
		Camera: CameraConfig{
			ViewportWidth:  1280,
			ViewportHeight: 720,
			Zoom:           2,
			Smoothing:      0.15,
		},
		World: WorldConfig{
			ExtentMargin: 64,
			CellSize:     64,
		},
	}
}

// LoadGameplayConfig 从嵌入资源加载玩法配置
//
// 文件中缺省的字段保留 DefaultGameplayConfig 的值。
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析玩法配置 YAML
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	config := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return config, nil
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	if c.Player.Speed <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player speed and maxHealth must be positive")
	}
	if c.Player.DiagonalFactor <= 0 || c.Player.DiagonalFactor > 1 {
		return fmt.Errorf("player diagonalFactor must be in (0, 1], got %.4f", c.Player.DiagonalFactor)
	}
	if c.Enemy.Health <= 0 || c.Enemy.DetectionRadius <= 0 {
		return fmt.Errorf("enemy health and detectionRadius must be positive")
	}
	if c.Enemy.VisionInterval < 0 || c.Enemy.SightResolution <= 0 {
		return fmt.Errorf("enemy visionInterval must be >= 0 and sightResolution > 0")
	}
	if c.Enemy.AttackInterval.Min <= 0 || c.Enemy.AttackInterval.Min > c.Enemy.AttackInterval.Max {
		return fmt.Errorf("enemy attackInterval invalid: min(%.2f) max(%.2f)",
			c.Enemy.AttackInterval.Min, c.Enemy.AttackInterval.Max)
	}
	if c.Enemy.PulseMin <= 0 || c.Enemy.PulseMin > c.Enemy.PulseMax {
		return fmt.Errorf("enemy pulse range invalid: min(%.1f) > max(%.1f)", c.Enemy.PulseMin, c.Enemy.PulseMax)
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Damage < 0 || c.Projectile.EnemyDamage < 0 {
		return fmt.Errorf("projectile speed must be positive and damage non-negative")
	}
	if c.Bomb.Speed <= 0 || c.Bomb.Fuse <= 0 {
		return fmt.Errorf("bomb speed and fuse must be positive")
	}
	if c.Explosion.GrowthPerTick < 0 || c.Explosion.FadePerTick <= 0 || c.Explosion.MaxSize <= c.Explosion.InitialSize {
		return fmt.Errorf("explosion must fade each tick and maxSize must exceed initialSize")
	}
	switch c.Explosion.DamageMode {
	case DamageModePerTick, DamageModeOncePerEnemy:
	default:
		return fmt.Errorf("unknown explosion damageMode %q", c.Explosion.DamageMode)
	}
	if c.Loot.HealWeight < 0 || c.Loot.BombWeight < 0 || c.Loot.HealWeight+c.Loot.BombWeight == 0 {
		return fmt.Errorf("loot weights must be non-negative with a positive sum")
	}
	if c.Camera.Zoom <= 0 || c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("camera zoom must be positive and smoothing in (0, 1]")
	}
	if c.World.CellSize <= 0 || c.World.ExtentMargin < 0 {
		return fmt.Errorf("world cellSize must be positive and extentMargin non-negative")
	}
	return nil
}
