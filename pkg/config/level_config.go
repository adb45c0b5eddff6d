package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/uforaid/pkg/embedded"
)

// LevelConfig 关卡布局配置
// 矩形使用左上角坐标 + 尺寸描述，加载后由实体工厂换算为中心点。
type LevelConfig struct {
	ID   string `yaml:"id"`   // 关卡ID，如 "level-1"
	Name string `yaml:"name"` // 关卡名称
	Next string `yaml:"next"` // 到达出口后加载的下一关ID，空表示回到本关

	World       SizeConfig  `yaml:"world"`
	PlayerSpawn PointConfig `yaml:"playerSpawn"`

	Walls   []RectConfig  `yaml:"walls"`
	Doors   []RectConfig  `yaml:"doors"`
	Barrels []RectConfig  `yaml:"barrels"`
	Chests  []RectConfig  `yaml:"chests"`
	Exits   []RectConfig  `yaml:"exits"`
	Enemies []PointConfig `yaml:"enemies"`
}

// SizeConfig 尺寸
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointConfig 点坐标
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig 矩形（左上角 + 尺寸）
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"w"`
	Height float64 `yaml:"h"`
}

// Center 返回矩形中心点
func (r RectConfig) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// LevelPath 关卡ID对应的资源路径
func LevelPath(id string) string {
	return fmt.Sprintf("data/levels/%s.yaml", id)
}

// LoadLevelConfig 从嵌入资源加载关卡配置
// 参数：
//
//	path - 关卡配置文件的路径（如 "data/levels/level-1.yaml"）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", path, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析关卡 YAML 并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}
	if err := levelConfig.Validate(); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// Validate 验证关卡配置
//   - 世界尺寸必须为正
//   - 玩家出生点必须在世界范围内
//   - 所有矩形尺寸必须为正
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("level id is required")
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", c.World.Width, c.World.Height)
	}
	if !c.inWorld(c.PlayerSpawn) {
		return fmt.Errorf("player spawn (%.0f, %.0f) is outside the world", c.PlayerSpawn.X, c.PlayerSpawn.Y)
	}

	groups := []struct {
		name  string
		rects []RectConfig
	}{
		{"walls", c.Walls},
		{"doors", c.Doors},
		{"barrels", c.Barrels},
		{"chests", c.Chests},
		{"exits", c.Exits},
	}
	for _, g := range groups {
		for i, r := range g.rects {
			if r.Width <= 0 || r.Height <= 0 {
				return fmt.Errorf("%s[%d] has non-positive size %.0fx%.0f", g.name, i, r.Width, r.Height)
			}
		}
	}

	for i, e := range c.Enemies {
		if !c.inWorld(e) {
			return fmt.Errorf("enemies[%d] (%.0f, %.0f) is outside the world", i, e.X, e.Y)
		}
	}
	return nil
}

func (c *LevelConfig) inWorld(p PointConfig) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= c.World.Width && p.Y <= c.World.Height
}
