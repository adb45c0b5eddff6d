package particle

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/uforaid/pkg/embedded"
	"github.com/gonewx/uforaid/pkg/utils"
)

// 预设名称
const (
	PresetExplosion = "explosion"
	PresetRing      = "ring"
	PresetFountain  = "fountain"
	PresetSmokePuff = "smoke_puff"
	PresetTrail     = "trail"
)

// LoadParticleConfig 从嵌入资源读取并解析粒子预设文件
//
//	config, err := LoadParticleConfig("data/particles.yaml")
func LoadParticleConfig(path string) (*ParticleConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle config %s: %w", path, err)
	}
	config, err := ParseParticleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("particle config %s: %w", path, err)
	}
	return config, nil
}

// ParseParticleConfig 解析 YAML 内容并校验每个预设
func ParseParticleConfig(data []byte) (*ParticleConfig, error) {
	var config ParticleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse particle YAML: %w", err)
	}
	if len(config.Presets) == 0 {
		return nil, fmt.Errorf("particle config contains no presets")
	}
	for name, preset := range config.Presets {
		if preset == nil {
			return nil, fmt.Errorf("preset %q is empty", name)
		}
		preset.Name = name
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 校验所有预设
func (c *ParticleConfig) Validate() error {
	for _, name := range c.Names() {
		if err := c.Presets[name].Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

// Names 返回排序后的预设名
func (c *ParticleConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset 按名称查找预设
func (c *ParticleConfig) Preset(name string) (*EmitterConfig, bool) {
	if c == nil {
		return nil, false
	}
	preset, ok := c.Presets[name]
	return preset, ok
}

// Validate 校验单个预设
func (e *EmitterConfig) Validate() error {
	switch e.Policy {
	case PolicyBurst, PolicyMaintain:
		if e.Count <= 0 {
			return fmt.Errorf("policy %s requires count > 0, got %d", e.Policy, e.Count)
		}
	case PolicyInterval:
		if e.Interval <= 0 {
			return fmt.Errorf("policy interval requires interval > 0, got %v", e.Interval)
		}
	default:
		return fmt.Errorf("unknown policy %q", e.Policy)
	}

	if len(e.Textures) == 0 {
		return fmt.Errorf("at least one texture is required")
	}
	if min, _, kf, _ := ParseValue(e.Lifetime); min <= 0 || kf != nil {
		return fmt.Errorf("lifetime must be a positive value or range, got %q", e.Lifetime)
	}
	if e.AlphaInterp != "" && !utils.IsEaseName(e.AlphaInterp) {
		return fmt.Errorf("unknown alphaInterp %q", e.AlphaInterp)
	}

	switch e.Velocity.Shape {
	case ShapeInCircle, ShapeOnCircle:
		if e.Velocity.Radius < 0 {
			return fmt.Errorf("velocity radius must be >= 0, got %v", e.Velocity.Radius)
		}
	case ShapeBox:
	default:
		return fmt.Errorf("unknown velocity shape %q", e.Velocity.Shape)
	}

	switch e.Mutator.Kind {
	case MutatorNone:
	case MutatorGravityDrag:
		if e.Mutator.Drag <= 0 || e.Mutator.Drag > 1 {
			return fmt.Errorf("gravity_drag drag must be in (0, 1], got %v", e.Mutator.Drag)
		}
	case MutatorSmoke:
		if e.Mutator.Growth <= 0 || e.Mutator.Fade < 0 {
			return fmt.Errorf("smoke mutator requires growth > 0 and fade >= 0")
		}
	default:
		return fmt.Errorf("unknown mutator %q", e.Mutator.Kind)
	}
	return nil
}

// DefaultConfig 内置预设，与 data/particles.yaml 保持一致
// 用于测试以及资源缺失时的回退。
func DefaultConfig() *ParticleConfig {
	sparks := []string{"spark_green", "spark_lime", "spark_cyan", "spark_spring"}
	sparkDrag := MutatorConfig{Kind: MutatorGravityDrag, Gravity: 108, Drag: 0.92}

	presets := map[string]*EmitterConfig{
		PresetExplosion: {
			Policy:   PolicyBurst,
			Count:    80,
			Textures: sparks,
			Lifetime: "[0.5 1.1]",
			Scale:    "[0.35 0.6]",
			Alpha:    "0,1 1,0",
			Velocity: VelocityConfig{Shape: ShapeInCircle, Radius: 540},
			Mutator:  sparkDrag,
		},
		PresetRing: {
			Policy:   PolicyBurst,
			Count:    40,
			Textures: sparks,
			Lifetime: "[0.8 1.4]",
			Scale:    "[0.4 0.7]",
			Alpha:    "0,1 1,0",
			Velocity: VelocityConfig{Shape: ShapeOnCircle, Radius: 300},
			Mutator:  sparkDrag,
		},
		PresetFountain: {
			Policy:   PolicyInterval,
			Interval: 0.02,
			Textures: []string{"puff"},
			Lifetime: "[0.8 1.6]",
			Scale:    "[0.4 0.8]",
			Alpha:    "0,0.94 1,0",
			Velocity: VelocityConfig{Shape: ShapeBox, X: "[-48 48]", Y: "[-360 -240]"},
			Mutator:  sparkDrag,
		},
		PresetSmokePuff: {
			Policy:      PolicyBurst,
			Count:       12,
			Textures:    []string{"smoke"},
			Lifetime:    "[1.5 2.5]",
			Scale:       "[0.6 0.9]",
			Alpha:       "0,0.78 1,0",
			AlphaInterp: "EaseOut",
			Velocity:    VelocityConfig{Shape: ShapeInCircle, Radius: 36},
			Mutator:     MutatorConfig{Kind: MutatorSmoke, Growth: 1.02, Fade: 2.0 / 255.0},
		},
		PresetTrail: {
			Policy:   PolicyMaintain,
			Count:    60,
			Textures: sparks,
			Lifetime: "[0.35 0.9]",
			Scale:    "[0.25 0.9]",
			Alpha:    "0,0.86 1,0",
			Velocity: VelocityConfig{Shape: ShapeInCircle, Radius: 96},
		},
	}
	for name, preset := range presets {
		preset.Name = name
	}
	return &ParticleConfig{Presets: presets}
}
