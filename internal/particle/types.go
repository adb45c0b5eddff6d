// Package particle provides data structures and parsing functionality for
// particle effect presets.
//
// Presets are loaded from YAML (data/particles.yaml). Numeric fields that may
// be randomized per particle use the value-string format understood by
// ParseValue:
//   - Fixed values: "1.5"
//   - Ranges: "[0.5 1.1]" (random value between min and max)
//   - Keyframes: "0,1 1,0" (time,value pairs, time normalized to 0-1)
package particle

// EmitPolicy 发射策略
type EmitPolicy string

const (
	// PolicyBurst 首次更新时一次性发射 Count 个粒子
	PolicyBurst EmitPolicy = "burst"
	// PolicyInterval 每隔 Interval 秒发射一个粒子，直到被取消
	PolicyInterval EmitPolicy = "interval"
	// PolicyMaintain 每帧补足到 Count 个存活粒子
	PolicyMaintain EmitPolicy = "maintain"
)

// VelocityShape 初速度的采样方式
type VelocityShape string

const (
	// ShapeInCircle 在半径为 Radius 的圆内均匀采样
	ShapeInCircle VelocityShape = "in_circle"
	// ShapeOnCircle 在半径为 Radius 的圆周上采样（方向随机，速率固定）
	ShapeOnCircle VelocityShape = "on_circle"
	// ShapeBox 分别从 X、Y 两个值字符串采样
	ShapeBox VelocityShape = "box"
)

// MutatorKind 每帧作用在粒子上的变换
type MutatorKind string

const (
	MutatorNone        MutatorKind = ""
	MutatorGravityDrag MutatorKind = "gravity_drag"
	MutatorSmoke       MutatorKind = "smoke"
)

// ParticleConfig 粒子预设集合，对应 particles.yaml 的根节点
type ParticleConfig struct {
	Presets map[string]*EmitterConfig `yaml:"presets"`
}

// EmitterConfig 单个发射器预设
type EmitterConfig struct {
	// Name 预设名，加载时由 map 的 key 回填
	Name string `yaml:"-"`

	Policy   EmitPolicy `yaml:"policy"`
	Count    int        `yaml:"count"`    // burst 的数量 / maintain 的目标数量
	Interval float64    `yaml:"interval"` // interval 策略的发射间隔（秒）

	// Textures 纹理名列表，每个粒子随机选取一个
	Textures []string `yaml:"textures"`

	Lifetime string `yaml:"lifetime"` // 秒
	Scale    string `yaml:"scale"`
	// Alpha 透明度曲线（0-1），按粒子年龄/寿命归一化求值
	Alpha       string `yaml:"alpha"`
	AlphaInterp string `yaml:"alphaInterp"`

	Velocity VelocityConfig `yaml:"velocity"`
	Mutator  MutatorConfig  `yaml:"mutator"`
}

// VelocityConfig 初速度配置（像素/秒，Y轴向下为正）
type VelocityConfig struct {
	Shape  VelocityShape `yaml:"shape"`
	Radius float64       `yaml:"radius"`
	X      string        `yaml:"x"`
	Y      string        `yaml:"y"`
}

// MutatorConfig 粒子变换参数
// 以 60 帧/秒为基准：Drag、Growth 是每帧乘数，Fade 是每帧额外扣减的透明度。
type MutatorConfig struct {
	Kind    MutatorKind `yaml:"kind"`
	Gravity float64     `yaml:"gravity"` // 像素/秒²，正值向下
	Drag    float64     `yaml:"drag"`
	Growth  float64     `yaml:"growth"`
	Fade    float64     `yaml:"fade"`
}
