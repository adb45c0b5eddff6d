package components

import (
	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/ecs"
)

// EmitterComponent 粒子发射器
//
// 生命周期：创建 → 每帧推进 → 耗尽（不再发射且没有存活粒子） → 回收。
// 发射策略与参数来自预设 Config。
type EmitterComponent struct {
	Config *particle.EmitterConfig

	// Active 是否仍会发射；burst 发射完、被取消后为 false
	Active bool
	Age    float64

	// Emitted 已发射的粒子总数
	Emitted int
	// NextSpawnTime interval 策略下一次发射的时间点（发射器年龄）
	NextSpawnTime float64

	// Follow 跟随的实体，maintain 策略每帧把发射点重新对准该实体
	Follow ecs.EntityID

	// ActiveParticles 当前存活的粒子
	ActiveParticles []ecs.EntityID
}
