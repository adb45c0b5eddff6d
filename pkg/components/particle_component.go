package components

import (
	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/ecs"
)

// ParticleComponent 单个粒子的运行时状态
// 位置保存在 PositionComponent 中。
type ParticleComponent struct {
	// Velocity (速度，像素/秒)
	VelocityX float64
	VelocityY float64

	Scale float64

	// Alpha 当前透明度（0-1）= 透明度曲线值 - 额外淡出量
	Alpha          float64
	AlphaKeyframes []particle.Keyframe
	AlphaInterp    string
	// ExtraFade 变换器累计的额外淡出量
	ExtraFade float64

	Age      float64
	Lifetime float64

	Texture string
	Mutator particle.MutatorConfig

	// Emitter 所属发射器
	Emitter ecs.EntityID
}
