package entities

import (
	"fmt"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
)

// CreateParticleEffect 在世界坐标处创建粒子发射器实体
//
// Parameters:
//   - em: EntityManager instance for creating entities
//   - presets: 粒子预设集合
//   - effectName: 预设名（如 "explosion", "smoke_puff"）
//   - worldX, worldY: 发射点世界坐标
//
// Returns:
//   - ecs.EntityID: The ID of the created emitter entity
//   - error: 预设不存在时返回错误
//
// Example:
//
//	emitterID, err := CreateParticleEffect(em, presets, particle.PresetExplosion, 400, 300)
func CreateParticleEffect(em *ecs.EntityManager, presets *particle.ParticleConfig, effectName string, worldX, worldY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	preset, ok := presets.Preset(effectName)
	if !ok {
		return 0, fmt.Errorf("unknown particle preset '%s'", effectName)
	}
	return NewEmitter(em, preset, worldX, worldY, 0), nil
}

// CreateFollowingEffect 创建跟随指定实体的发射器（如玩家拖尾）
func CreateFollowingEffect(em *ecs.EntityManager, presets *particle.ParticleConfig, effectName string, target ecs.EntityID) (ecs.EntityID, error) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, target)
	if !ok {
		return 0, fmt.Errorf("follow target %d has no position", target)
	}
	id, err := CreateParticleEffect(em, presets, effectName, pos.X, pos.Y)
	if err != nil {
		return 0, err
	}
	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, id)
	emitter.Follow = target
	return id, nil
}

// NewEmitter 直接用预设创建发射器
func NewEmitter(em *ecs.EntityManager, preset *particle.EmitterConfig, x, y float64, follow ecs.EntityID) ecs.EntityID {
	emitterID := em.CreateEntity()
	ecs.AddComponent(em, emitterID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, emitterID, &components.EmitterComponent{
		Config:          preset,
		Active:          true,
		Follow:          follow,
		ActiveParticles: make([]ecs.EntityID, 0, preset.Count),
	})
	return emitterID
}
