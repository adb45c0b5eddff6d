package systems

import (
	"log"
	"math"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/utils"
)

// maxSpawnsPerTick interval 策略单帧补发的上限，防止长时间卡顿后一次生成过多粒子
const maxSpawnsPerTick = 64

// ParticleSystem manages all particle emitters and individual particles.
//
// The system processes particles in two phases:
//  1. Update all particles (age, integrate velocity, apply mutator, retire)
//  2. Update all emitters (drop retired handles, spawn by policy, reap exhausted)
//
// Particles are retired before emitters are examined, so a burst emitter is
// reaped in the same tick its last particle's lifetime elapses. Both phases
// iterate a snapshot of the entity set; emitters removed by RemoveEmitter or
// Clear in the middle of a tick are simply skipped.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	rng           utils.Random
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(em *ecs.EntityManager, rng utils.Random) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		rng:           rng,
	}
}

// Update processes all particles and emitters for the current frame.
// Returns the number of emitters reaped this tick.
func (ps *ParticleSystem) Update(dt float64) int {
	ps.updateParticles(dt)
	return ps.updateEmitters(dt)
}

// updateParticles 推进所有粒子
func (ps *ParticleSystem) updateParticles(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](ps.EntityManager) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)

		p.Age += dt
		if p.Age >= p.Lifetime {
			ps.EntityManager.DestroyEntity(id)
			continue
		}

		pos.X += p.VelocityX * dt
		pos.Y += p.VelocityY * dt
		applyMutator(p, dt)

		base := 1.0
		if len(p.AlphaKeyframes) > 0 {
			base = particle.EvaluateKeyframes(p.AlphaKeyframes, p.Age/p.Lifetime, p.AlphaInterp)
		}
		p.Alpha = base - p.ExtraFade
		if p.Alpha <= 0 {
			ps.EntityManager.DestroyEntity(id)
		}
	}
}

// applyMutator 以 60 帧/秒为基准换算每帧参数，保证不同帧率下效果一致
func applyMutator(p *components.ParticleComponent, dt float64) {
	frames := dt * 60
	switch p.Mutator.Kind {
	case particle.MutatorGravityDrag:
		p.VelocityY += p.Mutator.Gravity * dt
		drag := math.Pow(p.Mutator.Drag, frames)
		p.VelocityX *= drag
		p.VelocityY *= drag
	case particle.MutatorSmoke:
		p.Scale *= math.Pow(p.Mutator.Growth, frames)
		p.ExtraFade += p.Mutator.Fade * frames
	}
}

// updateEmitters 按策略发射并回收耗尽的发射器
func (ps *ParticleSystem) updateEmitters(dt float64) int {
	reaped := 0
	for _, emitterID := range ecs.GetEntitiesWith2[*components.EmitterComponent, *components.PositionComponent](ps.EntityManager) {
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, emitterID)
		position, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, emitterID)

		emitter.Age += dt

		// 先剔除本帧已消亡的粒子，maintain 策略据此补足数量
		alive := emitter.ActiveParticles[:0]
		for _, pid := range emitter.ActiveParticles {
			if ps.EntityManager.IsAlive(pid) {
				alive = append(alive, pid)
			}
		}
		emitter.ActiveParticles = alive

		if emitter.Active && emitter.Config != nil {
			ps.emit(emitterID, emitter, position)
		}

		if !emitter.Active && len(emitter.ActiveParticles) == 0 {
			ps.EntityManager.DestroyEntity(emitterID)
			reaped++
		}
	}
	return reaped
}

func (ps *ParticleSystem) emit(emitterID ecs.EntityID, emitter *components.EmitterComponent, position *components.PositionComponent) {
	cfg := emitter.Config
	switch cfg.Policy {
	case particle.PolicyBurst:
		for range cfg.Count {
			ps.spawnParticle(emitterID, emitter, position)
		}
		emitter.Active = false

	case particle.PolicyInterval:
		batch := max(1, cfg.Count)
		for n := 0; emitter.Age >= emitter.NextSpawnTime && n < maxSpawnsPerTick; n++ {
			for range batch {
				ps.spawnParticle(emitterID, emitter, position)
			}
			emitter.NextSpawnTime += cfg.Interval
		}

	case particle.PolicyMaintain:
		if emitter.Follow != 0 {
			target, ok := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, emitter.Follow)
			if !ok {
				// 跟随目标消失后停止发射，剩余粒子自然消亡
				emitter.Active = false
				return
			}
			position.X, position.Y = target.X, target.Y
		}
		for len(emitter.ActiveParticles) < cfg.Count {
			ps.spawnParticle(emitterID, emitter, position)
		}
	}
}

// spawnParticle 按预设随机生成一个粒子
func (ps *ParticleSystem) spawnParticle(emitterID ecs.EntityID, emitter *components.EmitterComponent, position *components.PositionComponent) ecs.EntityID {
	cfg := emitter.Config

	vx, vy := ps.sampleVelocity(cfg.Velocity)
	scale := 1.0
	if cfg.Scale != "" {
		scale = particle.Sample(ps.rng, cfg.Scale)
	}
	texture := ""
	if len(cfg.Textures) > 0 {
		texture = cfg.Textures[ps.rng.Intn(len(cfg.Textures))]
	}

	p := &components.ParticleComponent{
		VelocityX:   vx,
		VelocityY:   vy,
		Scale:       scale,
		Alpha:       1,
		AlphaInterp: cfg.AlphaInterp,
		Lifetime:    particle.Sample(ps.rng, cfg.Lifetime),
		Texture:     texture,
		Mutator:     cfg.Mutator,
		Emitter:     emitterID,
	}
	if _, _, keyframes, interp := particle.ParseValue(cfg.Alpha); len(keyframes) > 0 {
		p.AlphaKeyframes = keyframes
		if interp != "" {
			p.AlphaInterp = interp
		}
		p.Alpha = keyframes[0].Value
	} else if cfg.Alpha != "" {
		p.Alpha = particle.Sample(ps.rng, cfg.Alpha)
	}

	id := ps.EntityManager.CreateEntity()
	ecs.AddComponent(ps.EntityManager, id, &components.PositionComponent{X: position.X, Y: position.Y})
	ecs.AddComponent(ps.EntityManager, id, p)

	emitter.ActiveParticles = append(emitter.ActiveParticles, id)
	emitter.Emitted++
	return id
}

func (ps *ParticleSystem) sampleVelocity(v particle.VelocityConfig) (float64, float64) {
	switch v.Shape {
	case particle.ShapeInCircle:
		// 面积均匀：半径取 sqrt
		r := v.Radius * math.Sqrt(ps.rng.Float64())
		theta := ps.rng.Float64() * 2 * math.Pi
		return r * math.Cos(theta), r * math.Sin(theta)
	case particle.ShapeOnCircle:
		theta := ps.rng.Float64() * 2 * math.Pi
		return v.Radius * math.Cos(theta), v.Radius * math.Sin(theta)
	case particle.ShapeBox:
		return particle.Sample(ps.rng, v.X), particle.Sample(ps.rng, v.Y)
	}
	return 0, 0
}

// CancelEmitter 停止发射，已有粒子继续播放直到自然结束
func (ps *ParticleSystem) CancelEmitter(emitterID ecs.EntityID) {
	if emitter, ok := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, emitterID); ok {
		emitter.Active = false
	}
}

// RemoveEmitter 立即移除发射器及其所有粒子
// 发射器已不存在时返回 false
func (ps *ParticleSystem) RemoveEmitter(emitterID ecs.EntityID) bool {
	emitter, ok := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, emitterID)
	if !ok {
		return false
	}
	for _, pid := range emitter.ActiveParticles {
		ps.EntityManager.DestroyEntity(pid)
	}
	emitter.ActiveParticles = nil
	return ps.EntityManager.DestroyEntity(emitterID)
}

// Clear 移除所有发射器和粒子，返回移除的发射器数量
func (ps *ParticleSystem) Clear() int {
	removed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EmitterComponent](ps.EntityManager) {
		if ps.RemoveEmitter(id) {
			removed++
		}
	}
	// 发射器已被移除但粒子仍残留的情况（例如发射器先被单独删除）
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager) {
		ps.EntityManager.DestroyEntity(id)
	}
	log.Printf("[ParticleSystem] 清除全部特效: %d 个发射器", removed)
	return removed
}

// EmitterCount 存活的发射器数量
func (ps *ParticleSystem) EmitterCount() int {
	return len(ecs.GetEntitiesWith1[*components.EmitterComponent](ps.EntityManager))
}

// ParticleCount 存活的粒子数量
func (ps *ParticleSystem) ParticleCount() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager))
}
