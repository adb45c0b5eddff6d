package systems

import (
	"log"

	"github.com/gonewx/uforaid/internal/particle"
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/events"
)

// damageEnemy 对敌人造成伤害
// 生命值只减不增，最低为 0；降到 0 时敌人及其所有子弹被立即移除，
// 同时返回死亡事件和爆炸特效命令。
func damageEnemy(em *ecs.EntityManager, enemyID ecs.EntityID, amount int) []events.Event {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, enemyID)
	if !ok || amount <= 0 {
		return nil
	}
	health.CurrentHealth -= amount
	if health.CurrentHealth > 0 {
		return nil
	}
	health.CurrentHealth = 0
	return killEnemy(em, enemyID)
}

// killEnemy 移除敌人与它发射的子弹
func killEnemy(em *ecs.EntityManager, enemyID ecs.EntityID) []events.Event {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, enemyID)
	if !ok {
		return nil
	}
	x, y := pos.X, pos.Y

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner == components.OwnerEnemy && proj.Shooter == enemyID {
			em.DestroyEntity(id)
		}
	}
	em.DestroyEntity(enemyID)

	log.Printf("[Combat] 敌人 %d 被消灭 (%.0f, %.0f)", enemyID, x, y)
	return []events.Event{
		{Kind: events.EnemyDied, Entity: enemyID, X: x, Y: y},
		events.Effect(particle.PresetExplosion, x, y),
	}
}
