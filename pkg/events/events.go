// Package events 定义系统每帧产生的事件与命令。
//
// 系统不持有世界或场景的引用，而是把需要外部处理的结果作为 Event 返回，
// 由模拟主循环统一应用（生成特效）并转发给 Sink（音效、HUD、日志）。
package events

import (
	"fmt"
	"log"

	"github.com/gonewx/uforaid/pkg/ecs"
)

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Kind 事件类型
type Kind int

const (
	// EnemyDied 敌人死亡，X/Y 为死亡位置
	EnemyDied Kind = iota
	// PlayerDamaged 玩家受伤，Amount 为伤害值
	PlayerDamaged
	// PlayerDied 玩家死亡，每局只发一次
	PlayerDied
	// ExplosionTriggered 炸弹引爆
	ExplosionTriggered
	// LootDropped 木桶被破坏并掉落物品，Detail 为掉落物类型
	LootDropped
	// LootPicked 玩家拾取物品，Detail 为掉落物类型，Amount 为效果值
	LootPicked
	// KeyObtained 打开宝箱获得钥匙，所有门被移除
	KeyObtained
	// LevelExitReached 玩家到达出口
	LevelExitReached
	// SpawnEffect 命令：在 X/Y 处生成 Detail 指定的粒子预设
	SpawnEffect
)

var kindNames = map[Kind]string{
	EnemyDied:          "EnemyDied",
	PlayerDamaged:      "PlayerDamaged",
	PlayerDied:         "PlayerDied",
	ExplosionTriggered: "ExplosionTriggered",
	LootDropped:        "LootDropped",
	LootPicked:         "LootPicked",
	KeyObtained:        "KeyObtained",
	LevelExitReached:   "LevelExitReached",
	SpawnEffect:        "SpawnEffect",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event 一条事件或命令
type Event struct {
	Kind   Kind
	Entity ecs.EntityID
	X, Y   float64
	Amount int
	Detail string
}

// IsCommand 需要由模拟主循环执行的命令
func (e Event) IsCommand() bool {
	return e.Kind == SpawnEffect
}

func (e Event) String() string {
	return fmt.Sprintf("%s(entity=%d pos=(%.1f, %.1f) amount=%d detail=%q)",
		e.Kind, e.Entity, e.X, e.Y, e.Amount, e.Detail)
}

// Effect 构造特效命令
func Effect(preset string, x, y float64) Event {
	return Event{Kind: SpawnEffect, X: x, Y: y, Detail: preset}
}

// Sink 事件接收方
type Sink interface {
	Publish(e Event)
}

// SinkFunc 函数适配器
type SinkFunc func(e Event)

func (f SinkFunc) Publish(e Event) { f(e) }

// Recorder 记录收到的事件，主要用于测试和 HUD
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(e Event) { r.Events = append(r.Events, e) }

// Count 统计指定类型事件的数量
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset 清空记录
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// LogSink 把事件写到标准日志
type LogSink struct{}

func (LogSink) Publish(e Event) {
	log.Printf("[Events] %s", e)
}

// Fanout 依次转发给多个 Sink
type Fanout []Sink

func (f Fanout) Publish(e Event) {
	for _, s := range f {
		if s != nil {
			s.Publish(e)
		}
	}
}
