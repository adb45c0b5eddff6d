package components

// LootKind 掉落物类型
type LootKind string

const (
	LootHeal LootKind = "heal"
	LootBomb LootKind = "bomb"
)

// LootComponent 掉落物，玩家接触后拾取
type LootComponent struct {
	Kind LootKind
}
