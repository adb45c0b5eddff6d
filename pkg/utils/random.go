package utils

import (
	"math"
	"math/rand"
	"time"
)

// Random 游戏逻辑使用的随机源
// 所有需要随机数的系统都通过构造函数注入，测试中可以传入固定种子或桩实现。
type Random interface {
	Float64() float64
	Intn(n int) int
}

// RandomService 可设定种子的随机源
type RandomService struct {
	rng *rand.Rand
}

// NewRandomService 使用给定种子创建随机源，种子为 0 时使用当前时间
func NewRandomService(seed int64) *RandomService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomService{rng: rand.New(rand.NewSource(seed))}
}

// Intn 返回 [0, n) 的随机整数
func (s *RandomService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 返回 [0.0, 1.0) 的随机浮点数
func (s *RandomService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform 返回 [min, max) 区间内均匀分布的随机数
func Uniform(r Random, min, max float64) float64 {
	if max <= min {
		return min
	}
	// 区间很窄时乘加可能舍入到 max
	if v := min + r.Float64()*(max-min); v < max {
		return v
	}
	return math.Nextafter(max, min)
}

// WeightedEntry 带权重的候选项
type WeightedEntry[T any] struct {
	Value  T
	Weight int
}

// ChooseWeighted 按权重随机选择
// 累加所有权重，在 [0, total) 中取随机数后定位对应条目。
// 条目为空时返回零值和 false；权重之和不为正时返回第一个条目。
func ChooseWeighted[T any](r Random, entries []WeightedEntry[T]) (T, bool) {
	var zero T
	if len(entries) == 0 {
		return zero, false
	}

	total := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	if total <= 0 {
		return entries[0].Value, true
	}

	pick := r.Intn(total)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > pick {
			return entry.Value, true
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Value, true
}
