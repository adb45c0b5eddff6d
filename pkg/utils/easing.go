package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 粒子预设的关键帧插值（alphaInterp）按名字查表，见 EaseByName。
//
// 参考：https://easings.net/

// EaseFunc 缓动函数
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（烟雾扩散）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseSmoothStep 两端平缓的 S 曲线
// 公式：f(t) = t²(3 - 2t)
func EaseSmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseOutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

var easings = map[string]EaseFunc{
	"Linear":        EaseLinear,
	"EaseIn":        EaseInQuad,
	"EaseOut":       EaseOutQuad,
	"EaseInCubic":   EaseInCubic,
	"EaseOutCubic":  EaseOutCubic,
	"EaseOutExpo":   EaseOutExpo,
	"FastInOutWeak": EaseSmoothStep,
}

// EaseByName 按名字查找缓动函数，空串或未知名字返回线性
func EaseByName(name string) EaseFunc {
	if f, ok := easings[name]; ok {
		return f
	}
	return EaseLinear
}

// IsEaseName 名字是否对应一个已注册的缓动函数
func IsEaseName(name string) bool {
	_, ok := easings[name]
	return ok
}

// Lerp 线性插值
// t=0 返回 a,t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
