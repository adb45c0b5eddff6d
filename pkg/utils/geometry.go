package utils

import "math"

// Rect 轴对齐矩形，以中心点和尺寸描述（与 PositionComponent 的中心语义一致）
type Rect struct {
	CX, CY float64
	W, H   float64
}

// RectAt 以中心点构造矩形
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, W: w, H: h}
}

func (r Rect) Left() float64   { return r.CX - r.W/2 }
func (r Rect) Right() float64  { return r.CX + r.W/2 }
func (r Rect) Top() float64    { return r.CY - r.H/2 }
func (r Rect) Bottom() float64 { return r.CY + r.H/2 }

// Intersects 判断两个矩形是否相交（边缘相接不算相交）
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Contains 判断点是否在矩形内部
func (r Rect) Contains(x, y float64) bool {
	return x > r.Left() && x < r.Right() && y > r.Top() && y < r.Bottom()
}

// CircleIntersectsRect 判断圆与矩形是否相交
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nx := math.Max(r.Left(), math.Min(cx, r.Right()))
	ny := math.Max(r.Top(), math.Min(cy, r.Bottom()))
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy < radius*radius
}

// IsFinite 所有参数都是有限数
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
