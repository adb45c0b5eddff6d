package components

// VelocityComponent 速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
