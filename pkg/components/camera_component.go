package components

import "github.com/gonewx/uforaid/pkg/ecs"

// CameraComponent 跟随镜头
// X/Y 为镜头中心的世界坐标，每帧向目标点按 Smoothing 比例插值。
type CameraComponent struct {
	X, Y float64

	// TargetX/TargetY 本帧夹紧后的目标点
	TargetX float64
	TargetY float64

	ViewportWidth  float64
	ViewportHeight float64
	Zoom           float64
	Smoothing      float64

	// Follow 跟随的实体
	Follow ecs.EntityID
}
