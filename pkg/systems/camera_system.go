package systems

import (
	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// CameraSystem 管理跟随镜头。
// 每帧把跟随目标的位置夹紧到合法范围（视口不会露出世界边界之外），
// 再让镜头中心按 Smoothing 比例向目标插值。
// 世界比视口小的轴上，镜头固定在世界中心。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头控制系统，镜头立即对准跟随目标。
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState, cfg config.CameraConfig, follow ecs.EntityID) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		gameState:     gs,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		ViewportWidth:  cfg.ViewportWidth,
		ViewportHeight: cfg.ViewportHeight,
		Zoom:           cfg.Zoom,
		Smoothing:      cfg.Smoothing,
		Follow:         follow,
	})
	cs.SnapToTarget()
	return cs
}

// Camera 返回镜头组件
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// halfExtent 视口在世界坐标下的半宽/半高
func halfExtent(cam *components.CameraComponent) (float64, float64) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return cam.ViewportWidth / zoom / 2, cam.ViewportHeight / zoom / 2
}

// clampAxis 把目标点限制在 [half, world-half]，世界不足一个视口时取中心
func clampAxis(target, half, world float64) float64 {
	if world <= half*2 {
		return world / 2
	}
	return utils.Clamp(target, half, world-half)
}

// updateTarget 根据跟随实体刷新目标点，目标不存在时保持上一帧的目标
func (cs *CameraSystem) updateTarget(cam *components.CameraComponent) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cam.Follow); ok {
		cam.TargetX, cam.TargetY = pos.X, pos.Y
	}
	halfW, halfH := halfExtent(cam)
	cam.TargetX = clampAxis(cam.TargetX, halfW, cs.gameState.WorldWidth)
	cam.TargetY = clampAxis(cam.TargetY, halfH, cs.gameState.WorldHeight)
}

// Update 更新镜头位置
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.Camera()
	if cam == nil {
		return
	}
	cs.updateTarget(cam)
	cam.X = utils.Lerp(cam.X, cam.TargetX, cam.Smoothing)
	cam.Y = utils.Lerp(cam.Y, cam.TargetY, cam.Smoothing)
	cs.gameState.CameraX, cs.gameState.CameraY = cam.X, cam.Y
}

// SnapToTarget 跳过插值，立即把镜头放到目标点（关卡开始时使用）
func (cs *CameraSystem) SnapToTarget() {
	cam := cs.Camera()
	if cam == nil {
		return
	}
	cs.updateTarget(cam)
	cam.X, cam.Y = cam.TargetX, cam.TargetY
	cs.gameState.CameraX, cs.gameState.CameraY = cam.X, cam.Y
}

// SetViewport 窗口尺寸变化时更新视口
func (cs *CameraSystem) SetViewport(width, height float64) {
	if cam := cs.Camera(); cam != nil && width > 0 && height > 0 {
		cam.ViewportWidth, cam.ViewportHeight = width, height
	}
}

// ScreenToWorld 屏幕坐标转换为世界坐标
func (cs *CameraSystem) ScreenToWorld(sx, sy float64) (float64, float64) {
	cam := cs.Camera()
	if cam == nil {
		return sx, sy
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (sx-cam.ViewportWidth/2)/zoom + cam.X, (sy-cam.ViewportHeight/2)/zoom + cam.Y
}

// WorldToScreen 世界坐标转换为屏幕坐标
func (cs *CameraSystem) WorldToScreen(wx, wy float64) (float64, float64) {
	cam := cs.Camera()
	if cam == nil {
		return wx, wy
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (wx-cam.X)*zoom + cam.ViewportWidth/2, (wy-cam.Y)*zoom + cam.ViewportHeight/2
}
