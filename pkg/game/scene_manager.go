package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免循环依赖
type SceneFactory func(levelID string) (Scene, error)

// SceneManager 管理当前活动场景
// 同一时间只会调用一个场景的 Update 和 Draw。
// 场景在 Update 中请求换关时，切换推迟到下一次 Update 开始前执行，
// 避免在旧场景的 Update 调用栈里替换它。
type SceneManager struct {
	currentScene Scene
	currentLevel string
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(factory SceneFactory) *SceneManager {
	return &SceneManager{sceneFactory: factory}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 当前关卡ID
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 加载指定ID的关卡场景
func (sm *SceneManager) LoadLevel(levelID string) error {
	log.Printf("[SceneManager] 加载关卡: %s", levelID)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(levelID)
	if err != nil {
		return fmt.Errorf("failed to create level %s: %w", levelID, err)
	}
	if newScene == nil {
		return fmt.Errorf("scene factory returned nil for level %s", levelID)
	}

	sm.SwitchTo(newScene)
	sm.currentLevel = levelID
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelID)
	return nil
}

// Update 先处理上一帧的换关请求，再更新当前场景
// 换关失败时保留当前场景并记录日志
func (sm *SceneManager) Update(deltaTime float64) {
	if req, ok := sm.currentScene.(LevelRequester); ok {
		if next := req.RequestedLevel(); next != "" {
			if err := sm.LoadLevel(next); err != nil {
				log.Printf("[SceneManager] 错误: %v", err)
			}
		}
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
