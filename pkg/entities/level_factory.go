package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/config"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/utils"
)

// BuildLevel 按关卡配置创建所有静态障碍物、敌人和玩家
// 返回玩家实体ID
func BuildLevel(em *ecs.EntityManager, gp *config.GameplayConfig, level *config.LevelConfig, rng utils.Random) (ecs.EntityID, error) {
	if em == nil || gp == nil || level == nil {
		return 0, fmt.Errorf("entity manager, gameplay config and level config are required")
	}

	groups := []struct {
		kind  components.ObstacleKind
		rects []config.RectConfig
	}{
		{components.ObstacleWall, level.Walls},
		{components.ObstacleDoor, level.Doors},
		{components.ObstacleBarrel, level.Barrels},
		{components.ObstacleChest, level.Chests},
		{components.ObstacleExit, level.Exits},
	}
	for _, g := range groups {
		for i, rect := range g.rects {
			if _, err := NewObstacle(em, g.kind, rect); err != nil {
				return 0, fmt.Errorf("level %s %s[%d]: %w", level.ID, g.kind, i, err)
			}
		}
	}

	for i, spawn := range level.Enemies {
		if _, err := NewEnemy(em, gp.Enemy, rng, spawn.X, spawn.Y); err != nil {
			return 0, fmt.Errorf("level %s enemies[%d]: %w", level.ID, i, err)
		}
	}

	playerID, err := NewPlayer(em, gp.Player, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	if err != nil {
		return 0, fmt.Errorf("level %s player: %w", level.ID, err)
	}

	log.Printf("[LevelFactory] 关卡 %s 构建完成: 墙 %d, 门 %d, 木桶 %d, 宝箱 %d, 出口 %d, 敌人 %d",
		level.ID, len(level.Walls), len(level.Doors), len(level.Barrels), len(level.Chests), len(level.Exits), len(level.Enemies))
	return playerID, nil
}
