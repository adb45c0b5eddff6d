package components

// ObstacleKind 障碍物类型
type ObstacleKind int

const (
	ObstacleWall ObstacleKind = iota
	ObstacleDoor
	ObstacleBarrel
	ObstacleChest
	ObstacleExit
)

var obstacleKindNames = [...]string{"wall", "door", "barrel", "chest", "exit"}

func (k ObstacleKind) String() string {
	if int(k) < len(obstacleKindNames) {
		return obstacleKindNames[k]
	}
	return "unknown"
}

// Blocking 阻挡移动、子弹、炸弹和视线
func (k ObstacleKind) Blocking() bool {
	return k == ObstacleWall || k == ObstacleDoor
}

// ObstacleComponent 静态障碍物
type ObstacleComponent struct {
	Kind ObstacleKind
}
