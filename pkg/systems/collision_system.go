package systems

import (
	"math"
	"sort"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/ecs"
	"github.com/gonewx/uforaid/pkg/game"
	"github.com/gonewx/uforaid/pkg/utils"
)

// CollisionSystem 障碍物碰撞查询服务
//
// 关卡中的障碍物（墙、门、木桶、宝箱、出口）按均匀网格建立空间索引，
// 每帧开始时 Rebuild 一次，之后的查询只检查相关格子。
// 世界范围之外的坐标被夹紧到边缘格子，因此越界物体同样能被查到。
type CollisionSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState

	cellSize   float64
	cols, rows int
	cells      [][]ecs.EntityID

	// 查询去重用的时间戳，避免每次查询分配 map
	stamp   uint32
	visited map[ecs.EntityID]uint32
}

// NewCollisionSystem 创建碰撞查询服务
// cellSize 不为正时使用 64
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, cellSize float64) *CollisionSystem {
	if cellSize <= 0 {
		cellSize = 64
	}
	cols := int(math.Ceil(gs.WorldWidth/cellSize)) + 1
	rows := int(math.Ceil(gs.WorldHeight/cellSize)) + 1
	return &CollisionSystem{
		em:        em,
		gameState: gs,
		cellSize:  cellSize,
		cols:      cols,
		rows:      rows,
		cells:     make([][]ecs.EntityID, cols*rows),
		visited:   make(map[ecs.EntityID]uint32),
	}
}

// Rebuild 重新建立障碍物索引
// 门和木桶会在游戏过程中被移除，所以每帧重建。
func (cs *CollisionSystem) Rebuild() {
	for i := range cs.cells {
		cs.cells[i] = cs.cells[i][:0]
	}
	clear(cs.visited)
	cs.stamp = 0

	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](cs.em) {
		rect, ok := Bounds(cs.em, id)
		if !ok {
			continue
		}
		minC, minR, maxC, maxR := cs.cellRange(rect)
		for r := minR; r <= maxR; r++ {
			for c := minC; c <= maxC; c++ {
				idx := r*cs.cols + c
				cs.cells[idx] = append(cs.cells[idx], id)
			}
		}
	}
}

func (cs *CollisionSystem) cellOf(x, y float64) (int, int) {
	c := int(math.Floor(x / cs.cellSize))
	r := int(math.Floor(y / cs.cellSize))
	return max(0, min(c, cs.cols-1)), max(0, min(r, cs.rows-1))
}

func (cs *CollisionSystem) cellRange(rect utils.Rect) (minC, minR, maxC, maxR int) {
	minC, minR = cs.cellOf(rect.Left(), rect.Top())
	maxC, maxR = cs.cellOf(rect.Right(), rect.Bottom())
	return
}

// nextStamp 开始一次新的去重查询
func (cs *CollisionSystem) nextStamp() uint32 {
	cs.stamp++
	if cs.stamp == 0 {
		clear(cs.visited)
		cs.stamp = 1
	}
	return cs.stamp
}

// Obstacles 返回与矩形相交、且类型满足 match 的障碍物（按ID升序）
// match 为 nil 时返回所有类型。已被移除的障碍物不会出现在结果中。
func (cs *CollisionSystem) Obstacles(rect utils.Rect, match func(components.ObstacleKind) bool) []ecs.EntityID {
	if !utils.IsFinite(rect.CX, rect.CY, rect.W, rect.H) {
		return nil
	}
	stamp := cs.nextStamp()
	var result []ecs.EntityID

	minC, minR, maxC, maxR := cs.cellRange(rect)
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			for _, id := range cs.cells[r*cs.cols+c] {
				if cs.visited[id] == stamp {
					continue
				}
				cs.visited[id] = stamp

				obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](cs.em, id)
				if !ok {
					continue
				}
				if match != nil && !match(obstacle.Kind) {
					continue
				}
				other, ok := Bounds(cs.em, id)
				if ok && rect.Intersects(other) {
					result = append(result, id)
				}
			}
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Blocking 返回与矩形相交的阻挡型障碍物（墙和门）
func (cs *CollisionSystem) Blocking(rect utils.Rect) []ecs.EntityID {
	return cs.Obstacles(rect, components.ObstacleKind.Blocking)
}

// OfKind 返回与矩形相交的指定类型障碍物
func (cs *CollisionSystem) OfKind(rect utils.Rect, kind components.ObstacleKind) []ecs.EntityID {
	return cs.Obstacles(rect, func(k components.ObstacleKind) bool { return k == kind })
}

// BlockedAt 点是否落在阻挡型障碍物内部
func (cs *CollisionSystem) BlockedAt(x, y float64) bool {
	c, r := cs.cellOf(x, y)
	for _, id := range cs.cells[r*cs.cols+c] {
		obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](cs.em, id)
		if !ok || !obstacle.Kind.Blocking() {
			continue
		}
		if rect, ok := Bounds(cs.em, id); ok && rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// LineOfSight 判断两点之间的视线是否通畅
//
// 从起点开始每隔 resolution 像素采样一个点（包括起点，最后一个采样点不超过终点），
// 任一采样点落在阻挡型障碍物内即视为被遮挡。
// 两点重合、坐标非有限值或 resolution 不为正时返回 false。
func (cs *CollisionSystem) LineOfSight(fromX, fromY, toX, toY, resolution float64) bool {
	if !utils.IsFinite(fromX, fromY, toX, toY, resolution) || resolution <= 0 {
		return false
	}
	distance := math.Hypot(toX-fromX, toY-fromY)
	if distance == 0 {
		return false
	}

	steps := int(distance / resolution)
	for step := 0; step <= steps; step++ {
		u := float64(step) * resolution / distance
		x := utils.Lerp(fromX, toX, u)
		y := utils.Lerp(fromY, toY, u)
		if cs.BlockedAt(x, y) {
			return false
		}
	}
	return true
}

// Bounds 返回实体的轴对齐包围盒
func Bounds(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.RectAt(pos.X, pos.Y, col.Width, col.Height), true
}

// Overlapping 返回 candidates 中与矩形相交的存活实体
func Overlapping(em *ecs.EntityManager, rect utils.Rect, candidates []ecs.EntityID) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range candidates {
		other, ok := Bounds(em, id)
		if ok && rect.Intersects(other) {
			result = append(result, id)
		}
	}
	return result
}
