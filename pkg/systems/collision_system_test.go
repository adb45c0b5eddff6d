package systems

import (
	"math"
	"testing"

	"github.com/gonewx/uforaid/pkg/components"
	"github.com/gonewx/uforaid/pkg/utils"
)

func TestCollisionSystem_Obstacles(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	wall := w.obstacle(components.ObstacleWall, 100, 100, 200, 20) // 中心 (200, 110)
	door := w.obstacle(components.ObstacleDoor, 400, 100, 20, 100)
	barrel := w.obstacle(components.ObstacleBarrel, 600, 300, 40, 40)

	tests := []struct {
		name     string
		rect     utils.Rect
		blocking int
		barrels  int
	}{
		{"与墙相交", utils.RectAt(200, 110, 10, 10), 1, 0},
		{"与门相交", utils.RectAt(410, 150, 10, 10), 1, 0},
		{"与木桶相交", utils.RectAt(620, 320, 10, 10), 0, 1},
		{"空地", utils.RectAt(50, 500, 10, 10), 0, 0},
		{"边缘相接不算相交", utils.RectAt(200, 95, 10, 10), 0, 0},
		{"跨越墙和门", utils.RectAt(350, 110, 200, 10), 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(w.cs.Blocking(tt.rect)); got != tt.blocking {
				t.Errorf("Blocking = %d, want %d", got, tt.blocking)
			}
			if got := len(w.cs.OfKind(tt.rect, components.ObstacleBarrel)); got != tt.barrels {
				t.Errorf("barrels = %d, want %d", got, tt.barrels)
			}
		})
	}

	// 结果按ID升序且不重复（大矩形覆盖多个格子）
	all := w.cs.Obstacles(utils.RectAt(400, 300, 800, 600), nil)
	want := []uint64{uint64(wall), uint64(door), uint64(barrel)}
	if len(all) != len(want) {
		t.Fatalf("Obstacles(all) = %v, want %v", all, want)
	}
	for i := range all {
		if uint64(all[i]) != want[i] {
			t.Errorf("Obstacles(all)[%d] = %d, want %d", i, all[i], want[i])
		}
	}
}

func TestCollisionSystem_RemovedObstacleInvisible(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	door := w.obstacle(components.ObstacleDoor, 100, 100, 20, 100)
	rect := utils.RectAt(110, 150, 10, 10)

	w.em.DestroyEntity(door)
	// 未重建索引时也不能返回已移除的门
	if got := w.cs.Blocking(rect); len(got) != 0 {
		t.Errorf("removed door still visible before rebuild: %v", got)
	}
	w.em.RemoveMarkedEntities()
	w.cs.Rebuild()
	if got := w.cs.Blocking(rect); len(got) != 0 {
		t.Errorf("removed door still visible after rebuild: %v", got)
	}
}

func TestCollisionSystem_OutsideWorld(t *testing.T) {
	w := newTestWorld(t, 400, 400)
	// 位于世界外的墙仍然能被查询到
	w.obstacle(components.ObstacleWall, 420, 100, 40, 40)
	if got := w.cs.Blocking(utils.RectAt(440, 120, 4, 4)); len(got) != 1 {
		t.Errorf("Blocking outside world = %d, want 1", len(got))
	}
	if got := w.cs.Blocking(utils.RectAt(math.NaN(), 0, 4, 4)); got != nil {
		t.Errorf("NaN rect should return nil, got %v", got)
	}
}

func TestCollisionSystem_LineOfSight(t *testing.T) {
	w := newTestWorld(t, 1000, 1000)
	w.obstacle(components.ObstacleWall, 490, 0, 20, 400)
	w.obstacle(components.ObstacleDoor, 490, 600, 20, 200)
	w.obstacle(components.ObstacleBarrel, 200, 900, 40, 40)

	tests := []struct {
		name                   string
		fromX, fromY, toX, toY float64
		want                   bool
	}{
		{"视线通畅", 100, 500, 900, 500, true},
		{"被墙遮挡", 100, 200, 900, 200, false},
		{"被门遮挡", 100, 700, 900, 700, false},
		{"木桶不遮挡视线", 100, 920, 400, 920, true},
		{"起点终点重合", 100, 100, 100, 100, false},
		{"NaN 坐标", math.NaN(), 100, 200, 200, false},
		{"无穷坐标", 100, 100, math.Inf(1), 200, false},
		{"短于采样步长", 100, 500, 105, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.cs.LineOfSight(tt.fromX, tt.fromY, tt.toX, tt.toY, 16)
			if got != tt.want {
				t.Errorf("LineOfSight = %v, want %v", got, tt.want)
			}
		})
	}

	if w.cs.LineOfSight(100, 500, 900, 500, 0) {
		t.Error("non-positive resolution should not be visible")
	}
}

func BenchmarkCollisionSystem_Blocking(b *testing.B) {
	w := newTestWorld(b, 4000, 4000)
	for i := 0; i < 200; i++ {
		w.obstacle(components.ObstacleWall, float64(i%20)*200, float64(i/20)*400, 100, 20)
	}
	rect := utils.RectAt(1000, 1000, 32, 46)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.cs.Blocking(rect)
	}
}
