package config

import (
	"os"
	"strings"
	"testing"
)

func TestParseLevelConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "minimal level",
			yamlContent: `
id: t
world: {width: 100, height: 100}
playerSpawn: {x: 10, y: 10}
walls:
  - {x: 0, y: 0, w: 100, h: 4}
`,
		},
		{
			name:        "missing id",
			yamlContent: "world: {width: 100, height: 100}\n",
			wantErr:     true,
			errContains: "id is required",
		},
		{
			name:        "zero world",
			yamlContent: "id: t\nworld: {width: 0, height: 100}\n",
			wantErr:     true,
			errContains: "world size",
		},
		{
			name:        "spawn outside",
			yamlContent: "id: t\nworld: {width: 100, height: 100}\nplayerSpawn: {x: 200, y: 10}\n",
			wantErr:     true,
			errContains: "player spawn",
		},
		{
			name:        "degenerate wall",
			yamlContent: "id: t\nworld: {width: 100, height: 100}\nwalls:\n  - {x: 0, y: 0, w: 0, h: 4}\n",
			wantErr:     true,
			errContains: "walls[0]",
		},
		{
			name:        "enemy outside",
			yamlContent: "id: t\nworld: {width: 100, height: 100}\nenemies:\n  - {x: -5, y: 10}\n",
			wantErr:     true,
			errContains: "enemies[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRectConfigCenter(t *testing.T) {
	x, y := RectConfig{X: 10, Y: 20, Width: 30, Height: 40}.Center()
	if x != 25 || y != 40 {
		t.Errorf("Center() = (%v, %v), want (25, 40)", x, y)
	}
}

// TestLevelDataFiles 所有自带关卡都能加载，且 next 指向存在的关卡
func TestLevelDataFiles(t *testing.T) {
	ids := []string{"level-1", "level-2"}
	loaded := map[string]*LevelConfig{}
	for _, id := range ids {
		data, err := os.ReadFile("../../" + LevelPath(id))
		if err != nil {
			t.Fatalf("read %s: %v", id, err)
		}
		cfg, err := ParseLevelConfig(data)
		if err != nil {
			t.Fatalf("level %s invalid: %v", id, err)
		}
		if cfg.ID != id {
			t.Errorf("level file %s has id %q", id, cfg.ID)
		}
		if len(cfg.Chests) == 0 || len(cfg.Doors) == 0 || len(cfg.Exits) == 0 {
			t.Errorf("level %s should have chests, doors and exits", id)
		}
		loaded[id] = cfg
	}
	for id, cfg := range loaded {
		if cfg.Next != "" {
			if _, ok := loaded[cfg.Next]; !ok {
				t.Errorf("level %s points to unknown next level %q", id, cfg.Next)
			}
		}
	}
}
