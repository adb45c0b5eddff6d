package config

import (
	"os"
	"strings"
	"testing"
)

func TestParseGameplayConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameplayConfig)
	}{
		{
			name:        "empty file keeps defaults",
			yamlContent: "",
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Enemy.DetectionRadius != 500 {
					t.Errorf("expected detectionRadius = 500, got %f", cfg.Enemy.DetectionRadius)
				}
				if cfg.Explosion.DamageMode != DamageModePerTick {
					t.Errorf("expected default damage mode per_tick, got %q", cfg.Explosion.DamageMode)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
explosion:
  damageMode: once_per_enemy
loot:
  healWeight: 90
  bombWeight: 10
`,
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Explosion.DamageMode != DamageModeOncePerEnemy {
					t.Errorf("damageMode = %q", cfg.Explosion.DamageMode)
				}
				if cfg.Loot.HealWeight != 90 || cfg.Loot.BombWeight != 10 {
					t.Errorf("loot weights = %d/%d, want 90/10", cfg.Loot.HealWeight, cfg.Loot.BombWeight)
				}
				// 未覆盖的字段保持默认
				if cfg.Explosion.GrowthPerTick != 18 {
					t.Errorf("growthPerTick = %f, want 18", cfg.Explosion.GrowthPerTick)
				}
			},
		},
		{
			name:        "unknown damage mode",
			yamlContent: "explosion:\n  damageMode: sometimes\n",
			wantErr:     true,
			errContains: "damageMode",
		},
		{
			name:        "inverted attack interval",
			yamlContent: "enemy:\n  attackInterval: {min: 5, max: 1}\n",
			wantErr:     true,
			errContains: "attackInterval",
		},
		{
			name:        "zero loot weights",
			yamlContent: "loot:\n  healWeight: 0\n  bombWeight: 0\n",
			wantErr:     true,
			errContains: "loot weights",
		},
		{
			name:        "bad smoothing",
			yamlContent: "camera:\n  smoothing: 1.5\n",
			wantErr:     true,
			errContains: "smoothing",
		},
		{
			name:        "malformed yaml",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameplayConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestGameplayDataFile 仓库自带的配置文件与默认值一致
func TestGameplayDataFile(t *testing.T) {
	data, err := os.ReadFile("../../data/gameplay.yaml")
	if err != nil {
		t.Fatalf("failed to read gameplay.yaml: %v", err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		t.Fatalf("gameplay.yaml invalid: %v", err)
	}

	def := DefaultGameplayConfig()
	if cfg.Player != def.Player {
		t.Errorf("player config = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("enemy config = %+v, want %+v", cfg.Enemy, def.Enemy)
	}
	if cfg.Bomb != def.Bomb || cfg.Loot != def.Loot || cfg.Camera != def.Camera {
		t.Error("bomb/loot/camera config differ from defaults")
	}
}
