package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"worldofbits/pkg/engine/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Defaults())
	}
	if cfg.InteractRadius != 3 || cfg.TargetValue != 16 || cfg.Tile != 1e-4 {
		t.Errorf("reference constants changed: %+v", cfg)
	}
}

func TestLoad_OverridesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
seed: 99
target_value: 32
locale: " EN "
start:
  lat: 1.5
  lng: -2.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Seed != 99 || cfg.TargetValue != 32 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.GridRadius != 8 || cfg.InteractRadius != 3 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
	if got := cfg.StartLatLng(); got.Lat != 1.5 || got.Lng != -2.5 {
		t.Errorf("StartLatLng = %v", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"target not power of two", "target_value: 12"},
		{"negative radius", "grid_radius: -1"},
		{"spawn chance too high", "spawn_chance: 1.5"},
		{"bad latitude", "start: {lat: 95, lng: 0}"},
		{"zero tile", "tile: 0"},
		{"zero target", "target_value: 0"},
		{"zero max level", "max_level: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoad_ExplicitZeroIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
spawn_chance: 0
interact_radius: 0
grid_radius: 0
`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SpawnChance != 0 || cfg.InteractRadius != 0 || cfg.GridRadius != 0 {
		t.Errorf("explicit zeros replaced by defaults: %+v", cfg)
	}
	if cfg.TargetValue != 16 || cfg.MaxLevel != Defaults().MaxLevel {
		t.Errorf("omitted keys lost their defaults: %+v", cfg)
	}
	if got := cfg.Generator().Generate(world.Cell{I: 3, J: 4}); !got.IsEmpty() {
		t.Errorf("spawn_chance 0 generated %d", got)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "tile: [")); err == nil {
		t.Error("Load accepted malformed YAML")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}
}

func TestGeneratorUsesSeed(t *testing.T) {
	a := Defaults()
	a.Seed = 1
	b := Defaults()
	b.Seed = 2

	same, differ := 0, 0
	for i := -20; i <= 20; i++ {
		for j := -20; j <= 20; j++ {
			c := world.Cell{I: i, J: j}
			if a.Generator().Generate(c) == a.Generator().Generate(c) {
				same++
			}
			if a.Generator().Generate(c) != b.Generator().Generate(c) {
				differ++
			}
		}
	}
	if same != 41*41 {
		t.Errorf("generator from one config is not stable")
	}
	if differ == 0 {
		t.Error("seeds 1 and 2 produced identical layouts")
	}
}
