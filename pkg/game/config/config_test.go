package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_StockValues(t *testing.T) {
	cfg := Default()
	if cfg.MemoryLimit != 12 {
		t.Errorf("MemoryLimit = %d, want 12", cfg.MemoryLimit)
	}
	if cfg.BackpackCapacity != 20 {
		t.Errorf("BackpackCapacity = %d, want 20", cfg.BackpackCapacity)
	}
	if cfg.PanSmoothing != 0.85 {
		t.Errorf("PanSmoothing = %v, want 0.85", cfg.PanSmoothing)
	}
	if cfg.RarityCommon != 0.60 || cfg.RarityUncommon != 0.25 {
		t.Errorf("rarity split = %v/%v, want 0.60/0.25", cfg.RarityCommon, cfg.RarityUncommon)
	}
	if got := cfg.GameWidth(); got != 600 {
		t.Errorf("GameWidth() = %d, want 600", got)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.MemoryLimit != Default().MemoryLimit {
		t.Errorf("MemoryLimit = %d, want default %d", cfg.MemoryLimit, Default().MemoryLimit)
	}
}

func TestLoad_OverlayKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wanderer.yaml")
	body := "memory_limit: 5\nsearch_chance: 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.MemoryLimit != 5 {
		t.Errorf("MemoryLimit = %d, want 5 (overridden)", cfg.MemoryLimit)
	}
	if cfg.SearchChance != 0.9 {
		t.Errorf("SearchChance = %v, want 0.9 (overridden)", cfg.SearchChance)
	}
	if cfg.BackpackCapacity != 20 {
		t.Errorf("BackpackCapacity = %d, want default 20", cfg.BackpackCapacity)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero memory":    "memory_limit: 0\n",
		"smoothing >= 1": "pan_smoothing: 1.0\n",
		"bad rarity":     "rarity_common: 0.9\nrarity_uncommon: 0.5\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", name)
		}
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should fail; an explicit -config path must exist")
	}
}
