package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode(FileName, GetDefaultYAML())
	if err != nil {
		t.Fatalf("Decode(embedded) failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults differ from DefaultPlatformerConfig():\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadCustomYAMLOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.8\nplayer:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Physics.Bounce != 0.2 {
		t.Errorf("unnamed keys should keep defaults, Bounce = %v", cfg.Physics.Bounce)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[world]\nscroll_max = 1000.0\n\n[collision]\nside_contact_epsilon = 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.World.ScrollMax != 1000 {
		t.Errorf("ScrollMax = %v, expected 1000", cfg.World.ScrollMax)
	}
	if cfg.Collision.SideContactEpsilon != 0.5 {
		t.Errorf("SideContactEpsilon = %v, expected 0.5", cfg.Collision.SideContactEpsilon)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("unnamed keys should keep defaults, Width = %v", cfg.World.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPlatformer(bad)
	if err == nil {
		t.Error("expected error for malformed config")
	}
	if cfg != DefaultPlatformerConfig() {
		t.Error("failed load should still return usable defaults")
	}
}

func TestMarshalRoundTripsThroughDecode(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Player.MaxJumps = 3

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Decode("out.yaml", data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if back.Player.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, expected 3", back.Player.MaxJumps)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in    string
		lives int
	}{
		{"easy", 5},
		{"normal", 3},
		{"hard", 1},
		{"", 3},
		{"bogus", 3},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPreset(&cfg, ParsePreset(tc.in))
		if cfg.Player.Lives != tc.lives {
			t.Errorf("preset %q: lives = %d, expected %d", tc.in, cfg.Player.Lives, tc.lives)
		}
	}
}
