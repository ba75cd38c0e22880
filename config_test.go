package worldui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxDistance != 5 {
		t.Errorf("MaxDistance = %v, want 5", cfg.MaxDistance)
	}
	if cfg.LayerMask != AllLayers {
		t.Errorf("LayerMask = %b, want all", cfg.LayerMask)
	}
	if cfg.ScrollSensitivity != (Vec2{1, 1}) {
		t.Errorf("ScrollSensitivity = %v", cfg.ScrollSensitivity)
	}
	if cfg.DragPolicy != DragPolicyStickyDirect {
		t.Errorf("DragPolicy = %v", cfg.DragPolicy)
	}
	// Surface and size are left for the caller.
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("default config should not validate, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	valid.OwningSurface = 3
	valid.LogicalSize = Vec2{800, 600}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no surface", func(c *Config) { c.OwningSurface = 0 }},
		{"zero distance", func(c *Config) { c.MaxDistance = 0 }},
		{"zero width", func(c *Config) { c.LogicalSize.X = 0 }},
		{"negative height", func(c *Config) { c.LogicalSize.Y = -1 }},
		{"unknown policy", func(c *Config) { c.DragPolicy = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDragPolicy_Text(t *testing.T) {
	for _, p := range []DragPolicy{DragPolicyStickyDirect, DragPolicyStrictHitCoupled} {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got DragPolicy
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != p {
			t.Errorf("round trip %v -> %q -> %v", p, b, got)
		}
	}

	var p DragPolicy
	if err := p.UnmarshalText([]byte("loose")); err == nil {
		t.Error("expected error for unknown policy")
	}
	if s := DragPolicy(7).String(); s != "DragPolicy(7)" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
owning_surface = 12
max_distance = 10.0
layer_mask = 5
scroll_sensitivity = { x = 2.0, y = 0.5 }
invert_scroll_y = true
drag_policy = "strict-hit-coupled"
logical_size = { x = 800.0, y = 600.0 }
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := Config{
		OwningSurface:     12,
		MaxDistance:       10,
		LayerMask:         5,
		ScrollSensitivity: Vec2{2, 0.5},
		InvertScrollY:     true,
		DragPolicy:        DragPolicyStrictHitCoupled,
		LogicalSize:       Vec2{800, 600},
	}
	if cfg != want {
		t.Errorf("cfg = %+v\nwant  %+v", cfg, want)
	}
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
owning_surface = 1
logical_size = { x = 100.0, y = 100.0 }
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.MaxDistance != def.MaxDistance || cfg.LayerMask != def.LayerMask ||
		cfg.ScrollSensitivity != def.ScrollSensitivity || cfg.DragPolicy != def.DragPolicy {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool // wraps ErrInvalidConfig
		msg     string
	}{
		{"syntax", `owning_surface = `, false, "failed to parse"},
		{"unknown key", "owning_surface = 1\nlogical_size = { x = 1.0, y = 1.0 }\ncolour = 3", false, "colour"},
		{"bad policy", "owning_surface = 1\ndrag_policy = \"loose\"", false, "loose"},
		{"zero distance", "logical_size = { x = 1.0, y = 1.0 }\nmax_distance = 0.0", true, "max distance"},
		{"missing size", `owning_surface = 1`, true, "logical size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", !tt.invalid, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestParseConfig_SurfaceAssignedLater(t *testing.T) {
	cfg, err := ParseConfig([]byte("logical_size = { x = 800.0, y = 600.0 }\ninvert_scroll_y = true\n"))
	if err != nil {
		t.Fatalf("ParseConfig without owning_surface: %v", err)
	}
	if cfg.OwningSurface != 0 || !cfg.InvertScrollY {
		t.Errorf("cfg = %+v", cfg)
	}
	// The collider ID is filled in once the scene exists.
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate without surface = %v, want ErrInvalidConfig", err)
	}
	cfg.OwningSurface = 7
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after assigning surface: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.toml")
	data := "logical_size = { x = 320.0, y = 240.0 }\ninvert_scroll_x = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.OwningSurface != 0 || cfg.LogicalSize != (Vec2{320, 240}) || !cfg.InvertScrollX {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
