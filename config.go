package worldui

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("worldui: invalid config")

// DragPolicy selects how drags survive the cursor leaving the surface and
// how drag updates are routed. The front-end and stage halves are paired so
// they can never be mixed.
type DragPolicy uint8

const (
	// DragPolicyStickyDirect keeps emitting the last hit coordinate while a
	// drag is in progress and sends drag updates to every registered target
	// regardless of what is under the cursor.
	DragPolicyStickyDirect DragPolicy = iota
	// DragPolicyStrictHitCoupled emits nothing on a miss and only updates
	// drag targets that are currently under the cursor.
	DragPolicyStrictHitCoupled
)

// String returns the TOML spelling of the policy.
func (p DragPolicy) String() string {
	switch p {
	case DragPolicyStickyDirect:
		return "sticky-direct"
	case DragPolicyStrictHitCoupled:
		return "strict-hit-coupled"
	}
	return fmt.Sprintf("DragPolicy(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p DragPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DragPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sticky-direct", "":
		*p = DragPolicyStickyDirect
	case "strict-hit-coupled":
		*p = DragPolicyStrictHitCoupled
	default:
		return fmt.Errorf("worldui: unknown drag policy %q", text)
	}
	return nil
}

// sticky reports whether the front-end keeps emitting during a drag miss.
func (p DragPolicy) sticky() bool { return p == DragPolicyStickyDirect }

// direct reports whether drag updates bypass the hit list.
func (p DragPolicy) direct() bool { return p == DragPolicyStickyDirect }

// Config holds the settings for a Cursor and Stage pair. It is read at
// construction time and never mutated by either component.
type Config struct {
	// OwningSurface is the collider that displays the UI. Hits on any other
	// collider are treated as misses.
	OwningSurface ColliderID `toml:"owning_surface"`
	// MaxDistance limits the scene ray query.
	MaxDistance float32 `toml:"max_distance"`
	// LayerMask filters colliders considered by the ray query.
	LayerMask LayerMask `toml:"layer_mask"`
	// ScrollSensitivity scales the raw scroll delta per axis.
	ScrollSensitivity Vec2 `toml:"scroll_sensitivity"`
	// InvertScrollX and InvertScrollY negate the scroll delta per axis.
	InvertScrollX bool `toml:"invert_scroll_x"`
	InvertScrollY bool `toml:"invert_scroll_y"`
	// DragPolicy pairs the drag continuity and drag coupling behaviors.
	DragPolicy DragPolicy `toml:"drag_policy"`
	// LogicalSize is the UI graph's size in its own units. Normalized
	// coordinates are multiplied by it to get UI-local positions.
	LogicalSize Vec2 `toml:"logical_size"`
}

// DefaultConfig returns a Config with the stock ray distance, all layers
// enabled, unit scroll sensitivity and the sticky+direct drag policy.
// OwningSurface and LogicalSize must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		MaxDistance:       5,
		LayerMask:         AllLayers,
		ScrollSensitivity: Vec2{1, 1},
		DragPolicy:        DragPolicyStickyDirect,
	}
}

// Validate reports the first setup precondition the config violates.
func (c Config) Validate() error {
	if err := c.validateCursor(); err != nil {
		return err
	}
	return c.validateStage()
}

// validateFile checks everything a config file can supply. The owning
// surface is usually a collider ID assigned at runtime, so it is left to
// NewCursor.
func (c Config) validateFile() error {
	if !(c.MaxDistance > 0) {
		return fmt.Errorf("%w: max distance must be positive, got %v", ErrInvalidConfig, c.MaxDistance)
	}
	return c.validateStage()
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates the
// result, except for OwningSurface. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("worldui: failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("worldui: unknown config key %q", undecoded[0].String())
	}
	if err := cfg.validateFile(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it
// like ParseConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("worldui: failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("worldui: unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.validateFile(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
