package config

import "fmt"

// Position is a persisted window position, keyed by the role a window was
// enrolled under.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config holds the docking and snapping configuration.
type Config struct {
	// SnapWindows enables or disables all edge snapping.
	SnapWindows bool `yaml:"snap_windows"`

	// SnapDistance is the pixel threshold for edge and screen snapping.
	SnapDistance int `yaml:"snap_distance"`

	// ShowWMDecorations leaves windows decorated and disables dock/shade
	// group logic entirely in favor of the host window manager.
	ShowWMDecorations bool `yaml:"show_wm_decorations"`

	// Positions maps a window role to its last known good position.
	Positions map[string]Position `yaml:"positions,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		SnapWindows:  true,
		SnapDistance: 10,
		Positions:    make(map[string]Position),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.SnapDistance < 0 {
		return fmt.Errorf("snap_distance must be >= 0, got %d", c.SnapDistance)
	}
	return nil
}

// SetPosition records the last known good position for a role.
func (c *Config) SetPosition(role string, x, y int) {
	if c.Positions == nil {
		c.Positions = make(map[string]Position)
	}
	c.Positions[role] = Position{X: x, Y: y}
}

// PositionFor returns the persisted position for a role, if any.
func (c *Config) PositionFor(role string) (Position, bool) {
	pos, ok := c.Positions[role]
	return pos, ok
}
