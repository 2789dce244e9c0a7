// Package config provides YAML-based configuration loading for the sweeper.
package config

import "fmt"

// SweeperConfig contains all configuration for the minesweeper game.
type SweeperConfig struct {
	Board    SweeperBoard    `yaml:"board"`
	Camera   SweeperCamera   `yaml:"camera"`
	Controls SweeperControls `yaml:"controls"`
}

// SweeperBoard selects the board used when no preset is given on the command line.
type SweeperBoard struct {
	Size       string `yaml:"size"`       // small, medium, big, huge
	Difficulty string `yaml:"difficulty"` // easy, medium, hard, extreme, debug
}

// SweeperCamera defines the viewport clamp and zoom behaviour.
type SweeperCamera struct {
	ZoomStep   float64 `yaml:"zoom_step"`   // Scale factor per scroll unit
	MinView    float64 `yaml:"min_view"`    // Smallest visible span in cells
	FitMargin  float64 `yaml:"fit_margin"`  // Extra cells visible when fully zoomed out
	EdgeMargin float64 `yaml:"edge_margin"` // How far past the board edge the view may pan
	RowAspect  float64 `yaml:"row_aspect"`  // Terminal cell height relative to its width
}

// SweeperControls defines pointer and keyboard tunables.
type SweeperControls struct {
	DragThreshold float64 `yaml:"drag_threshold"` // Squared pixels before a press becomes a drag
	PanStep       float64 `yaml:"pan_step"`       // Cells moved per arrow key press
	KeyZoom       float64 `yaml:"key_zoom"`       // Scroll units per +/- key press
}

// Validate reports the first field that holds an unusable value.
func (c SweeperConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"camera.zoom_step must be greater than 1", c.Camera.ZoomStep > 1},
		{"camera.min_view must be positive", c.Camera.MinView > 0},
		{"camera.fit_margin must not be negative", c.Camera.FitMargin >= 0},
		{"camera.edge_margin must not be negative", c.Camera.EdgeMargin >= 0},
		{"camera.row_aspect must be positive", c.Camera.RowAspect > 0},
		{"controls.drag_threshold must be positive", c.Controls.DragThreshold > 0},
		{"controls.pan_step must be positive", c.Controls.PanStep > 0},
		{"controls.key_zoom must be positive", c.Controls.KeyZoom > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s", chk.name)
		}
	}
	return nil
}
