package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the default minesweeper configuration.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Board: SweeperBoard{
			Size:       "small",
			Difficulty: "easy",
		},
		Camera: SweeperCamera{
			ZoomStep:   1.2,
			MinView:    3,
			FitMargin:  0.5,
			EdgeMargin: 0.25,
			RowAspect:  2,
		},
		Controls: SweeperControls{
			DragThreshold: 25,
			PanStep:       1,
			KeyZoom:       1,
		},
	}
}
