package board

import (
	"errors"
	"fmt"
)

// ErrConfig is returned when a grid cannot be built from a configuration.
var ErrConfig = errors.New("invalid mine configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("board: %w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// IndexError is the panic value raised when a coordinate outside the grid
// reaches an operation. Callers must resolve coordinates through CellAt or
// InBounds first.
type IndexError struct {
	X, Y int
	W, H int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("board: cell (%d, %d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}
