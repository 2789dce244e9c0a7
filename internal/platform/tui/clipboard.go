package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// copyScreen puts the plain text of the screen on the system clipboard.
func copyScreen(s *core.Screen) error {
	if clipboard.Unsupported {
		return fmt.Errorf("tui: no clipboard available")
	}
	if err := clipboard.WriteAll(s.String()); err != nil {
		return fmt.Errorf("tui: cannot copy screen: %w", err)
	}
	return nil
}

// screenshotDir returns ~/.arcade/screenshots.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "screenshots"), nil
}

// saveScreenshot writes the plain text of the screen to dir and returns the file path.
func saveScreenshot(s *core.Screen, dir, gameID string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}
