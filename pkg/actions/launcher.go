package actions

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// OSLauncher opens paths and URLs with the platform's default handlers
type OSLauncher struct{}

// OpenPath opens path in the file manager; the path must exist
func (OSLauncher) OpenPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stat path: %w", err)
	}
	return open(path)
}

// OpenURL hands rawURL to the default protocol handler
func (OSLauncher) OpenURL(rawURL string) error {
	return open(rawURL)
}

func open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}
	return nil
}
