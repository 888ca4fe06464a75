/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformLogPaths returns fallback log paths in order of priority for the
// platform. The system path comes first since zeroize runs as root.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			"/var/log/cyberMonkey/zeroize.log",
			filepath.Join(userStateDir(), "zeroize", "zeroize.log"),
			"/tmp/zeroize/zeroize.log",
		}
	case "darwin":
		return []string{
			filepath.Join(userStateDir(), "zeroize", "zeroize.log"),
			"/tmp/zeroize/zeroize.log",
		}
	default:
		return []string{"zeroize.log"}
	}
}

// userStateDir resolves XDG_STATE_HOME with the ~/.local/state default.
func userStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp"
	}
	return filepath.Join(home, ".local", "state")
}
