// pkg/interaction/root.go
package interaction

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// RequireRoot checks if running as root and provides a helpful message if
// not. Every zeroize run needs root: the erase tools it dispatches to open
// raw block devices.
func RequireRoot(rc *zeroize_io.RuntimeContext, commandName string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if os.Geteuid() != 0 {
		logger.Info("Root privileges required",
			zap.String("command", commandName),
			zap.Int("current_uid", os.Geteuid()))

		logger.Info(fmt.Sprintf("The '%s' command requires root privileges.", commandName))
		logger.Info("Please run with sudo:")
		logger.Info(fmt.Sprintf("  sudo %s", strings.Join(os.Args, " ")))

		return fmt.Errorf("this command must be run as root")
	}

	return nil
}

// RequireTerminal fails unless stdin is a TTY. Unattended operation is
// unsupported: every destructive checkpoint is a blocking interactive read.
func RequireTerminal(rc *zeroize_io.RuntimeContext) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		otelzap.Ctx(rc.Ctx).Error("❌ stdin is not a terminal")
		return fmt.Errorf("zeroize is interactive only: run it from a terminal")
	}
	return nil
}
