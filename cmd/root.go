/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/wipe"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_cli"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the single zeroize command: there are no flags and no
// subcommands, just one interactive erase per invocation.
var RootCmd = &cobra.Command{
	Use:   "zeroize [device]",
	Short: "Securely erase one storage device",
	Long: `zeroize interactively erases a single storage device, choosing between
overwrite-based and controller-level erase strategies depending on whether
the device is a rotational disk (HDD) or flash (SSD/NVMe).

All erasure is delegated to the host's erase tools (shred, blkdiscard,
nvme, hdparm); zeroize classifies the device, blocks if anything on it is
mounted, and walks a fixed series of typed confirmations before dispatch.

WARNING: a completed run destroys all data on the target device.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: zeroize_cli.Wrap(func(rc *zeroize_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		if err := interaction.RequireRoot(rc, "zeroize"); err != nil {
			return zeroize_err.NewPermissionError("block devices", "erase",
				"Re-run with sudo")
		}
		if err := interaction.RequireTerminal(rc); err != nil {
			return err
		}

		devicePath := ""
		if len(args) == 1 {
			devicePath = args[0]
		}

		outcome, err := wipe.NewOrchestrator().Run(rc, devicePath)
		if err != nil {
			return err
		}

		rc.Log.Info("Run outcome",
			zap.String("device", outcome.Device),
			zap.String("strategy", outcome.Strategy),
			zap.Duration("duration", outcome.Duration))
		fmt.Println(outcome.Message)
		return nil
	}),
}

// Execute runs the root command and translates the resulting error into the
// process exit status. This is the only place that mapping happens: every
// fatal path below returns an error upward and prints exactly one
// diagnostic line here.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	if err := RootCmd.Execute(); err != nil {
		if zeroize_err.IsExpectedUserError(err) {
			logger.L().Warn("Run aborted by operator", zap.Error(err))
		} else {
			logger.L().Error("Run failed", zap.Error(err))
		}
		// Hints go through the logger so stderr keeps its single
		// diagnostic line.
		for _, hint := range zeroize_err.GetRemediation(err) {
			logger.L().Warn("How to fix", zap.String("hint", hint))
		}
		fmt.Fprintf(os.Stderr, "zeroize: %v\n", err)
		os.Exit(zeroize_err.GetExitCode(err))
	}
}
