// pkg/wipe/executor.go

package wipe

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/disk_management"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Executor maps a validated strategy to exactly one external invocation
// sequence. Any non-zero tool exit is fatal for the run: the erase tools
// expose no resumable checkpoint, so there is no retry and no rollback.
type Executor struct {
	Runner      execute.RunnerFunc
	In          *bufio.Reader
	Probe       SecurityProbe
	RequireTool func(tool, operation string) error
}

// NewExecutor wires the production seams: real tool execution, stdin
// prompts, hdparm probing.
func NewExecutor(runner execute.RunnerFunc, in *bufio.Reader) *Executor {
	return &Executor{
		Runner:      runner,
		In:          in,
		Probe:       NewHdparmProbe(runner),
		RequireTool: execute.LookPath,
	}
}

// Execute performs the chosen erase. The classification gate is re-checked
// here so a strategy outside the class's menu is rejected even if this is
// called directly rather than through the selector.
func (e *Executor) Execute(rc *zeroize_io.RuntimeContext, dev *disk_management.Device, class disk_management.MediaClass, s Strategy) error {
	logger := otelzap.Ctx(rc.Ctx)

	if !allowedFor(class, s) {
		return zeroize_err.NewInternalError(
			fmt.Sprintf("strategy %q is not selectable for %s media", s.Label, class), nil)
	}

	logger.Info("Executing erase strategy",
		zap.String("device", dev.Path),
		zap.String("strategy", s.Label))

	switch s.Kind {
	case StrategyOverwrite:
		return e.overwrite(rc, dev, s.Passes)
	case StrategyDiscard:
		return e.discard(rc, dev)
	case StrategyNVMeSecureErase:
		return e.nvmeSecureErase(rc, dev)
	case StrategySATASecureErase:
		return e.sataSecureErase(rc, dev)
	default:
		return zeroize_err.NewInternalError(
			fmt.Sprintf("unknown strategy kind %d", s.Kind), nil)
	}
}

// overwrite runs n pseudorandom passes plus a final zero-fill pass over the
// whole device, verbosely so the operator can watch progress.
func (e *Executor) overwrite(rc *zeroize_io.RuntimeContext, dev *disk_management.Device, passes int) error {
	if err := e.RequireTool("shred", "overwrite erase"); err != nil {
		return err
	}

	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "shred",
		Args:    []string{"-v", "-n", strconv.Itoa(passes), "-z", dev.Path},
		Stream:  true,
	}); err != nil {
		return zeroize_err.NewExternalToolError("shred", err)
	}

	return e.flush(rc)
}

// discard issues a whole-device TRIM.
func (e *Executor) discard(rc *zeroize_io.RuntimeContext, dev *disk_management.Device) error {
	if err := e.RequireTool("blkdiscard", "discard erase"); err != nil {
		return err
	}

	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "blkdiscard",
		Args:    []string{dev.Path},
	}); err != nil {
		return zeroize_err.NewExternalToolError("blkdiscard", err)
	}

	return e.flush(rc)
}

// nvmeSecureErase issues a controller-level format with the cryptographic
// erase setting. The device name must follow the NVMe naming convention:
// on anything else this fails before a single external invocation.
func (e *Executor) nvmeSecureErase(rc *zeroize_io.RuntimeContext, dev *disk_management.Device) error {
	logger := otelzap.Ctx(rc.Ctx)

	if !disk_management.IsNVMe(dev.Name) {
		return zeroize_err.NewValidationError(
			fmt.Sprintf("%s is not an NVMe device: NVMe secure erase requires an nvmeXnY device", dev.Path))
	}

	if err := e.RequireTool("nvme", "NVMe secure erase"); err != nil {
		return err
	}

	// Read-only reachability check before anything destructive is sent.
	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "nvme",
		Args:    []string{"id-ctrl", dev.Path},
		Capture: true,
	}); err != nil {
		return zeroize_err.NewExternalToolError("nvme id-ctrl", err)
	}

	if err := interaction.ConfirmExact(rc.Ctx, e.In,
		fmt.Sprintf("NVMe secure erase will cryptographically destroy every namespace block on %s.", dev.Path),
		TokenNVMe); err != nil {
		return err
	}

	logger.Info("Issuing NVMe format with cryptographic erase", zap.String("device", dev.Path))
	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "nvme",
		Args:    []string{"format", dev.Path, "--ses=2"},
	}); err != nil {
		return zeroize_err.NewExternalToolError("nvme format", err)
	}

	return e.flush(rc)
}

// sataSecureErase drives the ATA security erase flow: capability report,
// frozen-state warning, temporary NULL password, then the enhanced variant
// when the drive advertises it, falling back to the standard one.
func (e *Executor) sataSecureErase(rc *zeroize_io.RuntimeContext, dev *disk_management.Device) error {
	logger := otelzap.Ctx(rc.Ctx)

	if err := e.RequireTool("hdparm", "SATA secure erase"); err != nil {
		return err
	}

	caps, section, err := e.Probe.Query(rc, dev)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stderr, "Drive security report:")
	_, _ = fmt.Fprintln(os.Stderr, section)

	if caps.Frozen {
		logger.Warn("Drive security state is frozen",
			zap.String("device", dev.Path))
		_, _ = fmt.Fprintln(os.Stderr,
			"WARNING: the drive reports a frozen security state. The erase command")
		_, _ = fmt.Fprintln(os.Stderr,
			"will likely be rejected until the drive is power-cycled (a soft reboot")
		_, _ = fmt.Fprintln(os.Stderr,
			"is not enough). Suspend/resume or physically re-seat power to clear it.")
	}
	if caps.SupportsEnhancedErase {
		_, _ = fmt.Fprintln(os.Stderr,
			"The drive advertises the enhanced erase variant; it will be used.")
	} else {
		_, _ = fmt.Fprintln(os.Stderr,
			"No enhanced erase support advertised; the standard variant will be used.")
	}

	if err := interaction.ConfirmExact(rc.Ctx, e.In,
		fmt.Sprintf("SATA secure erase will instruct the controller of %s to destroy all blocks.", dev.Path),
		TokenSATA); err != nil {
		return err
	}

	// Temporary NULL password under the user security scope; the erase
	// command clears it again on success.
	logger.Info("Setting temporary security password", zap.String("device", dev.Path))
	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "hdparm",
		Args:    []string{"--user-master", "u", "--security-set-pass", "NULL", dev.Path},
	}); err != nil {
		return zeroize_err.NewExternalToolError("hdparm --security-set-pass", err)
	}

	eraseArg := "--security-erase"
	if caps.SupportsEnhancedErase {
		eraseArg = "--security-erase-enhanced"
	}

	logger.Info("Issuing ATA security erase",
		zap.String("device", dev.Path),
		zap.String("variant", eraseArg))
	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "hdparm",
		Args:    []string{"--user-master", "u", eraseArg, "NULL", dev.Path},
		Stream:  true,
	}); err != nil {
		return zeroize_err.NewExternalToolError("hdparm "+eraseArg, err)
	}

	return e.flush(rc)
}

// flush forces a filesystem-cache flush to stable storage before success is
// reported.
func (e *Executor) flush(rc *zeroize_io.RuntimeContext) error {
	if _, err := e.Runner(rc.Ctx, execute.Options{
		Command: "sync",
	}); err != nil {
		return zeroize_err.NewExternalToolError("sync", err)
	}
	return nil
}
