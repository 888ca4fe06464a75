// pkg/wipe/orchestrator.go

package wipe

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/disk_management"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Orchestrator sequences one run end to end: listing → resolve → mount
// guard → classify → confirmations → selection → confirmation → execution.
// Strictly linear, one device, one strategy, then exit.
type Orchestrator struct {
	Runner     execute.RunnerFunc
	In         *bufio.Reader
	Classifier *disk_management.Classifier
	Resolve    func(path string) (*disk_management.Device, error)
	CheckTool  func(tool, operation string) error
	Executor   *Executor
}

// NewOrchestrator wires the production dependencies.
func NewOrchestrator() *Orchestrator {
	in := bufio.NewReader(os.Stdin)
	return &Orchestrator{
		Runner:     execute.Run,
		In:         in,
		Classifier: disk_management.NewClassifier(),
		Resolve:    disk_management.ResolveDevice,
		CheckTool:  execute.LookPath,
		Executor:   NewExecutor(execute.Run, in),
	}
}

// Run erases one device. devicePath may be empty, in which case the
// operator is asked for it after the listing is shown.
func (o *Orchestrator) Run(rc *zeroize_io.RuntimeContext, devicePath string) (*RunOutcome, error) {
	logger := otelzap.Ctx(rc.Ctx)
	start := time.Now()

	// ASSESS — preconditions before anything is shown or asked.
	for _, tool := range []string{"lsblk", "blockdev"} {
		if err := o.CheckTool(tool, "device inspection"); err != nil {
			return nil, err
		}
	}

	// The device argument resolves before any prompt; only a missing
	// argument falls through to the device prompt after the listing.
	var dev *disk_management.Device
	if devicePath != "" {
		var err error
		if dev, err = o.Resolve(devicePath); err != nil {
			return nil, err
		}
	}

	if err := disk_management.ShowListing(rc, o.Runner); err != nil {
		return nil, err
	}

	if dev == nil {
		entered, err := interaction.ReadLineTrimmed(rc.Ctx, o.In, interaction.EnterDevicePrompt)
		if err != nil {
			return nil, err
		}
		if dev, err = o.Resolve(entered); err != nil {
			return nil, err
		}
	}

	disk_management.FillSize(rc, o.Runner, dev)
	logger.Info("Target device",
		zap.String("device", dev.Path),
		zap.String("size", disk_management.HumanSize(dev)))

	// Mount guard runs before any confirmation prompt.
	if err := disk_management.CheckMounted(rc, o.Runner, dev); err != nil {
		return nil, err
	}

	// Classification is computed exactly once.
	classification, err := o.Classifier.Classify(rc, dev)
	if err != nil {
		return nil, err
	}

	// Checkpoint 1: the operator confirms the (possibly assumed) type.
	typePrompt := fmt.Sprintf("Device %s was detected as %s", dev.Path, classification.Class)
	if classification.Assumed {
		typePrompt = fmt.Sprintf(
			"The media type of %s could not be read; it is ASSUMED to be %s",
			dev.Path, classification.Class)
	}
	if err := interaction.ConfirmYesNo(rc.Ctx, o.In, typePrompt+". Proceed with this type?"); err != nil {
		return nil, err
	}

	// Checkpoint 2: generic destructive acknowledgment against the full
	// identifier and size.
	if err := interaction.ConfirmExact(rc.Ctx, o.In,
		fmt.Sprintf("ALL DATA on %s (%s) will be irreversibly destroyed.",
			dev.Path, disk_management.HumanSize(dev)),
		TokenDestroy); err != nil {
		return nil, err
	}

	strategy, err := SelectStrategy(rc, o.In, classification.Class)
	if err != nil {
		return nil, err
	}

	// Checkpoint 3: per-branch final confirmation.
	if err := interaction.ConfirmYesNo(rc.Ctx, o.In,
		fmt.Sprintf("Final confirm: erase %s using %q?", dev.Path, strategy.Label)); err != nil {
		return nil, err
	}

	// INTERVENE — checkpoint 4 (the method token) lives inside the
	// executor for the two controller-erase strategies.
	if err := o.Executor.Execute(rc, dev, classification.Class, strategy); err != nil {
		return nil, err
	}

	// EVALUATE
	outcome := &RunOutcome{
		Device:   dev.Path,
		Strategy: strategy.Label,
		Success:  true,
		Message:  fmt.Sprintf("Secure erase of %s completed (%s)", dev.Path, strategy.Label),
		Duration: time.Since(start),
	}

	logger.Info("Erase completed",
		zap.String("device", outcome.Device),
		zap.String("strategy", outcome.Strategy),
		zap.Duration("duration", outcome.Duration))

	return outcome, nil
}
