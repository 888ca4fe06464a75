// pkg/wipe/selector.go

package wipe

import (
	"bufio"
	"fmt"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/disk_management"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// StrategiesFor returns the strategies valid for a media class. The menus
// are fixed: overwrite profiles for spinning disks, controller or discard
// erasure for flash. No strategy appears in both menus.
func StrategiesFor(class disk_management.MediaClass) []Strategy {
	if class == disk_management.ClassRotational {
		return []Strategy{
			{Kind: StrategyOverwrite, Passes: 1, Label: "1 pass + zero fill (personal)"},
			{Kind: StrategyOverwrite, Passes: 3, Label: "3 passes + zero fill (business/resale)"},
			{Kind: StrategyOverwrite, Passes: 7, Label: "7 passes + zero fill (government-grade)"},
			{Kind: StrategyOverwrite, Passes: 35, Label: "35 passes + zero fill (paranoid/forensic)"},
		}
	}
	return []Strategy{
		{Kind: StrategyDiscard, Label: "Fast whole-device discard/TRIM"},
		{Kind: StrategyNVMeSecureErase, Label: "NVMe secure erase (controller-level, crypto erase)"},
		{Kind: StrategySATASecureErase, Label: "SATA secure erase (ATA security command set)"},
	}
}

// SelectStrategy presents the applicable menu and returns the operator's
// single choice. An out-of-range choice aborts the run; the operator
// re-invokes rather than looping.
func SelectStrategy(rc *zeroize_io.RuntimeContext, reader *bufio.Reader, class disk_management.MediaClass) (Strategy, error) {
	logger := otelzap.Ctx(rc.Ctx)

	strategies := StrategiesFor(class)
	labels := make([]string, len(strategies))
	for i, s := range strategies {
		labels[i] = s.Label
	}

	idx, err := interaction.PromptSelect(rc.Ctx, reader,
		fmt.Sprintf("Erase methods for %s media:", class), labels)
	if err != nil {
		return Strategy{}, err
	}

	chosen := strategies[idx]
	logger.Info("Strategy selected",
		zap.String("label", chosen.Label),
		zap.Int("passes", chosen.Passes))
	return chosen, nil
}

// allowedFor reports whether a strategy is in the class's fixed menu. The
// executor re-checks this so a direct call can never cross the
// classification boundary the menu enforces.
func allowedFor(class disk_management.MediaClass, s Strategy) bool {
	for _, candidate := range StrategiesFor(class) {
		if candidate.Kind == s.Kind {
			if s.Kind != StrategyOverwrite {
				return true
			}
			if candidate.Passes == s.Passes {
				return true
			}
		}
	}
	return false
}
