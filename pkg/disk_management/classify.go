// pkg/disk_management/classify.go

package disk_management

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Classifier reads the kernel's per-device rotational attribute. SysfsRoot
// is configurable so tests can point it at a fixture tree.
type Classifier struct {
	SysfsRoot string
}

// NewClassifier returns a classifier reading the live sysfs tree.
func NewClassifier() *Classifier {
	return &Classifier{SysfsRoot: "/sys/block"}
}

// Classify labels the device HDD or SSD following the Assess → Intervene →
// Evaluate pattern. It is called exactly once per run; the result gates
// which erase strategies are offerable.
//
// An unreadable attribute is NOT fatal: the documented default
// (DefaultClassOnReadFailure) applies and Assumed is set, so the operator
// sees the assumption at the type-confirmation checkpoint. Only an
// unrecognizable device name aborts, since no attribute path can be built.
func (c *Classifier) Classify(rc *zeroize_io.RuntimeContext, dev *Device) (Classification, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	base, err := BaseBlockName(dev.Name)
	if err != nil {
		logger.Error("Cannot derive base block device", zap.String("device", dev.Name), zap.Error(err))
		return Classification{}, err
	}

	attrPath := filepath.Join(c.SysfsRoot, base, "queue", "rotational")
	logger.Debug("Reading rotational attribute",
		zap.String("device", dev.Path),
		zap.String("attr_path", attrPath))

	// INTERVENE
	raw, err := os.ReadFile(attrPath)
	if err != nil {
		logger.Warn("Rotational attribute unreadable, assuming flash media",
			zap.String("attr_path", attrPath),
			zap.String("assumed_class", string(DefaultClassOnReadFailure)),
			zap.Error(err))
		return Classification{Class: DefaultClassOnReadFailure, Assumed: true}, nil
	}

	// EVALUATE
	var result Classification
	switch strings.TrimSpace(string(raw)) {
	case "1":
		result = Classification{Class: ClassRotational}
	case "0":
		result = Classification{Class: ClassNonRotational}
	default:
		logger.Warn("Unexpected rotational attribute value, assuming flash media",
			zap.String("value", strings.TrimSpace(string(raw))))
		result = Classification{Class: DefaultClassOnReadFailure, Assumed: true}
	}

	logger.Info("Device classified",
		zap.String("device", dev.Path),
		zap.String("class", string(result.Class)),
		zap.Bool("assumed", result.Assumed))

	return result, nil
}
