// pkg/disk_management/size.go

package disk_management

import (
	"os"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// FillSize populates the device's byte size, best effort. The BLKGETSIZE64
// ioctl is the fast path; blockdev --getsize64 covers the rare kernels where
// the ioctl is unavailable. Size stays unknown rather than failing the run:
// it is shown to the operator for confirmation, not used for arithmetic.
func FillSize(rc *zeroize_io.RuntimeContext, runner execute.RunnerFunc, dev *Device) {
	logger := otelzap.Ctx(rc.Ctx)

	if size, err := sizeFromIoctl(dev.Path); err == nil {
		dev.SizeBytes = size
		dev.SizeKnown = true
		logger.Debug("Device size via ioctl", zap.Uint64("bytes", size))
		return
	}

	out, err := runner(rc.Ctx, execute.Options{
		Command: "blockdev",
		Args:    []string{"--getsize64", dev.Path},
		Capture: true,
	})
	if err != nil {
		logger.Warn("Device size unavailable", zap.String("device", dev.Path), zap.Error(err))
		return
	}

	size, err := strconv.ParseUint(strings.TrimSpace(out), 10, 64)
	if err != nil {
		logger.Warn("Unparsable blockdev output", zap.String("output", strings.TrimSpace(out)))
		return
	}

	dev.SizeBytes = size
	dev.SizeKnown = true
}

func sizeFromIoctl(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// HumanSize renders a byte count for prompt display, or "unknown size" when
// the size could not be determined.
func HumanSize(dev *Device) string {
	if !dev.SizeKnown {
		return "unknown size"
	}
	const unit = 1000
	size := float64(dev.SizeBytes)
	for _, suffix := range []string{"B", "kB", "MB", "GB", "TB", "PB"} {
		if size < unit {
			return strconv.FormatFloat(size, 'f', 1, 64) + " " + suffix
		}
		size /= unit
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " EB"
}
