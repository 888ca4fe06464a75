// pkg/disk_management/mounts.go

package disk_management

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type lsblkDevice struct {
	Name       string        `json:"name"`
	Mountpoint string        `json:"mountpoint"`
	Children   []lsblkDevice `json:"children"`
}

type lsblkOutput struct {
	Blockdevices []lsblkDevice `json:"blockdevices"`
}

// Mountpoint records one in-use filesystem found under the target device.
type Mountpoint struct {
	Device string
	Path   string
}

// CheckMounted fails if the device or any descendant partition is mounted
// anywhere. This runs once, before any confirmation prompt, so the operator
// is never asked to confirm against a device that is actually in use.
func CheckMounted(rc *zeroize_io.RuntimeContext, runner execute.RunnerFunc, dev *Device) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	logger.Info("Checking mount status", zap.String("device", dev.Path))

	out, err := runner(rc.Ctx, execute.Options{
		Command: "lsblk",
		Args:    []string{"-J", "-o", "NAME,MOUNTPOINT", dev.Path},
		Capture: true,
	})
	if err != nil {
		return cerr.Wrap(err, "lsblk mount query failed")
	}

	mounts, err := parseMountpoints(out)
	if err != nil {
		return cerr.Wrap(err, "parsing lsblk output")
	}

	// EVALUATE
	if len(mounts) > 0 {
		var described []string
		for _, m := range mounts {
			described = append(described, fmt.Sprintf("%s at %s", m.Device, m.Path))
		}
		logger.Error("Device is in use",
			zap.String("device", dev.Path),
			zap.Strings("mounts", described))
		return zeroize_err.NewSystemError(
			fmt.Sprintf("%s is mounted (%s)", dev.Path, strings.Join(described, ", ")),
			nil,
			"Unmount the device and all its partitions, then re-run zeroize")
	}

	logger.Info("Device is not mounted", zap.String("device", dev.Path))
	return nil
}

// parseMountpoints walks the lsblk JSON tree and collects every entry with
// a non-empty mountpoint, the device itself included.
func parseMountpoints(out string) ([]Mountpoint, error) {
	var parsed lsblkOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return nil, err
	}

	var mounts []Mountpoint
	var walk func(devs []lsblkDevice)
	walk = func(devs []lsblkDevice) {
		for _, d := range devs {
			if d.Mountpoint != "" {
				mounts = append(mounts, Mountpoint{Device: "/dev/" + d.Name, Path: d.Mountpoint})
			}
			walk(d.Children)
		}
	}
	walk(parsed.Blockdevices)

	return mounts, nil
}
