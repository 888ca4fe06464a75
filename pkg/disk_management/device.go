// pkg/disk_management/device.go

package disk_management

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"golang.org/x/sys/unix"
)

var (
	nvmePattern   = regexp.MustCompile(`^nvme\d+n\d+(p\d+)?$`)
	mmcPattern    = regexp.MustCompile(`^mmcblk\d+(p\d+)?$`)
	scsiPattern   = regexp.MustCompile(`^(sd|vd|hd|xvd)[a-z]+\d*$`)
	partSuffix    = regexp.MustCompile(`p\d+$`)
	numberSuffix  = regexp.MustCompile(`\d+$`)
	nvmeBareDrive = regexp.MustCompile(`^nvme\d+n\d+$`)
)

// ResolveDevice validates the operator-supplied path and constructs the
// run's single Device. Anything that does not stat as a block device is a
// fatal precondition error, raised before any prompt is shown.
func ResolveDevice(path string) (*Device, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, zeroize_err.NewValidationError("no target device given",
			"Pass a block device path such as /dev/sdb")
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, zeroize_err.NewSystemError(
			fmt.Sprintf("cannot stat %s", path), err,
			"Check the device path with lsblk")
	}
	if st.Mode&unix.S_IFMT != unix.S_IFBLK {
		return nil, zeroize_err.NewValidationError(
			fmt.Sprintf("%s is not a block device", path))
	}

	return &Device{
		Path: path,
		Name: filepath.Base(path),
	}, nil
}

// BaseBlockName resolves a device or partition name to the owning physical
// device's kernel name, which is where sysfs exposes the rotational
// attribute. Composite names it does not recognize are a fatal
// configuration error rather than a guess.
func BaseBlockName(name string) (string, error) {
	switch {
	case nvmePattern.MatchString(name):
		// nvme0n1p2 -> nvme0n1; the namespace itself has the queue dir.
		return partSuffix.ReplaceAllString(name, ""), nil
	case mmcPattern.MatchString(name):
		return partSuffix.ReplaceAllString(name, ""), nil
	case scsiPattern.MatchString(name):
		// sda3 -> sda
		return numberSuffix.ReplaceAllString(name, ""), nil
	default:
		return "", zeroize_err.NewSystemError(
			fmt.Sprintf("unrecognized block device name %q", name), nil,
			"zeroize understands sdX, vdX, hdX, xvdX, nvmeXnY and mmcblkX names")
	}
}

// IsNVMe reports whether the device name follows the NVMe namespace naming
// convention. Guards the NVMe-only erase path.
func IsNVMe(name string) bool {
	return nvmeBareDrive.MatchString(partSuffix.ReplaceAllString(name, ""))
}
