package wipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/disk_management"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lsblkClean = `{
  "blockdevices": [
    {"name": "sda", "mountpoint": null,
     "children": [{"name": "sda1", "mountpoint": null}]}
  ]
}`

const lsblkBusy = `{
  "blockdevices": [
    {"name": "sdb", "mountpoint": null,
     "children": [{"name": "sdb1", "mountpoint": "/data"}]}
  ]
}`

// sysfsWith builds a fake /sys/block root holding one rotational attribute.
func sysfsWith(t *testing.T, device, value string) string {
	t.Helper()
	root := t.TempDir()
	queueDir := filepath.Join(root, device, "queue")
	require.NoError(t, os.MkdirAll(queueDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(queueDir, "rotational"), []byte(value), 0644))
	return root
}

func newTestOrchestrator(rec *recorder, input, sysfsRoot string) *Orchestrator {
	in := reader(input)
	return &Orchestrator{
		Runner:     rec.run,
		In:         in,
		Classifier: &disk_management.Classifier{SysfsRoot: sysfsRoot},
		Resolve: func(path string) (*disk_management.Device, error) {
			return &disk_management.Device{Path: path, Name: filepath.Base(path)}, nil
		},
		CheckTool: noTool,
		Executor: &Executor{
			Runner:      rec.run,
			In:          in,
			Probe:       &fakeProbe{section: "Security:\n\tnot\tfrozen"},
			RequireTool: noTool,
		},
	}
}

// eraseLines filters the recorded invocations down to the destructive ones,
// dropping the read-only inspection commands whose presence depends on the
// host (the size ioctl may succeed and skip the blockdev fallback).
func eraseLines(rec *recorder) []string {
	var lines []string
	for _, l := range rec.commandLines() {
		if strings.HasPrefix(l, "lsblk") || strings.HasPrefix(l, "blockdev") {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func TestRun_RotationalOverwrite(t *testing.T) {
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec,
		"y\n"+
			"DESTROY ALL DATA\n"+
			"2\n"+
			"y\n",
		sysfsWith(t, "sda", "1\n"))

	outcome, err := o.Run(testRC(), "/dev/sda")
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, "/dev/sda", outcome.Device)
	assert.Contains(t, outcome.Strategy, "3 passes")
	assert.Equal(t, []string{
		"shred -v -n 3 -z /dev/sda",
		"sync",
	}, eraseLines(rec))

	// The device listing is the first thing shown.
	require.NotEmpty(t, rec.calls)
	assert.Equal(t, "lsblk", rec.calls[0].Command)
}

func TestRun_NVMeSecureErase(t *testing.T) {
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec,
		"y\n"+
			"DESTROY ALL DATA\n"+
			"2\n"+
			"y\n"+
			"ERASE NVME\n",
		sysfsWith(t, "nvme0n1", "0\n"))

	outcome, err := o.Run(testRC(), "/dev/nvme0n1")
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Success)
	assert.Equal(t, []string{
		"nvme id-ctrl /dev/nvme0n1",
		"nvme format /dev/nvme0n1 --ses=2",
		"sync",
	}, eraseLines(rec))
}

func TestRun_PromptedDevicePath(t *testing.T) {
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec,
		"/dev/sda\n"+
			"y\n"+
			"DESTROY ALL DATA\n"+
			"1\n"+
			"y\n",
		sysfsWith(t, "sda", "1\n"))

	outcome, err := o.Run(testRC(), "")
	require.NoError(t, err)
	assert.Equal(t, "/dev/sda", outcome.Device)
	assert.Equal(t, []string{
		"shred -v -n 1 -z /dev/sda",
		"sync",
	}, eraseLines(rec))
}

func TestRun_MountedDeviceAborts(t *testing.T) {
	rec := &recorder{mountJSON: lsblkBusy}
	o := newTestOrchestrator(rec, "", sysfsWith(t, "sdb", "1\n"))

	_, err := o.Run(testRC(), "/dev/sdb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mounted")
	assert.Empty(t, eraseLines(rec), "a mounted device must abort before any erase command")
}

func TestRun_ResolveFailureBeforeListing(t *testing.T) {
	rec := &recorder{}
	o := newTestOrchestrator(rec, "", t.TempDir())
	o.Resolve = func(path string) (*disk_management.Device, error) {
		return nil, cerr.Newf("%s is not a block device", path)
	}

	_, err := o.Run(testRC(), "/dev/sdz")
	require.Error(t, err)
	assert.Empty(t, rec.calls, "a bad device argument aborts before anything runs")
}

func TestRun_TypeCheckpointDecline(t *testing.T) {
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec, "n\n", sysfsWith(t, "sda", "1\n"))

	_, err := o.Run(testRC(), "/dev/sda")
	require.Error(t, err)
	assert.ErrorIs(t, err, zeroize_err.ErrDeclined)
	assert.True(t, zeroize_err.IsExpectedUserError(err))
	assert.Empty(t, eraseLines(rec))
}

func TestRun_DestroyLiteralMismatchAborts(t *testing.T) {
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec,
		"y\n"+
			"DESTROY EVERYTHING\n",
		sysfsWith(t, "sda", "1\n"))

	_, err := o.Run(testRC(), "/dev/sda")
	require.Error(t, err)
	assert.ErrorIs(t, err, zeroize_err.ErrConfirmationFailed)
	assert.True(t, zeroize_err.IsExpectedUserError(err))
	assert.Empty(t, eraseLines(rec))
}

func TestRun_AssumedClassificationStillRuns(t *testing.T) {
	// Unreadable rotational attribute: the run continues with the assumed
	// non-rotational class and the flash menu.
	rec := &recorder{mountJSON: lsblkClean}
	o := newTestOrchestrator(rec,
		"y\n"+
			"DESTROY ALL DATA\n"+
			"1\n"+
			"y\n",
		t.TempDir())

	outcome, err := o.Run(testRC(), "/dev/sda")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, []string{
		"blkdiscard /dev/sda",
		"sync",
	}, eraseLines(rec))
}

func TestRun_MissingInspectionToolAborts(t *testing.T) {
	rec := &recorder{}
	o := newTestOrchestrator(rec, "", t.TempDir())
	o.CheckTool = func(tool, operation string) error {
		return zeroize_err.NewDependencyError(tool, operation)
	}

	_, err := o.Run(testRC(), "/dev/sda")
	require.Error(t, err)

	var classified *zeroize_err.ClassifiedError
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, zeroize_err.CategoryDependency, classified.Category)
	assert.Empty(t, rec.calls)
}
