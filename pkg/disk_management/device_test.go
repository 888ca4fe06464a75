package disk_management

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseBlockName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		device  string
		want    string
		wantErr bool
	}{
		{name: "sata_disk", device: "sda", want: "sda"},
		{name: "sata_partition", device: "sda3", want: "sda"},
		{name: "virtio_partition", device: "vdb1", want: "vdb"},
		{name: "xen_partition", device: "xvda1", want: "xvda"},
		{name: "ide_disk", device: "hdc", want: "hdc"},
		{name: "nvme_namespace", device: "nvme0n1", want: "nvme0n1"},
		{name: "nvme_partition", device: "nvme0n1p2", want: "nvme0n1"},
		{name: "nvme_second_controller", device: "nvme1n2p10", want: "nvme1n2"},
		{name: "mmc_disk", device: "mmcblk0", want: "mmcblk0"},
		{name: "mmc_partition", device: "mmcblk0p1", want: "mmcblk0"},
		{name: "loop_device_rejected", device: "loop0", wantErr: true},
		{name: "mapper_rejected", device: "dm-0", wantErr: true},
		{name: "empty_rejected", device: "", wantErr: true},
		{name: "garbage_rejected", device: "not a device", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BaseBlockName(tt.device)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNVMe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		device string
		want   bool
	}{
		{device: "nvme0n1", want: true},
		{device: "nvme0n1p1", want: true},
		{device: "nvme12n3", want: true},
		{device: "sda", want: false},
		{device: "sdnvme", want: false},
		{device: "mmcblk0", want: false},
		{device: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsNVMe(tt.device))
		})
	}
}

func TestResolveDevice_EmptyPath(t *testing.T) {
	t.Parallel()
	_, err := ResolveDevice("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target device")
}

func TestResolveDevice_Missing(t *testing.T) {
	t.Parallel()
	_, err := ResolveDevice("/dev/definitely-not-a-device")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot stat")
}

func TestResolveDevice_NotBlockDevice(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plainfile")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := ResolveDevice(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a block device")
}
