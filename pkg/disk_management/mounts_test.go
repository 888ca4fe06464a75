package disk_management

import (
	"context"
	"testing"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lsblkMounted = `{
  "blockdevices": [
    {"name": "sdb", "mountpoint": null,
     "children": [
       {"name": "sdb1", "mountpoint": "/data"},
       {"name": "sdb2", "mountpoint": null}
     ]}
  ]
}`

const lsblkUnmounted = `{
  "blockdevices": [
    {"name": "sdb", "mountpoint": null,
     "children": [
       {"name": "sdb1", "mountpoint": null}
     ]}
  ]
}`

const lsblkWholeDiskMounted = `{
  "blockdevices": [
    {"name": "sdc", "mountpoint": "/mnt/backup"}
  ]
}`

func fixedRunner(out string, err error) execute.RunnerFunc {
	return func(ctx context.Context, opts execute.Options) (string, error) {
		return out, err
	}
}

func TestParseMountpoints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		json string
		want []Mountpoint
	}{
		{
			name: "partition_mounted",
			json: lsblkMounted,
			want: []Mountpoint{{Device: "/dev/sdb1", Path: "/data"}},
		},
		{
			name: "nothing_mounted",
			json: lsblkUnmounted,
			want: nil,
		},
		{
			name: "whole_disk_mounted",
			json: lsblkWholeDiskMounted,
			want: []Mountpoint{{Device: "/dev/sdc", Path: "/mnt/backup"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseMountpoints(tt.json)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMountpoints_BadJSON(t *testing.T) {
	t.Parallel()
	_, err := parseMountpoints("lsblk: /dev/sdz: not a block device")
	require.Error(t, err)
}

func TestCheckMounted_Blocks(t *testing.T) {
	dev := &Device{Path: "/dev/sdb", Name: "sdb"}
	err := CheckMounted(testRC(), fixedRunner(lsblkMounted, nil), dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mounted")
	assert.Contains(t, err.Error(), "/data")
}

func TestCheckMounted_Clean(t *testing.T) {
	dev := &Device{Path: "/dev/sdb", Name: "sdb"}
	require.NoError(t, CheckMounted(testRC(), fixedRunner(lsblkUnmounted, nil), dev))
}

func TestCheckMounted_LsblkFailure(t *testing.T) {
	dev := &Device{Path: "/dev/sdb", Name: "sdb"}
	err := CheckMounted(testRC(), fixedRunner("", cerr.New("boom")), dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lsblk mount query failed")
}
