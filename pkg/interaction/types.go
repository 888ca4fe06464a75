/* pkg/interaction/types.go */

package interaction

const (
	EnterChoicePrompt = "Enter choice number"
	EnterDevicePrompt = "Enter target device path (e.g. /dev/sdb)"
)

const (
	YesShort = "y"
	YesLong  = "yes"
	NoShort  = "n"
	NoLong   = "no"
)
