// pkg/disk_management/types.go

package disk_management

// MediaClass labels the target's underlying media.
type MediaClass string

const (
	// ClassRotational is spinning magnetic media (HDD): overwrite passes
	// are meaningful.
	ClassRotational MediaClass = "HDD"
	// ClassNonRotational is flash media (SSD/NVMe): wear-leveling makes
	// overwrites ineffective, so controller or discard erasure is offered.
	ClassNonRotational MediaClass = "SSD"
)

// DefaultClassOnReadFailure is the documented policy when the rotational
// attribute cannot be read: assume flash. The assumption is surfaced to the
// operator, who still confirms the type before anything destructive runs.
const DefaultClassOnReadFailure = ClassNonRotational

// Device is the single target of a run. Constructed once from operator
// input and read-only thereafter.
type Device struct {
	Path      string // e.g. /dev/sda
	Name      string // kernel name, e.g. sda
	SizeBytes uint64 // best-effort; zero when SizeKnown is false
	SizeKnown bool
}

// Classification is the outcome of the single rotational-attribute read.
type Classification struct {
	Class MediaClass
	// Assumed is true when the attribute was unreadable and
	// DefaultClassOnReadFailure was applied.
	Assumed bool
}
