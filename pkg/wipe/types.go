// pkg/wipe/types.go

package wipe

import (
	"time"
)

// StrategyKind is the erase method family.
type StrategyKind int

const (
	// StrategyOverwrite is multi-pass pseudorandom overwrite plus a final
	// zero fill. Rotational media only.
	StrategyOverwrite StrategyKind = iota
	// StrategyDiscard is a whole-device TRIM. Flash media only.
	StrategyDiscard
	// StrategyNVMeSecureErase is a controller-level format with
	// cryptographic erase. NVMe-attached flash only.
	StrategyNVMeSecureErase
	// StrategySATASecureErase is the ATA security erase command set,
	// enhanced variant when the drive advertises it. SATA flash only.
	StrategySATASecureErase
)

// Strategy is one selectable erase method.
type Strategy struct {
	Kind   StrategyKind
	Passes int // overwrite passes; zero for controller/discard methods
	Label  string
}

// Confirmation literals. Each destructive checkpoint uses a distinct token
// so muscle memory from one gate can never satisfy another.
const (
	TokenDestroy = "DESTROY ALL DATA"
	TokenNVMe    = "ERASE NVME"
	TokenSATA    = "ERASE SATA"
)

// RunOutcome is reported to the operator and reflected in the exit status.
// Nothing is persisted between runs.
type RunOutcome struct {
	Device   string
	Strategy string
	Success  bool
	Message  string
	Duration time.Duration
}

// Capabilities is the structured record scraped from the drive's
// security-capability report.
type Capabilities struct {
	SupportsEnhancedErase bool
	Frozen                bool
}
