// pkg/wipe/hdparm.go

package wipe

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/disk_management"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
)

// SecurityProbe queries a drive's ATA security capabilities. The executor
// depends on this narrow interface and the structured Capabilities record,
// not on raw hdparm text, so tests substitute a double.
type SecurityProbe interface {
	// Query returns the parsed capabilities plus the raw security section
	// for operator display.
	Query(rc *zeroize_io.RuntimeContext, dev *disk_management.Device) (Capabilities, string, error)
}

type hdparmProbe struct {
	runner execute.RunnerFunc
}

// NewHdparmProbe returns the production probe backed by `hdparm -I`.
func NewHdparmProbe(runner execute.RunnerFunc) SecurityProbe {
	return &hdparmProbe{runner: runner}
}

func (p *hdparmProbe) Query(rc *zeroize_io.RuntimeContext, dev *disk_management.Device) (Capabilities, string, error) {
	out, err := p.runner(rc.Ctx, execute.Options{
		Command: "hdparm",
		Args:    []string{"-I", dev.Path},
		Capture: true,
	})
	if err != nil {
		return Capabilities{}, "", zeroize_err.NewExternalToolError("hdparm -I", err)
	}

	section := securitySection(out)
	return parseSecuritySection(section), section, nil
}

// securitySection extracts the "Security:" block from hdparm -I output:
// everything from the Security header until the next unindented header.
func securitySection(out string) string {
	lines := strings.Split(out, "\n")
	var section []string
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Security:") {
			inSection = true
			section = append(section, line)
			continue
		}
		if inSection {
			// Section ends at the next top-level header (no indentation).
			if trimmed != "" && !strings.HasPrefix(line, "\t") && !strings.HasPrefix(line, " ") {
				break
			}
			section = append(section, line)
		}
	}

	return strings.Join(section, "\n")
}

// parseSecuritySection scrapes the frozen state and enhanced-erase support
// out of the security block. hdparm negates lines with a leading "not", so
// "not\tfrozen" and "frozen" are distinguished after whitespace folding.
func parseSecuritySection(section string) Capabilities {
	var caps Capabilities

	for _, line := range strings.Split(section, "\n") {
		norm := strings.ToLower(strings.Join(strings.Fields(line), " "))
		switch {
		case norm == "frozen":
			caps.Frozen = true
		case norm == "not frozen":
			caps.Frozen = false
		case strings.Contains(norm, "supported: enhanced erase"):
			caps.SupportsEnhancedErase = !strings.HasPrefix(norm, "not")
		}
	}

	return caps
}
