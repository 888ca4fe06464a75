// pkg/execute/types.go

package execute

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Options controls a single external tool invocation.
type Options struct {
	Command string
	Args    []string
	Dir     string

	// Capture returns combined stdout+stderr to the caller for parsing
	// (lsblk JSON, hdparm -I reports).
	Capture bool

	// Stream mirrors tool output to stderr as it is produced. Used for
	// long-running erase tools so the operator sees progress.
	Stream bool

	// Timeout bounds the invocation; zero means no timeout, which is the
	// norm here since erase tools legitimately run for hours.
	Timeout time.Duration

	Logger *zap.Logger
}

// RunnerFunc is the invocation seam: production code uses Run, tests
// substitute a canned runner.
type RunnerFunc func(ctx context.Context, opts Options) (string, error)

// DefaultLogger, when set, is used by invocations that carry no logger.
var DefaultLogger *zap.Logger
