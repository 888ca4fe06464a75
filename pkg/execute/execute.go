// pkg/execute/execute.go

package execute

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Package execute provides secure command execution with structured logging.
// Shell execution is not supported: every invocation is a binary plus an
// explicit argument vector, so device paths are never interpolated into a
// shell string.

// Run executes a command with structured logging and proper error handling.
func Run(ctx context.Context, opts Options) (string, error) {
	cmdStr := buildCommandString(opts.Command, opts.Args...)

	log := opts.Logger
	if log == nil {
		log = DefaultLogger
	}
	if log == nil {
		log = zap.NewNop()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	rctx, span := telemetry.Start(ctx, "execute.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", opts.Command),
		attribute.String("args", strings.Join(opts.Args, " ")),
	)

	log.Info("Starting execution", zap.String("command", cmdStr))

	cmd := exec.CommandContext(rctx, opts.Command, opts.Args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var buf bytes.Buffer
	var writer io.Writer = &buf
	if opts.Stream {
		// Progress goes to stderr so stdout stays clean for automation.
		writer = io.MultiWriter(os.Stderr, &buf)
	}
	cmd.Stdout = writer
	cmd.Stderr = writer

	err := cmd.Run()
	output := buf.String()

	if err != nil {
		summary := zeroize_err.ExtractSummary(rctx, output, 2)
		span.RecordError(err)
		log.Error("Execution failed", zap.Error(err),
			zap.String("command", cmdStr),
			zap.String("summary", summary),
		)
		return output, cerr.Wrapf(err, "%s failed: %s", opts.Command, summary)
	}

	log.Info("Execution succeeded", zap.String("command", cmdStr))

	if opts.Capture {
		return output, nil
	}
	return "", nil
}

// LookPath reports whether an external tool exists on PATH, returning a
// dependency error naming the tool if it does not.
func LookPath(tool, operation string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return zeroize_err.NewDependencyError(tool, operation,
			"Install it with your distribution's package manager")
	}
	return nil
}

func buildCommandString(command string, args ...string) string {
	return command + " " + strings.Join(args, " ")
}
