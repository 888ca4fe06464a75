// pkg/interaction/confirm.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ConfirmExact presents a prompt and requires the operator to type the given
// literal exactly (case- and whitespace-sensitive). Any mismatch fails the
// run immediately; there is no retry. Distinct literals are used at distinct
// checkpoints so no single keystroke pattern can satisfy more than one gate.
func ConfirmExact(ctx context.Context, reader *bufio.Reader, prompt, literal string) error {
	logger := otelzap.Ctx(ctx)

	_, _ = fmt.Fprintln(os.Stderr, prompt)
	input, err := ReadLine(ctx, reader, fmt.Sprintf("Type %q to continue", literal))
	if err != nil {
		return cerr.Wrap(err, "reading confirmation")
	}

	if input != literal {
		logger.Warn("Confirmation literal mismatch",
			zap.String("expected", literal),
			zap.Int("input_length", len(input)))
		return zeroize_err.NewExpectedError(ctx,
			cerr.Wrapf(zeroize_err.ErrConfirmationFailed, "expected %q", literal))
	}

	logger.Info("✅ Confirmation accepted", zap.String("literal", literal))
	return nil
}

// ConfirmYesNo asks a yes/no question and fails the run unless the operator
// answers affirmatively. Unlike a defaulting prompt, anything other than
// "y"/"yes" (case-insensitive) is a decline: destructive checkpoints never
// guess.
func ConfirmYesNo(ctx context.Context, reader *bufio.Reader, prompt string) error {
	logger := otelzap.Ctx(ctx)

	input, err := ReadLineTrimmed(ctx, reader, prompt+" [y/N]")
	if err != nil {
		return cerr.Wrap(err, "reading confirmation")
	}

	if answer, ok := NormalizeYesNoInput(input); ok && answer {
		logger.Info("✅ Operator confirmed", zap.String("prompt", prompt))
		return nil
	}

	logger.Info("Operator declined", zap.String("prompt", prompt))
	return zeroize_err.NewExpectedError(ctx,
		cerr.Wrapf(zeroize_err.ErrDeclined, "%s", prompt))
}

// NormalizeYesNoInput returns (answer, recognized) for y/yes/n/no input.
func NormalizeYesNoInput(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case YesShort, YesLong:
		return true, true
	case NoShort, NoLong:
		return false, true
	}
	return false, false
}
