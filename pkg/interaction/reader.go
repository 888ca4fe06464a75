// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts the user with a label and returns the entered line with
// only the trailing newline removed. Interior and leading whitespace is
// preserved: confirmation literals are whitespace-sensitive, so trimming
// here would weaken the gate.
func ReadLine(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("📝 Prompting user for input", zap.String("label", label))

	// Prompts go to stderr to preserve stdout for automation.
	_, _ = fmt.Fprint(os.Stderr, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil {
		logger.Error("❌ Failed to read user input", zap.Error(err))
		return "", err
	}

	value := strings.TrimRight(text, "\r\n")
	logger.Debug("📥 User input received", zap.Int("length", len(value)))
	return value, nil
}

// ReadLineTrimmed is ReadLine with surrounding whitespace removed, for
// free-form input such as device paths.
func ReadLineTrimmed(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	value, err := ReadLine(ctx, reader, label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
