// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// PromptSelect displays numbered options and returns the selected index
// (0-based). An out-of-range or non-numeric choice is a fatal input error:
// the run aborts rather than re-prompting, so a mistyped menu number can
// never drift toward a destructive default.
func PromptSelect(ctx context.Context, reader *bufio.Reader, prompt string, options []string) (int, error) {
	logger := otelzap.Ctx(ctx)
	logger.Info("📋 Prompting selection", zap.String("prompt", prompt), zap.Int("num_options", len(options)))

	_, _ = fmt.Fprintln(os.Stderr, prompt)
	for i, option := range options {
		_, _ = fmt.Fprintf(os.Stderr, "  %d) %s\n", i+1, option)
	}

	choice, err := ReadLineTrimmed(ctx, reader, EnterChoicePrompt)
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(options) {
		logger.Warn("❌ Invalid selection", zap.String("input", choice))
		return 0, zeroize_err.NewValidationError(
			fmt.Sprintf("invalid choice %q: expected 1-%d", choice, len(options)),
			"Re-run zeroize and pick a listed option")
	}

	logger.Info("✅ User selected option", zap.Int("index", idx), zap.String("value", options[idx-1]))
	return idx - 1, nil
}
