package interaction

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestConfirmExact(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		literal string
		input   string
		wantErr bool
	}{
		{name: "exact_match", literal: "DESTROY ALL DATA", input: "DESTROY ALL DATA\n"},
		{name: "wrong_case", literal: "DESTROY ALL DATA", input: "destroy all data\n", wantErr: true},
		{name: "trailing_space", literal: "DESTROY ALL DATA", input: "DESTROY ALL DATA \n", wantErr: true},
		{name: "leading_space", literal: "DESTROY ALL DATA", input: " DESTROY ALL DATA\n", wantErr: true},
		{name: "partial", literal: "DESTROY ALL DATA", input: "DESTROY\n", wantErr: true},
		{name: "empty", literal: "DESTROY ALL DATA", input: "\n", wantErr: true},
		{name: "crlf_terminal", literal: "ERASE NVME", input: "ERASE NVME\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ConfirmExact(context.Background(), reader(tt.input), "about to erase", tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, zeroize_err.ErrConfirmationFailed)
				assert.True(t, zeroize_err.IsExpectedUserError(err),
					"confirmation mismatch should be an expected user error")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfirmExact_EOF(t *testing.T) {
	t.Parallel()
	err := ConfirmExact(context.Background(), reader(""), "about to erase", "YES")
	require.Error(t, err)
	assert.False(t, zeroize_err.IsExpectedUserError(err),
		"an input read failure is not an operator decline")
}

func TestConfirmYesNo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "yes", input: "yes\n"},
		{name: "y", input: "y\n"},
		{name: "uppercase_yes", input: "YES\n"},
		{name: "no", input: "no\n", wantErr: true},
		{name: "n", input: "n\n", wantErr: true},
		{name: "empty_declines", input: "\n", wantErr: true},
		{name: "garbage_declines", input: "sure\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ConfirmYesNo(context.Background(), reader(tt.input), "Final confirm")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, zeroize_err.ErrDeclined)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPromptSelect(t *testing.T) {
	t.Parallel()
	options := []string{"one", "two", "three"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "first", input: "1\n", want: 0},
		{name: "last", input: "3\n", want: 2},
		{name: "zero_is_invalid", input: "0\n", wantErr: true},
		{name: "out_of_range", input: "4\n", wantErr: true},
		{name: "not_a_number", input: "two\n", wantErr: true},
		{name: "empty", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PromptSelect(context.Background(), reader(tt.input), "pick", options)
			if tt.wantErr {
				require.Error(t, err)
				var classified *zeroize_err.ClassifiedError
				require.ErrorAs(t, err, &classified)
				assert.Equal(t, zeroize_err.CategoryValidation, classified.Category)
				assert.Equal(t, 2, classified.ExitCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
