// pkg/zeroize_cli/wrap.go

package zeroize_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_err"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap ensures panic recovery, telemetry, and logging around a command
// handler, converting cobra's RunE signature into a RuntimeContext one.
func Wrap(fn func(rc *zeroize_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := zeroize_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !zeroize_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
