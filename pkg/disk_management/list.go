// pkg/disk_management/list.go

package disk_management

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/zeroize/pkg/zeroize_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// ShowListing prints the host's block devices to stderr so the operator can
// pick a target. Display only: nothing here is parsed or acted on.
func ShowListing(rc *zeroize_io.RuntimeContext, runner execute.RunnerFunc) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Listing block devices")

	out, err := runner(rc.Ctx, execute.Options{
		Command: "lsblk",
		Args:    []string{"-o", "NAME,SIZE,TYPE,MOUNTPOINT,MODEL"},
		Capture: true,
	})
	if err != nil {
		return cerr.Wrap(err, "lsblk listing failed")
	}

	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = fmt.Fprint(os.Stderr, out)
	_, _ = fmt.Fprintln(os.Stderr)
	return nil
}
