package filesystem

import (
	"os"
	"time"

	"emperror.dev/errors"
	"github.com/cenkalti/backoff/v4"

	"github.com/pterodactyl/pa/internal/ufs"
)

// The number of times opening a busy executable is retried.
const openRetries = 3

// openDestination opens a file for writing, creating or truncating it. If the
// file cannot be opened because it is being executed ("text file busy") the
// open is retried with an increasing delay before giving up.
//
// Based on code from: https://github.com/golang/go/issues/22220#issuecomment-336458122
func openDestination(path string) (*os.File, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0
	b.Multiplier = 2

	f, err := backoff.RetryWithData(func() (*os.File, error) {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil && !ufs.IsTextBusy(err) {
			return nil, backoff.Permanent(err)
		}
		return f, err
	}, backoff.WithMaxRetries(b, openRetries))
	if err != nil {
		return nil, errors.Wrap(ufs.ConvertErrorType(err), "filesystem: copy: failed to open destination")
	}
	return f, nil
}
