package filesystem

import (
	"fmt"

	"emperror.dev/errors"

	"github.com/pterodactyl/pa/internal/ufs"
)

type ErrorCode string

const (
	ErrCodeExist           ErrorCode = "E_EXIST"
	ErrCodeNotDirectory    ErrorCode = "E_NOTDIR"
	ErrCodeIsDirectory     ErrorCode = "E_ISDIR"
	ErrCodeUnsupportedType ErrorCode = "E_BADTYPE"
	ErrCodeSameFile        ErrorCode = "E_SAMEFILE"
)

// Error is a filesystem error with a code describing which policy of an
// operation was violated and the path it happened on.
type Error struct {
	code ErrorCode
	// The path the error occurred on.
	path string
	err  error
}

// newFilesystemError returns a new error instance with a stack trace attached.
func newFilesystemError(code ErrorCode, path string, err error) error {
	return errors.WithStackDepth(&Error{code: code, path: path, err: err}, 1)
}

// NewError returns an error with the given code for a path, for callers
// enforcing the same policies outside of this package.
func NewError(code ErrorCode, path string) error {
	return errors.WithStackDepth(&Error{code: code, path: path}, 1)
}

// Code returns the ErrorCode for this specific error instance.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Path returns the path the error was raised for.
func (e *Error) Path() string {
	return e.path
}

// Error returns a human-readable error string to identify the Error by.
func (e *Error) Error() string {
	var msg string
	switch e.code {
	case ErrCodeExist:
		msg = "file exists"
	case ErrCodeNotDirectory:
		msg = "not a directory"
	case ErrCodeIsDirectory:
		msg = "is a directory"
	case ErrCodeUnsupportedType:
		msg = "unsupported file type"
	case ErrCodeSameFile:
		msg = "source and destination are the same file"
	default:
		msg = string(e.code)
	}
	if e.path != "" {
		msg = fmt.Sprintf("%s: %s", e.path, msg)
	}
	if e.err != nil {
		msg = msg + ": " + e.err.Error()
	}
	return "filesystem: " + msg
}

// Unwrap returns the underlying cause of the error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is allows these errors to be matched against the sentinel values from the
// ufs package, so errors.Is(err, fs.ErrExist) holds for ErrCodeExist.
func (e *Error) Is(target error) bool {
	switch e.code {
	case ErrCodeExist:
		return target == ufs.ErrExist
	case ErrCodeNotDirectory:
		return target == ufs.ErrNotDirectory
	case ErrCodeIsDirectory:
		return target == ufs.ErrIsDirectory
	}
	return false
}

// IsErrorCode checks if "err" is a filesystem Error type. If so, it will then
// drop in and check that the error code is the same as the provided ErrorCode
// passed in "code".
func IsErrorCode(err error, code ErrorCode) bool {
	var fserr *Error
	if errors.As(err, &fserr) {
		return fserr.code == code
	}
	return false
}
