package openbump

import (
	"errors"

	"github.com/hashicorp/errwrap"
)

var (
	ErrTruncated      = errors.New("image is too short to hold a boot header")
	ErrZeroPageSize   = errors.New("page size is zero")
	ErrInvalidImage   = errors.New("calculated size greater than actual size")
	ErrAlreadyPatched = errors.New("Image already patched. Bailing out")
)

// eMsg wraps err with a description of the step that failed.
func eMsg(err error, msg string) error {
	return errwrap.Wrap(errors.New(msg), err)
}

// GetErrors returns the wrapped errors from one error.
func GetErrors(err error) []string {
	if err == nil {
		return []string{}
	}

	if wrapper, ok := err.(errwrap.Wrapper); ok {
		wrapped := wrapper.WrappedErrors()
		if len(wrapped) == 2 {
			return []string{wrapped[0].Error(), wrapped[1].Error()}
		}
	}

	return []string{err.Error()}
}
