package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is must be used instead of the stdlib errors.Is wherever the chain may
// carry marks: marks attached with Mark are not part of the Unwrap chain,
// so the stdlib cannot see them.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
