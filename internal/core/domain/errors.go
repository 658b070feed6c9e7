package domain

import "errors"

// BusinessError is a rule violation reported to the caller as a 400 with the
// standard {message, status:false} envelope. Anything else surfaces as a 500.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func BusinessErrorf(message string) error {
	return &BusinessError{Message: message}
}

// IsBusinessError reports whether err (or anything it wraps) is a rule
// violation rather than an infrastructure failure.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
