package nudgeerr

import (
	"errors"
)

func StepError(err error, step string) error {
	if err == nil {
		return nil
	}

	return &stepError{
		err:  err,
		step: step,
	}
}

type stepError struct {
	err  error
	step string
}

func (e *stepError) Error() string {
	if e.err == nil {
		return ""
	}

	if e.step == "" {
		return e.err.Error()
	}

	return e.step + ": " + e.err.Error()
}

func (e *stepError) Unwrap() error {
	return e.err
}

// Step returns the name of the post-processing step
// that produced err, or "" if it was not wrapped by StepError.
func Step(err error) string {
	serr := &stepError{}
	if errors.As(err, &serr) {
		return serr.step
	}

	return ""
}
