package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrInstallFailed = errors.New("failed to install")
	ErrRemoveFailed  = errors.New("failed to remove")
	ErrStartFailed   = errors.New("failed to start")
	ErrStopFailed    = errors.New("failed to stop")
)

// OpError is returned when the service manager rejects a request.
// errors.Is matches both Kind and the manager's own error.
type OpError struct {
	Kind    error
	Service string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s service %q: %v", e.Kind, e.Service, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
