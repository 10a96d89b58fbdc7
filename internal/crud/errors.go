package crud

import (
	"errors"
	"fmt"
)

// ServiceError wraps a failure of the service/persistence layer.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// PresentationError wraps a failure to load what a view or form needs to render.
type PresentationError struct {
	Op  string
	Err error
}

func (e *PresentationError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PresentationError) Unwrap() error { return e.Err }

var (
	ErrDialogOpen     = errors.New("a dialog is already open")
	ErrDialogClosed   = errors.New("dialog is closed")
	ErrPendingConfirm = errors.New("a delete confirmation is already pending")
	ErrNothingPending = errors.New("no delete confirmation is pending")
)

func serviceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	return &ServiceError{Op: op, Err: err}
}

// Alert is what a view shows for a failed action.
type Alert struct {
	Title   string
	Header  string
	Message string
}

// AlertFor maps an action error to a user-facing alert.
func AlertFor(err error) Alert {
	var se *ServiceError
	var pe *PresentationError
	switch {
	case err == nil:
		return Alert{}
	case errors.As(err, &pe):
		return Alert{Title: "Presentation error", Header: "Could not open " + orDefault(pe.Op, "view"), Message: pe.Err.Error()}
	case errors.As(err, &se):
		return Alert{Title: "Service error", Header: "Could not " + orDefault(se.Op, "complete the action"), Message: se.Err.Error()}
	default:
		return Alert{Title: "Error", Header: "Action failed", Message: err.Error()}
	}
}

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}
