package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNoSession         = errors.New("no active session")
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrUnknownAction     = errors.New("unknown content action")
	ErrUnknownPlan       = errors.New("unknown plan")
	ErrAlreadyConnecting = errors.New("connection already in progress")
	ErrItemBusy          = errors.New("content item has an operation in flight")
	ErrItemNotFound      = errors.New("content item not found")
	ErrEmptyResponse     = errors.New("empty response body")
	ErrItemMismatch      = errors.New("server returned a different content item")
)

// ServiceError is a non-2xx answer from the backend other than 401.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// Reason extracts the human readable cause of a failure, preferring the
// backend's own message.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}

type FetchFailedError struct {
	Err error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("failed to load calendar: %s", Reason(e.Err))
}

func (e *FetchFailedError) Unwrap() error { return e.Err }

type GenerateFailedError struct {
	Reason string
	Err    error
}

func (e *GenerateFailedError) Error() string {
	return fmt.Sprintf("failed to generate calendar: %s", e.Reason)
}

func (e *GenerateFailedError) Unwrap() error { return e.Err }

type ActionFailedError struct {
	Action ContentAction
	ItemID int64
	Reason string
	Err    error
}

func (e *ActionFailedError) Error() string {
	return fmt.Sprintf("%s failed for item %d: %s", e.Action, e.ItemID, e.Reason)
}

func (e *ActionFailedError) Unwrap() error { return e.Err }

type SaveFailedError struct {
	ItemID int64
	Reason string
	Err    error
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("failed to save item %d: %s", e.ItemID, e.Reason)
}

func (e *SaveFailedError) Unwrap() error { return e.Err }

// ValidationError rejects input before any backend call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Missing field: %s", e.Field)
}
