package param

import "errors"

var (
	// ErrControlNotFound is returned when a referenced DOM element is absent.
	ErrControlNotFound = errors.New("control not found")
	// ErrUnknownControl is returned for a control name missing from the config.
	ErrUnknownControl = errors.New("unknown control")
	// ErrHostUnavailable is returned when the host setter is not installed.
	ErrHostUnavailable = errors.New("host function unavailable")
	// ErrInvalidConfig wraps config validation failures.
	ErrInvalidConfig = errors.New("invalid panel config")
	// ErrInvalidUpdate wraps undecodable host parameter notifications.
	ErrInvalidUpdate = errors.New("invalid parameter update")
)
