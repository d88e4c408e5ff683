package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDuration   = errors.New("duration must be greater than zero")
	ErrInvalidWindow     = errors.New("night window hours must satisfy 0 <= start < end <= 24")
	ErrSessionNotRunning = errors.New("no session is running")
	ErrEnforcerUnready   = errors.New("enforcer helper is not reachable")
)
