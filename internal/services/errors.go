package services

import "errors"

// Error taxonomy shared by the lifecycle services. Handlers translate these
// with errors.Is: ErrInvalidArgument and ErrValidationFailed map to 400,
// ErrNotFound to 404, ErrPersistenceFailed to 500.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrPersistenceFailed = errors.New("persistence failed")
)
