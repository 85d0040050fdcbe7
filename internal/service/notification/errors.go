package notification

import "errors"

var (
	ErrNotFound           = errors.New("notification not found")
	ErrInvalidRequest     = errors.New("invalid notification request")
	ErrInvalidView        = errors.New("unknown notification view")
	ErrInvalidPage        = errors.New("invalid page")
	ErrSoftDeleteDisabled = errors.New("soft delete is disabled")
)
