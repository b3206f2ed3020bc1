package utils

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidStatus   = errors.New("invalid application status")
)
