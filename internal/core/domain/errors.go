package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrUpstream         = errors.New("product source unavailable")
)
