package hero

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("hero not found")
	ErrInvalidName = errors.New("hero name must not be empty")
	ErrInvalidID   = errors.New("invalid hero id")
)
