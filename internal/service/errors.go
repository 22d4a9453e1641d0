package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrInvalidTitle = fmt.Errorf("%w: title must be a string of at least %d characters", ErrValidation, MinTitleLength)
	ErrInvalidDone  = fmt.Errorf("%w: done must be a boolean", ErrValidation)
	ErrEmptyPatch   = fmt.Errorf("%w: at least one of title or done is required", ErrValidation)
)
