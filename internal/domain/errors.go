package domain

import "errors"

// ErrValidation is the sentinel wrapped by every field validation failure.
// The HTTP boundary maps it to a 400 response.
var ErrValidation = errors.New("validation failed")
