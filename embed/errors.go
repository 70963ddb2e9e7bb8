package embed

import "errors"

var (
	// ErrEncoderRequired is returned when an encoder is not provided.
	ErrEncoderRequired = errors.New("encoder required")
)
