package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrStepOutOfRange = errors.New("step is out of history range")
)
