package types

import "errors"

// Dispatcher errors. Both are recovered by the session loop.
var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrInvalidDataType = errors.New("invalid data type")
)
