package tensor

import "github.com/pkg/errors"

// Structural error categories. Operations panic with errors wrapping these;
// constructors fed with caller data return them.
var (
	ErrInvalidShape    = errors.New("invalid shape")
	ErrInvalidAxis     = errors.New("invalid axis")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
)
