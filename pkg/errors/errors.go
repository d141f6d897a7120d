package errors

import "errors"

// ErrDuplicate a unique index rejected the write
var ErrDuplicate = errors.New("record violates a unique constraint")

// ErrConstraint a foreign key or check constraint rejected the write
var ErrConstraint = errors.New("record violates a store constraint")
