package heap

import "errors"

// ErrEmpty is returned when attempting to read or remove the root element of a heap which contains no elements.
var ErrEmpty = errors.New("heap is empty")
