package tiercache

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLoader is returned by New when no backing-store loader is provided.
	ErrNilLoader = errors.New("loader must not be nil")
)

// ErrInvalidPolicy indicates an eviction policy outside {LRU, LFU}.
type ErrInvalidPolicy struct {
	Name string
}

func (e *ErrInvalidPolicy) Error() string {
	return fmt.Sprintf("invalid policy: %q (want LRU or LFU)", e.Name)
}

// ErrInvalidCapacity indicates a non-positive level capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d (must be positive)", e.Capacity)
}

// ErrIndexOutOfRange indicates a level index outside the current chain.
type ErrIndexOutOfRange struct {
	Index  int
	Levels int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("level index out of range: %d (chain has %d levels)", e.Index, e.Levels)
}
