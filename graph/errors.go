package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRouting marks a cable whose endpoints are malformed or
	// reference an unknown object id.
	ErrInvalidRouting = errors.New("invalid routing configuration")

	// ErrCircularDependency is reserved for cycle detection; Build never
	// returns it.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrUnsupportedSpatial marks a spatial configuration that cannot be
	// classified.
	ErrUnsupportedSpatial = errors.New("unsupported spatial configuration")
)

// RoutingError reports which cable failed and why, wrapping
// ErrInvalidRouting.
type RoutingError struct {
	Cable  int
	Detail string
}

// Error formats the routing failure with its cable index.
func (e *RoutingError) Error() string {
	return fmt.Sprintf("cable %d: %s: %s", e.Cable, ErrInvalidRouting, e.Detail)
}

// Unwrap lets errors.Is match ErrInvalidRouting.
func (e *RoutingError) Unwrap() error {
	return ErrInvalidRouting
}
