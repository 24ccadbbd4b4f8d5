package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrFrozen            = errors.New("ant has reached the boundary")
	ErrInvalidStepBudget = errors.New("steps per frame must be positive")
)

// WrapCellError annotates err with the cell it concerns.
func WrapCellError(x, y int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cell (%d,%d): %w", x, y, err)
}

// WrapDimensionError annotates err with the requested grid size.
func WrapDimensionError(w, h int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("grid %dx%d: %w", w, h, err)
}

// SimulationError records which step and operation failed.
type SimulationError struct {
	Step      int
	Operation string
	Err       error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d: %s: %v", e.Step, e.Operation, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a SimulationError
func NewSimulationError(step int, operation string, err error) *SimulationError {
	return &SimulationError{Step: step, Operation: operation, Err: err}
}
