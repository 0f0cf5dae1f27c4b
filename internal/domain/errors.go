package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnknownTool        = errors.New("unknown tool code")
	ErrNegativeChargeDays = errors.New("excluded days exceed rental days")
)

// ValidationError reports a rental request that violates an input constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownToolError reports a tool code that is not in the catalog.
type UnknownToolError struct {
	Code string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool code %q", e.Code)
}

func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}
