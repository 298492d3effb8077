// Package errors provides custom errors for types implementing the ShopStorage interface.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		Key string
		Err error
	}
	ConstraintError struct {
		Code       string
		Constraint string
		Err        error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	ExecutionPSQLError struct {
		Err error
	}
	ScanningPSQLError struct {
		Err error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in storage", e.Key)
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %s violated (%s)", e.Constraint, e.Code)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *ExecutionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not query", e.Err.Error())
}

func (e *ScanningPSQLError) Error() string {
	return fmt.Sprintf("%s: could not scan rows", e.Err.Error())
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

func (e *ExecutionPSQLError) Unwrap() error {
	return e.Err
}

func (e *ScanningPSQLError) Unwrap() error {
	return e.Err
}
