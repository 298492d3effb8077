// Package errors provides custom errors for the searcher and reconciler services.
package errors

import (
	"fmt"
)

type (
	// UpstreamUnavailableError is returned when the search API answers with a non-success
	// status or cannot be reached. Callers may retry.
	UpstreamUnavailableError struct {
		Status  int
		Details string
		Err     error
	}
	// UpstreamMalformedError is returned when the search API body cannot be decoded or is empty.
	UpstreamMalformedError struct {
		Err error
	}
	// AuthenticationRequiredError is returned by write operations called without a user.
	AuthenticationRequiredError struct {
		Op string
	}
	// PersistenceError wraps a storage failure during a write or read.
	PersistenceError struct {
		Op  string
		Err error
	}
	// NotFoundError is returned when neither the store nor the search API has the shop,
	// or when a memo to delete does not exist.
	NotFoundError struct {
		ID string
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilSearcher struct {
		Msg string
	}
	ServiceIncorrectInput struct {
		Msg string
	}
)

func (e *UpstreamUnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("search API unavailable: status %d", e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("search API unavailable: %s", e.Err.Error())
	}
	return "search API unavailable"
}

func (e *UpstreamMalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search API returned a malformed body: %s", e.Err.Error())
	}
	return "search API returned an empty body"
}

func (e *AuthenticationRequiredError) Error() string {
	return fmt.Sprintf("%s: authentication required", e.Op)
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.ID)
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilSearcher) Error() string {
	return e.Msg
}

func (e *ServiceIncorrectInput) Error() string {
	return e.Msg
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

func (e *UpstreamMalformedError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
