package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrValidation   = errors.New("invalid entry")
	ErrDuplicateID  = errors.New("this id already exists")
	ErrNotFound     = errors.New("no matching entry")
	ErrUnknownField = errors.New("unknown field")
	ErrMissingField = errors.New("missing field")
	ErrReadOnly     = errors.New("document is in read-only mode")
)

// Persistence errors. Every document failure wraps ErrPersistence, and the
// three load causes stay distinguishable through errors.Is.
var (
	ErrPersistence       = errors.New("persistence failure")
	ErrDocumentNotFound  = fmt.Errorf("%w: no saved file found", ErrPersistence)
	ErrDocumentCorrupted = fmt.Errorf("%w: document is corrupted", ErrPersistence)
	ErrDocumentStructure = fmt.Errorf("%w: document structure missing", ErrPersistence)
)

// ReasonSeparator joins the individual failures of a ValidationError.
const ReasonSeparator = " | "

// ValidationError collects every failed field check of a single entry.
type ValidationError struct {
	Kind    string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s entry: %s", e.Kind, strings.Join(e.Reasons, ReasonSeparator))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// runValidators executes all validators in order and never stops early.
func runValidators(kind string, validators ...func() string) error {
	var reasons []string
	for _, v := range validators {
		if reason := v(); reason != "" {
			reasons = append(reasons, reason)
		}
	}
	if len(reasons) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Reasons: reasons}
}
