// Package core holds the note and task domain: entities, validation rules,
// the error taxonomy and the in-memory collection managers.
package core

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Entity is a validated record held by a Collection.
type Entity interface {
	comparable
	EntityID() int
	Validate() error
	Record() Record
}

// Record is the flat key-value form of an entity.
type Record map[string]any

// Field maps an allowed search field to its canonical string value.
type Field[T any] func(T) string

// EventType represents the type of change seen on a document.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a persisted document.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// validateID accepts any integer id, negative values included. It keeps the
// first slot so reasons stay in id, name, date order.
func validateID(int) string {
	return ""
}

func validateNonEmpty(name, value string) string {
	if strings.TrimSpace(value) == "" {
		return name + " must be a non-empty string."
	}
	return ""
}

func validateDate(value string) string {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "Date must be in YYYY-MM-DD format."
	}
	return ""
}

func stringField(r Record, key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", key, v)
	}
	return s, nil
}

func intField(r Record, key string) (int, error) {
	v, ok := r[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("field %s: %v is not an integer", key, n)
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", key, err)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("field %s: %v is not an integer", key, n)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("field %s: expected integer, got %T", key, v)
	}
}
