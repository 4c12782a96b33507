package core_test

import (
	"context"
	"errors"
	"slices"
)

// MockRepository implements core.Repository in memory.
// It stores a private copy of every saved sequence.
type MockRepository[T any] struct {
	saved   []T
	saves   int
	loadErr error
	saveErr error
}

func NewMockRepository[T any](initial ...T) *MockRepository[T] {
	return &MockRepository[T]{saved: slices.Clone(initial)}
}

func (m *MockRepository[T]) Load(ctx context.Context) ([]T, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.saved == nil {
		return nil, errors.New("not found")
	}
	return slices.Clone(m.saved), nil
}

func (m *MockRepository[T]) Save(ctx context.Context, items []T) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = slices.Clone(items)
	if m.saved == nil {
		m.saved = []T{}
	}
	return nil
}
