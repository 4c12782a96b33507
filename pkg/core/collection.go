package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Collection is the in-memory owner of an ordered entity sequence.
// Every mutation is followed by a full save of the sequence, and the
// in-memory sequence only changes once that save succeeded.
type Collection[T Entity] struct {
	kind   string
	items  []T
	repo   Repository[T]
	logger *slog.Logger
}

// NewCollection creates an empty collection backed by repo.
// A nil logger discards all output.
func NewCollection[T Entity](kind string, repo Repository[T], logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collection[T]{
		kind:   kind,
		items:  []T{},
		repo:   repo,
		logger: logger.With("collection", kind),
	}
}

// Add appends e after checking id uniqueness and validating it.
// The sequence is left untouched on any failure.
func (c *Collection[T]) Add(ctx context.Context, e T) error {
	if c.index(e.EntityID()) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, e.EntityID())
	}
	if err := e.Validate(); err != nil {
		return err
	}

	next := append(slices.Clone(c.items), e)
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.logger.Debug("entry added", "id", e.EntityID())
	return nil
}

// DeleteByID removes the entry with the given id.
func (c *Collection[T]) DeleteByID(ctx context.Context, id int) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: no %s entry with id %d", ErrNotFound, c.kind, id)
	}

	if err := c.commit(ctx, slices.Delete(slices.Clone(c.items), i, i+1)); err != nil {
		return err
	}
	c.logger.Debug("entry deleted", "id", id)
	return nil
}

// DeleteMatching removes the first entry equal to e in every field.
func (c *Collection[T]) DeleteMatching(ctx context.Context, e T) error {
	i := slices.Index(c.items, e)
	if i < 0 {
		return fmt.Errorf("%w: %s not found", ErrNotFound, c.kind)
	}

	if err := c.commit(ctx, slices.Delete(slices.Clone(c.items), i, i+1)); err != nil {
		return err
	}
	c.logger.Debug("entry deleted", "id", e.EntityID())
	return nil
}

// Get returns a copy of the entry with the given id.
func (c *Collection[T]) Get(id int) (T, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: no %s entry with id %d", ErrNotFound, c.kind, id)
	}
	return c.items[i], nil
}

// Update applies fn to the entry with the given id and saves when fn
// reports a change. The updated entry is returned.
func (c *Collection[T]) Update(ctx context.Context, id int, fn func(*T) bool) (T, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: no %s entry with id %d", ErrNotFound, c.kind, id)
	}

	next := slices.Clone(c.items)
	if !fn(&next[i]) {
		return c.items[i], nil
	}
	if err := c.commit(ctx, next); err != nil {
		return c.items[i], err
	}
	c.logger.Debug("entry updated", "id", id)
	return next[i], nil
}

// Filter returns the entries accepted by match, in insertion order.
// An empty result is not an error.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	var out []T
	for _, e := range c.items {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// SearchByAttribute returns every entry whose allow-listed field equals value.
func (c *Collection[T]) SearchByAttribute(fields map[string]Field[T], name, value string) ([]T, error) {
	get, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (allowed: %v)", ErrUnknownField, name, FieldNames(fields))
	}

	found := c.Filter(func(e T) bool { return get(e) == value })
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no entries found for %s = %s", ErrNotFound, name, value)
	}
	return found, nil
}

// List returns a copy of the sequence in insertion order.
// An empty collection yields an empty slice.
func (c *Collection[T]) List() []T {
	return slices.Clone(c.items)
}

// Len returns the number of held entries.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Save overwrites the document with the current sequence.
func (c *Collection[T]) Save(ctx context.Context) error {
	return c.commit(ctx, c.items)
}

func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	if err := c.repo.Save(ctx, next); err != nil {
		return err
	}
	c.items = next
	c.logger.Debug("collection saved", "entries", len(next))
	return nil
}

// Load replaces the sequence with the persisted one. On failure the current
// sequence is kept. Loaded entries are trusted and not re-validated.
func (c *Collection[T]) Load(ctx context.Context) error {
	items, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.logger.Debug("collection loaded", "entries", len(items))
	return nil
}

// Watch forwards change events of the backing document if supported.
func (c *Collection[T]) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := c.repo.(Watchable)
	if !ok {
		return nil, fmt.Errorf("%s repository does not support watching", c.kind)
	}
	return w.Watch(ctx)
}

func (c *Collection[T]) index(id int) int {
	return slices.IndexFunc(c.items, func(e T) bool { return e.EntityID() == id })
}
