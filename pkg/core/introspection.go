package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes internal state for observability.
type CollectionState struct {
	Kind           string `json:"kind"`
	Entries        int    `json:"entries"`
	RepositoryType string `json:"repository_type"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Collection[T]) State() any {
	repoType := "unknown"
	var repoState any
	if c.repo != nil {
		repoType = "repository"
		if comp, ok := c.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if in, ok := c.repo.(introspection.Introspectable); ok {
			repoState = in.State()
		}
	}

	return CollectionState{
		Kind:           c.kind,
		Entries:        len(c.items),
		RepositoryType: repoType,
		Repository:     repoState,
	}
}

// ComponentType implements introspection.Component.
func (c *Collection[T]) ComponentType() string {
	return c.kind + "-collection"
}

var _ introspection.Introspectable = (*NoteManager)(nil)
var _ introspection.Component = (*TaskManager)(nil)
