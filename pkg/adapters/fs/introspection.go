package fs

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/almanac/pkg/core"
)

// DocumentState exposes internal state for observability.
type DocumentState struct {
	Path     string `json:"path"`
	Key      string `json:"key"`
	Format   string `json:"format"`
	ReadOnly bool   `json:"read_only"`
	Watching bool   `json:"watching"`
}

// State implements introspection.Introspectable.
func (d *Document[T]) State() any {
	return DocumentState{
		Path:     d.config.Path,
		Key:      d.key,
		Format:   d.serializer.Format(),
		ReadOnly: d.config.ReadOnly,
		Watching: d.watching.Load(),
	}
}

// ComponentType implements introspection.Component.
func (d *Document[T]) ComponentType() string {
	return "document"
}

var _ introspection.Introspectable = (*Document[core.Note])(nil)
var _ introspection.Component = (*Document[core.Task])(nil)
