package fs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/core"
)

func TestSerializers(t *testing.T) {
	payload := map[string][]core.Task{
		TasksKey: {
			core.NewTask(1, "Write report", core.WithDeadline("2024-05-01")),
			core.NewTask(2, "Call mom"),
		},
	}

	serializers := DefaultSerializers()

	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			s := serializers[ext]

			data, err := s.Serialize(payload)
			require.NoError(t, err)

			canonical, err := s.Normalize(data)
			require.NoError(t, err)

			var got map[string][]core.Task
			require.NoError(t, json.Unmarshal(canonical, &got))
			assert.Equal(t, payload, got)
		})
	}
}

func TestJSONSerializer_Layout(t *testing.T) {
	data, err := NewJSONSerializer().Serialize(map[string][]core.Note{
		NotesKey: {core.NewNote(7, "Work", "2024-01-02")},
	})
	require.NoError(t, err)

	want := `{
    "Notes": [
        {
            "id": 7,
            "category": "Work",
            "date": "2024-01-02",
            "topic": "Nameless.",
            "note": ""
        }
    ]
}`
	assert.Equal(t, want, string(data))
}

func TestSerializers_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		s     Serializer
		input string
	}{
		{"json truncated", NewJSONSerializer(), `{"Notes": [`},
		{"json empty", NewJSONSerializer(), ``},
		{"yaml unclosed flow", NewYAMLSerializer(), "Notes: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.s.Normalize([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestSerializerFor(t *testing.T) {
	serializers := DefaultSerializers()
	assert.Equal(t, "json", serializerFor("notes.json", serializers).Format())
	assert.Equal(t, "yaml", serializerFor("notes.YAML", serializers).Format())
	assert.Equal(t, "yaml", serializerFor("dir/tasks.yml", serializers).Format())
	assert.Equal(t, "json", serializerFor("notes.db", serializers).Format())
}
