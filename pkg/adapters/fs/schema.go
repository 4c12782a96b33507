package fs

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// NoteSchema describes the note document: {"Notes": [{id, category, date, topic, note}]}.
const NoteSchema = `{
  "type": "object",
  "required": ["Notes"],
  "properties": {
    "Notes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "category", "date", "topic", "note"],
        "properties": {
          "id": {"type": "integer"},
          "category": {"type": "string"},
          "date": {"type": "string"},
          "topic": {"type": "string"},
          "note": {"type": "string"}
        }
      }
    }
  }
}`

// TaskSchema describes the task document: {"tasks": [{id, task, description, deadline, status}]}.
const TaskSchema = `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "task", "description", "deadline", "status"],
        "properties": {
          "id": {"type": "integer"},
          "task": {"type": "string"},
          "description": {"type": "string"},
          "deadline": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    }
  }
}`

func compileSchema(schema string) (*gojsonschema.Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("invalid schema definition: %w", err)
	}
	return compiled, nil
}

// checkStructure validates canonical JSON against schema and returns a
// readable list of violations, or nil when the document conforms.
func checkStructure(schema *gojsonschema.Schema, canonical []byte) ([]string, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(canonical))
	if err != nil {
		return nil, fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}

func summarize(violations []string) string {
	const limit = 3
	if len(violations) <= limit {
		return strings.Join(violations, "; ")
	}
	return fmt.Sprintf("%s; ... and %d more", strings.Join(violations[:limit], "; "), len(violations)-limit)
}
