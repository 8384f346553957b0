package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the contract the backend's /api/quizzes payload must meet
// before normalization. "questions" is deliberately untyped and not required
// per set: broken sets ship it absent or as a non-array value, and the loader
// treats those as empty. "items" only constrains it when it is an array.
const catalogSchema = `{
	"type": "object",
	"required": ["sets"],
	"properties": {
		"sets": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["setNumber"],
				"properties": {
					"setNumber": {"type": "integer", "minimum": 1},
					"questions": {
						"items": {
							"type": "object",
							"required": ["title", "choice", "choiceAnswer"],
							"properties": {
								"title": {"type": "string"},
								"choice": {"type": "array", "items": {"type": "string"}},
								"choiceAnswer": {"type": "integer"},
								"image": {"type": "string"},
								"explanation": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateCatalog checks raw against the catalog schema.
func validateCatalog(raw []byte) error {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://catalog.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
