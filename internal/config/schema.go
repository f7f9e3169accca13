package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema for the configuration as pretty
// JSON, for editor completion on config.toml.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tabdrag/config.schema.json"
	schema.Title = "Tabdrag Configuration"
	schema.Description = "Configuration schema for tabdrag, the tab drag-and-drop reordering engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
