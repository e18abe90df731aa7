// internal/registry/load.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// registrySchema validates user-supplied registry files before they are
// trusted: every entry needs domain names, a phenotype key, a data source,
// and a section number, and age groups are limited to the two batteries.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["domains", "pheno", "dataSource", "section"],
    "properties": {
      "domains": {
        "type": "array",
        "minItems": 1,
        "items": { "type": "string", "minLength": 1 }
      },
      "pheno": { "type": "string", "minLength": 1 },
      "dataSource": { "type": "string", "minLength": 1 },
      "section": { "type": "integer", "minimum": 1 },
      "scoreTypes": {
        "type": "array",
        "items": {
          "type": "string",
          "enum": ["standard_score", "scaled_score", "t_score", "z_score", "percentile"]
        }
      },
      "multiRater": { "type": "boolean" },
      "ageVariants": {
        "type": "array",
        "items": { "type": "string", "enum": ["adult", "child"] }
      },
      "raters": {
        "type": "array",
        "items": { "type": "string", "minLength": 1 }
      },
      "ratersByAge": {
        "type": "object",
        "additionalProperties": {
          "type": "array",
          "items": { "type": "string", "minLength": 1 }
        },
        "propertyNames": { "enum": ["adult", "child"] }
      }
    },
    "additionalProperties": false
  }
}`

// ValidateJSON checks raw registry JSON against the embedded schema and
// returns one error per violation, already joined into a readable message.
func ValidateJSON(data []byte) error {
	schema := gojsonschema.NewStringLoader(registrySchema)
	document := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("could not validate registry: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msg := "registry file is invalid:"
	for _, desc := range result.Errors() {
		msg += fmt.Sprintf("\n  - %s", desc)
	}
	return &ValidationError{Msg: msg}
}

// LoadFile reads, schema-validates, and decodes a registry JSON file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read registry file %q: %w", path, err)
	}
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not parse registry file %q: %w", path, err)
	}
	return entries, nil
}
