// schema.go validates model responses against predeclared JSON Schemas.
//
// The model is instructed to answer in a strict shape; before the response
// is treated as domain data we check it against the declared schema and
// fail naming the offending field. No reformatting or repair is attempted
// — a malformed response is terminal for that request.
package llm

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateSchema checks doc (a JSON document) against schemaJSON (a JSON
// Schema). The returned error names the first failing field.
func ValidateSchema(schemaJSON, doc string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("response field %q failed schema validation: %s",
			first.Field(), first.Description())
	}

	return nil
}
