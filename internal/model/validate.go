package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchema []byte

var cvSchemaLoader = gojsonschema.NewBytesLoader(cvSchema)

// ValidationError lists every schema violation found in a CV document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

// ValidateCV validates a raw JSON CV document against cv.schema.json.
// The schema checks shapes and types only; absent sections are allowed.
func ValidateCV(raw []byte) error {
	res, err := gojsonschema.Validate(cvSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate cv: %w", err)
	}
	if res.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, e := range res.Errors() {
		ve.Problems = append(ve.Problems, e.String())
	}
	return ve
}
