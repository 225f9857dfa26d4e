package spec

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate checks a rendered specification against OpenAPI 3.0 using
// kin-openapi. Validation is advisory: callers log the verdict rather than
// failing the run.
func Validate(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("failed to load generated specification: %v", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("generated specification is not valid: %v", err)
	}

	return nil
}
