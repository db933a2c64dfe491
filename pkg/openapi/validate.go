package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate loads rendered spec bytes with kin-openapi, resolving internal
// references, and checks the document against the OpenAPI 3 rules.
func Validate(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid spec: %w", err)
	}
	return nil
}
