package spec

import (
	"har-to-openapi/internal/schema"
)

// Merge overlays a freshly generated document onto an existing one,
// keeping the existing document as the base. Paths are merged per method,
// component schemas and security schemes by keyed overwrite. There is no
// conflict detection: a fresh entry always replaces an existing one with
// the same key.
func Merge(existing, fresh *Document) *Document {
	merged := existing

	if merged.Paths == nil {
		merged.Paths = make(map[string]PathItem)
	}
	for path, methods := range fresh.Paths {
		item, ok := merged.Paths[path]
		if !ok {
			item = make(PathItem)
			merged.Paths[path] = item
		}
		for method, op := range methods {
			item[method] = op
		}
	}

	if merged.Components.Schemas == nil {
		merged.Components.Schemas = make(map[string]*schema.Schema)
	}
	for name, s := range fresh.Components.Schemas {
		merged.Components.Schemas[name] = s
	}

	if merged.Components.SecuritySchemes == nil {
		merged.Components.SecuritySchemes = make(map[string]SecurityScheme)
	}
	for name, scheme := range fresh.Components.SecuritySchemes {
		merged.Components.SecuritySchemes[name] = scheme
	}

	return merged
}
