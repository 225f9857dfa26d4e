package schema

import (
	"math"

	"github.com/7sDream/geko"
)

// Schema is a structural description of a JSON value's shape. A zero Schema
// serializes to an empty mapping and stands for "no information".
type Schema struct {
	Type       string             `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
}

// Infer derives a schema from a JSON body text. Text that is not valid JSON
// yields an empty schema rather than an error: traffic captures routinely
// contain non-JSON payloads and those must not abort a conversion.
func Infer(text string) *Schema {
	value, err := geko.JSONUnmarshal([]byte(text))
	if err != nil {
		return &Schema{}
	}
	return infer(value)
}

// infer walks a decoded JSON value. Bodies are parsed with geko so object
// properties keep their observed key order.
func infer(value interface{}) *Schema {
	switch v := value.(type) {
	case geko.ObjectItems:
		keys := v.Keys()
		values := v.Values()
		result := &Schema{
			Type:       "object",
			Properties: make(map[string]*Schema, len(keys)),
		}
		for i, key := range keys {
			result.Properties[key] = infer(values[i])
			// A property whose single observed example is non-null is
			// treated as required. Heuristic by policy: one sample cannot
			// establish true optionality.
			if values[i] != nil {
				result.Required = append(result.Required, key)
			}
		}
		return result
	case geko.Array:
		result := &Schema{Type: "array"}
		// Item shape comes from the first element only; an empty array
		// carries no items constraint at all.
		if len(v.List) > 0 {
			result.Items = infer(v.List[0])
		}
		return result
	case bool:
		// Checked ahead of the numeric cases so a boolean is never
		// classified as an integer.
		return &Schema{Type: "boolean"}
	case float64:
		if v == math.Trunc(v) {
			return &Schema{Type: "integer"}
		}
		return &Schema{Type: "number"}
	case int, int64:
		return &Schema{Type: "integer"}
	case string:
		return &Schema{Type: "string"}
	}
	return &Schema{Type: "null"}
}
