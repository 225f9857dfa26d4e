package describer

import (
	"fmt"
	"strings"

	"github.com/7sDream/geko"

	"har-to-openapi/internal/har"
)

var methodVerbs = map[string]string{
	"get":    "Retrieve",
	"post":   "Create",
	"put":    "Update",
	"patch":  "Partially update",
	"delete": "Delete",
}

// Describe builds a human-readable description for one exchange from its
// normalized path, method and recorded request/response. Field names are
// enumerated in their observed key order.
func Describe(path, method string, request har.Request, response har.Response) string {
	resource := "resource"
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			resource = segment
		}
	}

	verb, ok := methodVerbs[strings.ToLower(method)]
	if !ok {
		verb = "Process"
	}

	description := verb + " " + resource

	if fields := objectKeys(request.BodyText()); len(fields) > 0 {
		description += " with fields: " + strings.Join(fields, ", ")
	}

	if value, err := geko.JSONUnmarshal([]byte(response.BodyText())); err == nil {
		switch v := value.(type) {
		case geko.ObjectItems:
			if keys := v.Keys(); len(keys) > 0 {
				description += " Returns data with fields: " + strings.Join(keys, ", ")
			}
		case geko.Array:
			if len(v.List) > 0 {
				description += fmt.Sprintf(" Returns a list of %ss", resource)
			}
		}
	}

	status := response.StatusOrDefault()
	switch {
	case status >= 200 && status < 300:
		description += fmt.Sprintf(" (Success: %d)", status)
	case status >= 400:
		description += fmt.Sprintf(" (Error: %d)", status)
	}

	return description
}

// objectKeys returns the keys of a JSON object body in observed order, or
// nil when the body is not a JSON object.
func objectKeys(text string) []string {
	value, err := geko.JSONUnmarshal([]byte(text))
	if err != nil {
		return nil
	}
	if object, ok := value.(geko.ObjectItems); ok {
		return object.Keys()
	}
	return nil
}
