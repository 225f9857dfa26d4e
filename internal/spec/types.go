package spec

import (
	"har-to-openapi/internal/schema"
)

// Document is the top level of a generated OpenAPI 3.0 specification.
type Document struct {
	OpenAPI    string                `json:"openapi" yaml:"openapi"`
	Info       Info                  `json:"info" yaml:"info"`
	Paths      map[string]PathItem   `json:"paths" yaml:"paths"`
	Components Components            `json:"components" yaml:"components"`
	Security   []SecurityRequirement `json:"security" yaml:"security"`
}

// Info holds the document metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
}

// PathItem maps a lowercased HTTP method to its single operation.
type PathItem map[string]*Operation

// Components holds merged schema and security definitions.
type Components struct {
	Schemas         map[string]*schema.Schema `json:"schemas" yaml:"schemas"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes" yaml:"securitySchemes"`
}

// SecurityScheme describes one authentication mechanism.
type SecurityScheme struct {
	Type string `json:"type" yaml:"type"`
	In   string `json:"in" yaml:"in"`
	Name string `json:"name" yaml:"name"`
}

// SecurityRequirement is one entry of the global security list.
type SecurityRequirement map[string][]string

// Operation describes a single method on a path template.
type Operation struct {
	Summary     string              `json:"summary" yaml:"summary"`
	Description string              `json:"description" yaml:"description"`
	OperationID string              `json:"operationId" yaml:"operationId"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Response describes one status code's response.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content" yaml:"content"`
}

// RequestBody describes an operation's request payload.
type RequestBody struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content" yaml:"content"`
}

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *schema.Schema `json:"schema" yaml:"schema"`
}

// Parameter describes a query or path parameter.
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	In          string      `json:"in" yaml:"in"`
	Required    bool        `json:"required" yaml:"required"`
	Description string      `json:"description" yaml:"description"`
	Schema      ParamSchema `json:"schema" yaml:"schema"`
}

// ParamSchema is the primitive schema attached to a parameter.
type ParamSchema struct {
	Type string `json:"type" yaml:"type"`
}

// JSONContent wraps a schema as application/json content.
func JSONContent(s *schema.Schema) map[string]MediaType {
	return map[string]MediaType{
		"application/json": {Schema: s},
	}
}

// NewDocument creates an empty specification skeleton. The cookie-based
// API-key scheme is a fixed part of the template, not inferred from the
// observed traffic.
func NewDocument(title, version, description string) *Document {
	return &Document{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:       title,
			Version:     version,
			Description: description,
		},
		Paths: make(map[string]PathItem),
		Components: Components{
			Schemas: make(map[string]*schema.Schema),
			SecuritySchemes: map[string]SecurityScheme{
				"cookieAuth": {Type: "apiKey", In: "cookie", Name: "session"},
			},
		},
		Security: []SecurityRequirement{{"cookieAuth": {}}},
	}
}

// SetOperation inserts an operation under (path, method). A later entry for
// the same key replaces the earlier one wholesale; parameter lists and
// schemas are not merged across repeated observations of an endpoint.
func (d *Document) SetOperation(path, method string, op *Operation) {
	item, ok := d.Paths[path]
	if !ok {
		item = make(PathItem)
		d.Paths[path] = item
	}
	item[method] = op
}
