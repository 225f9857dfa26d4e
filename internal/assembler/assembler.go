package assembler

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"har-to-openapi/internal/describer"
	"har-to-openapi/internal/har"
	"har-to-openapi/internal/normalizer"
	"har-to-openapi/internal/schema"
	"har-to-openapi/internal/spec"
)

// Enricher rewrites a heuristic endpoint description into richer prose.
type Enricher interface {
	PolishDescription(ctx context.Context, method, path, draft string) (string, error)
}

// Options control a single conversion run.
type Options struct {
	// PathPrefix, when set, restricts the output to entries whose raw path
	// starts with it.
	PathPrefix string
	Title      string
	Version    string
	// Enricher, when non-nil, post-processes each generated description.
	Enricher Enricher
}

// Assembler builds an OpenAPI document from captured traffic.
type Assembler struct {
	opts   Options
	logger *zap.Logger
}

// New creates an assembler with defaults filled in.
func New(opts Options, logger *zap.Logger) *Assembler {
	if opts.Title == "" {
		opts.Title = "API Specification"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{opts: opts, logger: logger}
}

// Assemble converts a decoded traffic log into a specification document.
// Entries are processed in log order; when several entries map to the same
// (template, method) key the last one wins.
func (a *Assembler) Assemble(ctx context.Context, archive *har.HAR) *spec.Document {
	description := "Generated from HAR file"
	if a.opts.PathPrefix != "" {
		description += fmt.Sprintf(" (filtered by path prefix: %s)", a.opts.PathPrefix)
	}

	doc := spec.NewDocument(a.opts.Title, a.opts.Version, description)
	for _, entry := range archive.Log.Entries {
		a.addEntry(ctx, doc, entry)
	}
	return doc
}

// addEntry converts one exchange into an operation and indexes it under its
// normalized path and method.
func (a *Assembler) addEntry(ctx context.Context, doc *spec.Document, entry har.Entry) {
	parsed, err := url.Parse(entry.Request.URL)
	if err != nil {
		a.logger.Debug("skipping entry with unparseable URL",
			zap.String("url", entry.Request.URL), zap.Error(err))
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return
	}

	rawPath := parsed.Path
	if a.opts.PathPrefix != "" && !strings.HasPrefix(rawPath, a.opts.PathPrefix) {
		return
	}

	path, bindings := normalizer.Normalize(rawPath)
	method := strings.ToLower(entry.Request.MethodOrDefault())

	description := describer.Describe(path, method, entry.Request, entry.Response)
	if a.opts.Enricher != nil {
		enriched, err := a.opts.Enricher.PolishDescription(ctx, method, path, description)
		if err != nil {
			a.logger.Warn("description enrichment failed, keeping heuristic text",
				zap.String("path", path), zap.String("method", method), zap.Error(err))
		} else {
			description = enriched
		}
	}

	status := entry.Response.StatusOrDefault()
	op := &spec.Operation{
		Summary:     fmt.Sprintf("%s %s", strings.ToUpper(method), path),
		Description: description,
		OperationID: method + "_" + strings.ReplaceAll(path, "/", "_"),
		Responses: map[string]spec.Response{
			strconv.Itoa(status): {
				Description: entry.Response.StatusText,
				Content:     spec.JSONContent(schema.Infer(entry.Response.BodyText())),
			},
		},
	}

	if entry.Request.PostData != nil {
		op.RequestBody = &spec.RequestBody{
			Description: "Request body containing the data to be processed",
			Content:     spec.JSONContent(schema.Infer(entry.Request.BodyText())),
		}
	}

	for _, name := range queryNames(parsed.RawQuery) {
		op.Parameters = append(op.Parameters, spec.Parameter{
			Name:        name,
			In:          "query",
			Required:    true,
			Description: "Query parameter: " + name,
			Schema:      spec.ParamSchema{Type: "string"},
		})
	}

	for _, binding := range bindings {
		op.Parameters = append(op.Parameters, spec.Parameter{
			Name:        binding.Name,
			In:          "path",
			Required:    true,
			Description: fmt.Sprintf("Path parameter: %s (e.g., %s)", binding.Name, binding.Example),
			Schema:      spec.ParamSchema{Type: "string"},
		})
	}

	doc.SetOperation(path, method, op)
}

// queryNames extracts query parameter names from a raw query string in
// first-appearance order. url.ParseQuery is not used here because its map
// iteration order would make the parameter list nondeterministic.
func queryNames(rawQuery string) []string {
	if rawQuery == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var names []string
	for _, pair := range strings.Split(rawQuery, "&") {
		name := pair
		if i := strings.Index(pair, "="); i >= 0 {
			name = pair[:i]
		}
		if name == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
