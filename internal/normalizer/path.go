package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Binding records one path segment that was rewritten into a placeholder,
// keeping the literal value for use in parameter descriptions.
type Binding struct {
	Name    string
	Example string
}

// Candidate patterns, tried in order; the first match decides the
// placeholder kind.
var (
	idPattern    = regexp.MustCompile(`^\d+$`)
	hashPattern  = regexp.MustCompile(`^[a-f0-9]{32}$`)
	tokenPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)
)

// Normalize rewrites dynamic segments of a URL path into {name}
// placeholders and returns the resulting template together with the ordered
// bindings of placeholder names to the literals they replaced.
//
// The first parameterized segment is named after its kind alone; every
// later one is suffixed with its 0-based position among the path's
// non-empty segments, so /users/1000140/orders/<32 hex chars> becomes
// /users/{id}/orders/{hash_3}. Already-templated segments match no pattern,
// which makes Normalize idempotent on its own output.
func Normalize(path string) (string, []Binding) {
	segments := strings.Split(path, "/")
	var bindings []Binding

	position := 0
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if kind, ok := classify(segment); ok {
			name := kind
			if len(bindings) > 0 {
				name = fmt.Sprintf("%s_%d", kind, position)
			}
			segments[i] = "{" + name + "}"
			bindings = append(bindings, Binding{Name: name, Example: segment})
		}
		position++
	}

	return strings.Join(segments, "/"), bindings
}

// classify reports the placeholder kind of a dynamic segment, or false for
// a literal path component.
func classify(segment string) (string, bool) {
	switch {
	case idPattern.MatchString(segment):
		return "id", true
	case isCanonicalUUID(segment):
		return "uuid", true
	case hashPattern.MatchString(segment):
		return "hash", true
	case tokenPattern.MatchString(segment):
		return "token", true
	}
	return "", false
}

// isCanonicalUUID accepts only the canonical lowercase 8-4-4-4-12 form;
// uuid.Parse alone is looser (uppercase, braces, urn prefixes).
func isCanonicalUUID(segment string) bool {
	if len(segment) != 36 || segment != strings.ToLower(segment) {
		return false
	}
	_, err := uuid.Parse(segment)
	return err == nil
}
