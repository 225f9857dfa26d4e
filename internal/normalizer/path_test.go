package normalizer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantPath     string
		wantBindings []Binding
	}{
		{
			name:     "numeric id then hash",
			path:     "/users/1000140/orders/3f29c4a1b2e3445e9aa1d2c3b4e5f6a7",
			wantPath: "/users/{id}/orders/{hash_3}",
			wantBindings: []Binding{
				{Name: "id", Example: "1000140"},
				{Name: "hash_3", Example: "3f29c4a1b2e3445e9aa1d2c3b4e5f6a7"},
			},
		},
		{
			name:         "single numeric id",
			path:         "/users/42",
			wantPath:     "/users/{id}",
			wantBindings: []Binding{{Name: "id", Example: "42"}},
		},
		{
			name:     "two ids stay unique",
			path:     "/users/1/orders/2",
			wantPath: "/users/{id}/orders/{id_3}",
			wantBindings: []Binding{
				{Name: "id", Example: "1"},
				{Name: "id_3", Example: "2"},
			},
		},
		{
			name:     "canonical uuid",
			path:     "/files/123e4567-e89b-12d3-a456-426614174000",
			wantPath: "/files/{uuid}",
			wantBindings: []Binding{
				{Name: "uuid", Example: "123e4567-e89b-12d3-a456-426614174000"},
			},
		},
		{
			name:     "uppercase uuid is not canonical, falls through to token",
			path:     "/files/123E4567-E89B-12D3-A456-426614174000",
			wantPath: "/files/{token}",
			wantBindings: []Binding{
				{Name: "token", Example: "123E4567-E89B-12D3-A456-426614174000"},
			},
		},
		{
			name:     "long token",
			path:     "/auth/sess_9a8b7c6d5e4f3a2b1c0d",
			wantPath: "/auth/{token}",
			wantBindings: []Binding{
				{Name: "token", Example: "sess_9a8b7c6d5e4f3a2b1c0d"},
			},
		},
		{
			name:         "literal segments untouched",
			path:         "/api/v2/users",
			wantPath:     "/api/v2/users",
			wantBindings: nil,
		},
		{
			name:         "trailing slash preserved",
			path:         "/users/",
			wantPath:     "/users/",
			wantBindings: nil,
		},
		{
			name:         "empty path",
			path:         "",
			wantPath:     "",
			wantBindings: nil,
		},
		{
			name:     "all-digit segment is id even at 32 chars",
			path:     "/k/12345678901234567890123456789012",
			wantPath: "/k/{id}",
			wantBindings: []Binding{
				{Name: "id", Example: "12345678901234567890123456789012"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPath, gotBindings := Normalize(tt.path)
			if gotPath != tt.wantPath {
				t.Errorf("Normalize(%q) path = %q, want %q", tt.path, gotPath, tt.wantPath)
			}
			if !reflect.DeepEqual(gotBindings, tt.wantBindings) {
				t.Errorf("Normalize(%q) bindings = %v, want %v", tt.path, gotBindings, tt.wantBindings)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	paths := []string{
		"/users/1000140/orders/3f29c4a1b2e3445e9aa1d2c3b4e5f6a7",
		"/files/123e4567-e89b-12d3-a456-426614174000",
		"/auth/sess_9a8b7c6d5e4f3a2b1c0d/refresh",
	}

	for _, path := range paths {
		once, _ := Normalize(path)
		twice, bindings := Normalize(once)
		if twice != once {
			t.Errorf("Normalize(%q) not idempotent: %q -> %q", path, once, twice)
		}
		if len(bindings) != 0 {
			t.Errorf("Normalize(%q) rewrote templated segments: %v", once, bindings)
		}
	}
}
