package schema

import (
	"reflect"
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Schema
	}{
		{
			name: "object with null property",
			text: `{"a": 1, "b": null}`,
			want: &Schema{
				Type: "object",
				Properties: map[string]*Schema{
					"a": {Type: "integer"},
					"b": {Type: "null"},
				},
				Required: []string{"a"},
			},
		},
		{
			name: "array items from first element only",
			text: `[1, 2, 3]`,
			want: &Schema{Type: "array", Items: &Schema{Type: "integer"}},
		},
		{
			name: "empty array has no items constraint",
			text: `[]`,
			want: &Schema{Type: "array"},
		},
		{
			name: "boolean is not an integer",
			text: `{"active": true}`,
			want: &Schema{
				Type:       "object",
				Properties: map[string]*Schema{"active": {Type: "boolean"}},
				Required:   []string{"active"},
			},
		},
		{
			name: "whole-valued number is integer",
			text: `42`,
			want: &Schema{Type: "integer"},
		},
		{
			name: "fractional number is number",
			text: `3.14`,
			want: &Schema{Type: "number"},
		},
		{
			name: "string",
			text: `"hello"`,
			want: &Schema{Type: "string"},
		},
		{
			name: "null",
			text: `null`,
			want: &Schema{Type: "null"},
		},
		{
			name: "unparseable text yields empty schema",
			text: `<html>not json</html>`,
			want: &Schema{},
		},
		{
			name: "empty text yields empty schema",
			text: ``,
			want: &Schema{},
		},
		{
			name: "nested object",
			text: `{"user": {"id": 7, "tags": ["a", "b"]}}`,
			want: &Schema{
				Type: "object",
				Properties: map[string]*Schema{
					"user": {
						Type: "object",
						Properties: map[string]*Schema{
							"id":   {Type: "integer"},
							"tags": {Type: "array", Items: &Schema{Type: "string"}},
						},
						Required: []string{"id", "tags"},
					},
				},
				Required: []string{"user"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Infer(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferDeterministic(t *testing.T) {
	text := `{"a": 1, "b": null, "c": [true, 1], "d": {"e": "f"}}`

	first := Infer(text)
	second := Infer(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Infer is not deterministic: %+v != %+v", first, second)
	}
}

func TestInferRequiredOrder(t *testing.T) {
	// Required entries follow the observed key order of the body.
	got := Infer(`{"z": 1, "a": 2, "m": 3}`)
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(got.Required, want) {
		t.Errorf("required = %v, want %v", got.Required, want)
	}
}
