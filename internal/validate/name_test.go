package validate

import (
	"strings"
	"testing"
)

func TestIsValidProjectName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "my-project", true},
		{"default", "my_project", true},
		{"digits and tilde", "a1~b.c", true},
		{"single char", "a", true},
		{"uppercase", "My-Project", false},
		{"empty", "", false},
		{"leading dot", ".hidden", false},
		{"leading underscore", "_private", false},
		{"consecutive dots", "a..b", false},
		{"reserved node_modules", "node_modules", false},
		{"reserved favicon", "favicon.ico", false},
		{"space", "my project", false},
		{"slash", "a/b", false},
		{"at sign", "@scope", false},
		{"non ascii", "café", false},
		{"max length", strings.Repeat("a", MaxNameLength), true},
		{"too long", strings.Repeat("a", MaxNameLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidProjectName(tt.input); got != tt.want {
				t.Errorf("IsValidProjectName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
