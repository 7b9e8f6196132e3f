package commands

import (
	"errors"
	"testing"
)

func TestValidEntryName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"commit.md", true},
		{"git", true},
		{".hidden", true},
		{"v1.2.md", true},
		{"..", false},
		{"..secret", false},
		{"a..b.md", false},
		{"a/b", false},
		{`a\b.md`, false},
		{"/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEntryName(tt.name); got != tt.want {
				t.Errorf("ValidEntryName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCheckContentPath(t *testing.T) {
	if err := checkContentPath("/home/me/.claude/commands/fix.md"); err != nil {
		t.Errorf("unexpected error for clean path: %v", err)
	}
	for _, p := range []string{"../etc/passwd", "/a/../b.md", "..", "x/.."} {
		if err := checkContentPath(p); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("checkContentPath(%q) = %v, want ErrPathTraversal", p, err)
		}
	}
}

func TestParseSource(t *testing.T) {
	for _, s := range []Source{SourceProject, SourceUser, SourceCustom} {
		got, ok := ParseSource(string(s))
		if !ok || got != s {
			t.Errorf("ParseSource(%q) = %q, %v", s, got, ok)
		}
	}
	if _, ok := ParseSource("global"); ok {
		t.Error("ParseSource accepted an unknown tag")
	}
}
