package jsonutil

import (
	"strings"
	"testing"
)

func TestMarshalNoEscape_KeepsAngleBrackets(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"fix": "if x < 10 && y > 2"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, `\u003c`) || strings.Contains(s, `\u003e`) || strings.Contains(s, `\u0026`) {
		t.Fatalf("output was HTML-escaped: %s", s)
	}
	if !strings.Contains(s, "x < 10 && y > 2") {
		t.Fatalf("content mangled: %s", s)
	}
}

func TestMarshalNoEscape_NoTrailingNewline(t *testing.T) {
	out, err := MarshalNoEscape([]int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasSuffix(string(out), "\n") {
		t.Fatalf("trailing newline not trimmed: %q", out)
	}
}
