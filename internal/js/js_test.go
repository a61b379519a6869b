package js

import "testing"

func TestParseValidScriptKeepsSource(t *testing.T) {
	src := "var x = 1 + 2;"
	p := Parse(src)
	if p.Source() != src {
		t.Fatalf("expected Source() to return the original text, got %q", p.Source())
	}
	if p.compiled == nil {
		t.Fatal("expected a valid script body to compile")
	}
}

func TestParseSyntaxErrorDoesNotPanic(t *testing.T) {
	p := Parse("this is not ) valid javascript (((")
	if p.Source() == "" {
		t.Fatal("expected Source() to still return the original text on a parse error")
	}
}
