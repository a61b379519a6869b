package css

import "testing"

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	tok := NewTokenizer(input)
	var tokens []Token
	for {
		tk, ok := tok.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tk)
	}
}

func TestTokenizerIdent(t *testing.T) {
	tokens := collectTokens(t, "p")
	if len(tokens) != 1 || tokens[0].Type != Ident || tokens[0].Value != "p" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestTokenizerHash(t *testing.T) {
	tokens := collectTokens(t, "#main")
	if len(tokens) != 1 || tokens[0].Type != HashToken || tokens[0].Value != "main" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestTokenizerClassDot(t *testing.T) {
	tokens := collectTokens(t, ".c")
	want := []Token{{Type: Delim, Value: "."}, {Type: Ident, Value: "c"}}
	if len(tokens) != len(want) {
		t.Fatalf("got %+v, want %+v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizerDeclaration(t *testing.T) {
	tokens := collectTokens(t, "p { color : red ; }")
	wantTypes := []TokenType{Ident, OpenCurly, Ident, Colon, Ident, Semicolon, CloseCurly}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens %+v, want %d", len(tokens), tokens, len(wantTypes))
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token %d: got type %v, want %v", i, tokens[i].Type, want)
		}
	}
}

func TestTokenizerAtKeyword(t *testing.T) {
	tokens := collectTokens(t, "@media")
	if len(tokens) != 1 || tokens[0].Type != AtKeyword || tokens[0].Value != "media" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestTokenizerWhitespaceDiscarded(t *testing.T) {
	tokens := collectTokens(t, "  p  \n\t q ")
	if len(tokens) != 2 {
		t.Fatalf("expected whitespace to be discarded, got %+v", tokens)
	}
}

func TestTokenizerEOF(t *testing.T) {
	tok := NewTokenizer("")
	_, ok := tok.Next()
	if ok {
		t.Fatal("expected no token on empty input")
	}
}
