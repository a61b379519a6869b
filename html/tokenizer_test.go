package html

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
		if tk.Type == EOFToken {
			return tokens
		}
	}
}

func TestTokenizerSimpleStartAndEndTag(t *testing.T) {
	tokens := collectTokens(t, "<p></p>")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", tokens)
	}
	if tokens[0].Type != StartTagToken || tokens[0].Tag != "p" {
		t.Errorf("unexpected start tag: %+v", tokens[0])
	}
	if tokens[1].Type != EndTagToken || tokens[1].Tag != "p" {
		t.Errorf("unexpected end tag: %+v", tokens[1])
	}
	if tokens[2].Type != EOFToken {
		t.Errorf("expected Eof last, got %+v", tokens[2])
	}
}

func TestTokenizerTagNameLowered(t *testing.T) {
	tokens := collectTokens(t, "<P></P>")
	if tokens[0].Tag != "p" || tokens[1].Tag != "p" {
		t.Fatalf("expected tag names lowered, got %+v", tokens[:2])
	}
}

func TestTokenizerCharData(t *testing.T) {
	tokens := collectTokens(t, "hi")
	if len(tokens) != 3 {
		t.Fatalf("expected 2 chars + Eof, got %+v", tokens)
	}
	if tokens[0].Char != 'h' || tokens[1].Char != 'i' {
		t.Errorf("unexpected chars: %+v", tokens[:2])
	}
}

func TestTokenizerAttributesDoubleQuoted(t *testing.T) {
	tokens := collectTokens(t, `<p class="c" id='main'>`)
	tag := tokens[0]
	if tag.Type != StartTagToken || len(tag.Attributes) != 2 {
		t.Fatalf("unexpected tag: %+v", tag)
	}
	if tag.Attributes[0] != (Attribute{Name: "class", Value: "c"}) {
		t.Errorf("unexpected first attribute: %+v", tag.Attributes[0])
	}
	if tag.Attributes[1] != (Attribute{Name: "id", Value: "main"}) {
		t.Errorf("unexpected second attribute: %+v", tag.Attributes[1])
	}
}

func TestTokenizerAttributeUnquoted(t *testing.T) {
	tokens := collectTokens(t, `<a href=x>`)
	tag := tokens[0]
	if len(tag.Attributes) != 1 || tag.Attributes[0] != (Attribute{Name: "href", Value: "x"}) {
		t.Fatalf("unexpected attributes: %+v", tag.Attributes)
	}
}

func TestTokenizerValuelessAttribute(t *testing.T) {
	tokens := collectTokens(t, `<p disabled>`)
	tag := tokens[0]
	if len(tag.Attributes) != 1 || tag.Attributes[0] != (Attribute{Name: "disabled", Value: ""}) {
		t.Fatalf("unexpected attributes: %+v", tag.Attributes)
	}
}

func TestTokenizerDuplicateAttributeKeepsFirst(t *testing.T) {
	tokens := collectTokens(t, `<p class="a" class="b">`)
	tag := tokens[0]
	if len(tag.Attributes) != 1 || tag.Attributes[0].Value != "a" {
		t.Fatalf("expected first duplicate value kept, got %+v", tag.Attributes)
	}
}

func TestTokenizerSelfClosing(t *testing.T) {
	tokens := collectTokens(t, `<p/>`)
	if !tokens[0].SelfClosing {
		t.Fatalf("expected self-closing tag, got %+v", tokens[0])
	}
}

func TestTokenizerScriptDataWithAngleBracket(t *testing.T) {
	tokens := collectTokens(t, `<script>if (1 < 2) {}</script>`)
	if tokens[0].Type != StartTagToken || tokens[0].Tag != "script" {
		t.Fatalf("unexpected opening token: %+v", tokens[0])
	}
	var chars []rune
	i := 1
	for ; tokens[i].Type == CharToken; i++ {
		chars = append(chars, tokens[i].Char)
	}
	if string(chars) != "if (1 < 2) {}" {
		t.Fatalf("script body mangled: %q", string(chars))
	}
	if tokens[i].Type != EndTagToken || tokens[i].Tag != "script" {
		t.Fatalf("expected closing script tag, got %+v", tokens[i])
	}
}

func TestTokenizerScriptDataCaseInsensitiveClose(t *testing.T) {
	tokens := collectTokens(t, `<script>x</SCRIPT>`)
	var found bool
	for _, tk := range tokens {
		if tk.Type == EndTagToken && tk.Tag == "script" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected case-insensitive </SCRIPT> match, got %+v", tokens)
	}
}

func TestTokenizerTerminatesWithExactlyOneEof(t *testing.T) {
	tokens := collectTokens(t, `<html><head></head><body><h1>hi</h1></body></html>`)
	count := 0
	for _, tk := range tokens {
		if tk.Type == EOFToken {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Eof, got %d in %+v", count, tokens)
	}
	if tokens[len(tokens)-1].Type != EOFToken {
		t.Fatalf("expected Eof to be the final token, got %+v", tokens[len(tokens)-1])
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tok := NewTokenizer("")
	tk, ok := tok.Next()
	if !ok || tk.Type != EOFToken {
		t.Fatalf("expected immediate Eof, got %+v ok=%v", tk, ok)
	}
	_, ok = tok.Next()
	if ok {
		t.Fatal("expected no token after Eof")
	}
}
