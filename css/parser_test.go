package css

import "testing"

func TestParseTypeSelectorRule(t *testing.T) {
	sheet := ParseStylesheet("p { color: red; }")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if rule.Selector.Kind != TypeSelector || rule.Selector.Name != "p" {
		t.Errorf("unexpected selector: %+v", rule.Selector)
	}
	if len(rule.Declarations) != 1 || rule.Declarations[0].Property != "color" {
		t.Fatalf("unexpected declarations: %+v", rule.Declarations)
	}
	if rule.Declarations[0].Value.Type != Ident || rule.Declarations[0].Value.Value != "red" {
		t.Errorf("unexpected value: %+v", rule.Declarations[0].Value)
	}
}

func TestParseClassSelector(t *testing.T) {
	sheet := ParseStylesheet(".c { background-color: #ff0000; }")
	rule := sheet.Rules[0]
	if rule.Selector.Kind != ClassSelector || rule.Selector.Name != "c" {
		t.Fatalf("unexpected selector: %+v", rule.Selector)
	}
	if rule.Declarations[0].Value.Type != HashToken || rule.Declarations[0].Value.Value != "ff0000" {
		t.Errorf("unexpected value: %+v", rule.Declarations[0].Value)
	}
}

func TestParseIdSelector(t *testing.T) {
	sheet := ParseStylesheet("#main { display: block; }")
	rule := sheet.Rules[0]
	if rule.Selector.Kind != IdSelector || rule.Selector.Name != "main" {
		t.Fatalf("unexpected selector: %+v", rule.Selector)
	}
}

func TestParsePseudoClassDropsSelector(t *testing.T) {
	sheet := ParseStylesheet("a:hover { color: blue; } p { color: green; }")
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %+v", len(sheet.Rules), sheet.Rules)
	}
	// a:hover becomes a plain TypeSelector("a"): the colon causes the
	// rest of the selector prelude to be dropped, but the type name
	// already consumed stands.
	if sheet.Rules[0].Selector.Kind != TypeSelector || sheet.Rules[0].Selector.Name != "a" {
		t.Errorf("unexpected first selector: %+v", sheet.Rules[0].Selector)
	}
	if sheet.Rules[1].Selector.Name != "p" {
		t.Errorf("expected second rule selector p, got %+v", sheet.Rules[1].Selector)
	}
}

func TestParseAtRuleDropped(t *testing.T) {
	sheet := ParseStylesheet("@media print { p {color:red} } p{color:blue}")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected @media rule to be dropped entirely, got %d rules: %+v", len(sheet.Rules), sheet.Rules)
	}
	rule := sheet.Rules[0]
	if rule.Selector.Name != "p" || rule.Declarations[0].Value.Value != "blue" {
		t.Errorf("expected p.color=blue to survive, got %+v", rule)
	}
}

func TestParseRuleOrderPreserved(t *testing.T) {
	sheet := ParseStylesheet("h1 { color: red; } p { color: blue; } a { color: green; }")
	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}
	wantOrder := []string{"h1", "p", "a"}
	for i, want := range wantOrder {
		if sheet.Rules[i].Selector.Name != want {
			t.Errorf("rule %d: got selector %q, want %q", i, sheet.Rules[i].Selector.Name, want)
		}
	}
}

func TestParseMalformedDeclarationSkipped(t *testing.T) {
	sheet := ParseStylesheet("p { not-a-declaration; color: red; }")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if len(sheet.Rules[0].Declarations) != 1 || sheet.Rules[0].Declarations[0].Property != "color" {
		t.Fatalf("expected malformed declaration to be skipped, got %+v", sheet.Rules[0].Declarations)
	}
}

func TestParseEmptyStylesheet(t *testing.T) {
	sheet := ParseStylesheet("")
	if len(sheet.Rules) != 0 {
		t.Fatalf("expected no rules, got %+v", sheet.Rules)
	}
}

func TestParsePrematureEOFAfterSelector(t *testing.T) {
	// EOF before the opening '{' is ever seen drops the rule entirely.
	sheet := ParseStylesheet("p")
	if len(sheet.Rules) != 0 {
		t.Fatalf("expected no rules, got %+v", sheet.Rules)
	}
}

func TestParsePrematureEOFInsideDeclarations(t *testing.T) {
	// EOF after '{' but before '}' yields whatever was parsed so far,
	// rather than panicking or looping forever.
	sheet := ParseStylesheet("p { color: red")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %+v", sheet.Rules)
	}
	if len(sheet.Rules[0].Declarations) != 1 || sheet.Rules[0].Declarations[0].Property != "color" {
		t.Errorf("unexpected declarations: %+v", sheet.Rules[0].Declarations)
	}
}
