package style

import "testing"

func TestParseColorNamed(t *testing.T) {
	c, ok := ParseColor("blue")
	if !ok || c != Blue {
		t.Fatalf("expected blue, got %+v ok=%v", c, ok)
	}
}

func TestParseColorHex(t *testing.T) {
	c, ok := ParseColor("ff0000")
	if !ok || c != (Color{R: 0xff, G: 0, B: 0}) {
		t.Fatalf("expected red from hex, got %+v ok=%v", c, ok)
	}
}

func TestParseColorUnknownFails(t *testing.T) {
	if _, ok := ParseColor("chartreuse"); ok {
		t.Fatal("expected unknown color name to fail")
	}
	if _, ok := ParseColor("zzzzzz"); ok {
		t.Fatal("expected non-hex garbage to fail")
	}
}

func TestFontSizeRatio(t *testing.T) {
	cases := []struct {
		size FontSize
		want int64
	}{
		{Medium, 1},
		{XLarge, 2},
		{XXLarge, 3},
	}
	for _, c := range cases {
		if got := c.size.Ratio(); got != c.want {
			t.Errorf("%v.Ratio() = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestDisplayString(t *testing.T) {
	if Block.String() != "block" || Inline.String() != "inline" || None.String() != "none" {
		t.Fatalf("unexpected Display.String() outputs")
	}
}
