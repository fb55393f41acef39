package token

import "testing"

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"module":    KwModule,
		"endmodule": KwEndmodule,
		"always_ff": KwAlwaysFF,
		"logic":     KwLogic,
		"foreach":   KwForeach,
		"unique0":   KwUnique0,
		"true":      KwTrue,
		"false":     KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme, Latest)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_VersionGated(t *testing.T) {
	if _, ok := LookupKeyword("unique0", V2005); ok {
		t.Fatalf("unique0 must not be a keyword before V2009")
	}
	if _, ok := LookupKeyword("unique0", V2009); !ok {
		t.Fatalf("unique0 must be a keyword from V2009")
	}
	if _, ok := LookupKeyword("logic", V1995); ok {
		t.Fatalf("logic must not be a keyword under Verilog-1995")
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Case matters; these are never keywords regardless of version.
	notKw := []string{
		"Module", "LOGIC",
		"foo_bar", "identifier", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s, Latest); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
