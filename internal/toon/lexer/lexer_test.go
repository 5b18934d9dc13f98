package lexer

import (
	"testing"

	"github.com/madskristensen/toon/internal/toon/token"
)

func scanSource(source string) ([]token.Token, []string) {
	tokens, diags := New(source, DefaultOptions()).ScanTokens()
	messages := make([]string, len(diags))
	for i, d := range diags {
		messages[i] = d.String()
	}
	return tokens, messages
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.EOF {
			continue
		}
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func checkKinds(t *testing.T, tokens []token.Token, expected []token.Kind) {
	t.Helper()
	actual := kindsOf(tokens)
	if len(actual) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nexpected: %v\nactual:   %v", len(expected), len(actual), expected, actual)
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], actual[i])
		}
	}
}

func TestLexer_StructuralTokens(t *testing.T) {
	tokens, errs := scanSource(":,|[]{}")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{
		token.Colon, token.Comma, token.Pipe,
		token.LeftBracket, token.RightBracket,
		token.LeftBrace, token.RightBrace,
	})
}

func TestLexer_PropertyKeyBecomesIdentifier(t *testing.T) {
	tokens, errs := scanSource("name: Alice")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{token.Identifier, token.Colon, token.Whitespace, token.String})
	if tokens[0].Value != "name" {
		t.Errorf("expected key value %q, got %q", "name", tokens[0].Value)
	}
}

func TestLexer_QuotedStringEscapes(t *testing.T) {
	tokens, errs := scanSource(`"line\nbreak"`)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{token.String})
	if tokens[0].Value != "line\nbreak" {
		t.Errorf("expected decoded value %q, got %q", "line\nbreak", tokens[0].Value)
	}
}

func TestLexer_UnterminatedStringRecorded(t *testing.T) {
	tokens, errs := scanSource(`name: "John`)
	if len(errs) == 0 {
		t.Fatalf("expected an unterminated-string diagnostic")
	}
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an Invalid token for the unterminated string")
	}
}

func TestLexer_NumberLiterals(t *testing.T) {
	cases := []struct {
		source    string
		wantKind  token.Kind
		wantRaw   string
		isInteger bool
	}{
		{"42", token.Number, "42", true},
		{"-3.5", token.Number, "-3.5", false},
		{"1e10", token.Number, "1e10", false},
		{"05", token.String, "05", false}, // leading zero: reclassified per spec
	}
	for _, c := range cases {
		tokens, errs := scanSource(c.source)
		if len(errs) > 0 {
			t.Fatalf("%s: unexpected errors: %v", c.source, errs)
		}
		if len(tokens) == 0 || tokens[0].Kind != c.wantKind {
			t.Fatalf("%s: expected kind %s, got %v", c.source, c.wantKind, tokens)
		}
		if tokens[0].Lexeme != c.wantRaw {
			t.Errorf("%s: expected raw %q, got %q", c.source, c.wantRaw, tokens[0].Lexeme)
		}
	}
}

func TestLexer_NumberBacksOutBadExponent(t *testing.T) {
	tokens, errs := scanSource("1extra")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// "1" is a Number, then "extra" continues as its own bare word.
	if len(tokens) < 2 || tokens[0].Kind != token.Number || tokens[0].Lexeme != "1" {
		t.Fatalf("expected a Number token '1' first, got %v", tokens)
	}
}

func TestLexer_Keywords(t *testing.T) {
	tokens, errs := scanSource("true false null")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{
		token.True, token.Whitespace, token.False, token.Whitespace,
		token.Null,
	})
}

func TestLexer_NilIsPlainString(t *testing.T) {
	// Spec §4.1 lists only true/false/null as keywords; "nil" is not
	// one of them and lexes as an ordinary bare-word String.
	tokens, errs := scanSource("nil")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{token.String})
}

func TestLexer_PipeDelimitedArrayHeader(t *testing.T) {
	tokens, errs := scanSource("tags[3|]: reading|gaming|coding")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkKinds(t, tokens, []token.Kind{
		token.Identifier, token.LeftBracket, token.Number, token.Pipe, token.RightBracket,
		token.Colon, token.Whitespace,
		token.String, token.Pipe, token.String, token.Pipe, token.String,
	})
}

func TestLexer_TokenCountCap(t *testing.T) {
	opts := Options{MaxStringLength: DefaultOptions().MaxStringLength, MaxTokenCount: 3}
	tokens, diags := New("a: 1\nb: 2\nc: 3\n", opts).ScanTokens()
	if len(tokens) == 0 {
		t.Fatal("expected some tokens before the cap")
	}
	if len(diags) == 0 {
		t.Fatal("expected a token-limit diagnostic")
	}
}

func TestParseNumberLiteral(t *testing.T) {
	v, isInt, err := ParseNumberLiteral("42")
	if err != nil || !isInt || v != 42 {
		t.Errorf("ParseNumberLiteral(42) = %v, %v, %v", v, isInt, err)
	}
	v, isInt, err = ParseNumberLiteral("3.5")
	if err != nil || isInt || v != 3.5 {
		t.Errorf("ParseNumberLiteral(3.5) = %v, %v, %v", v, isInt, err)
	}
}
