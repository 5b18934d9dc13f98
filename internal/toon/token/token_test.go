package token

import "testing"

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		EOF:        "EOF",
		Identifier: "IDENTIFIER",
		Number:     "NUMBER",
		Kind(999):  "UNKNOWN(999)",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestToken_IsValueToken(t *testing.T) {
	valueKinds := []Kind{String, Number, True, False, Null, Identifier}
	for _, k := range valueKinds {
		if !(Token{Kind: k}).IsValueToken() {
			t.Errorf("%s: expected IsValueToken() true", k)
		}
	}

	structuralKinds := []Kind{Colon, Comma, Pipe, LeftBracket, RightBracket, LeftBrace, RightBrace, Newline, Whitespace, EOF}
	for _, k := range structuralKinds {
		if (Token{Kind: k}).IsValueToken() {
			t.Errorf("%s: expected IsValueToken() false", k)
		}
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Kind: String, Lexeme: "hello", Line: 2, Column: 5}
	got := tok.String()
	want := `STRING "hello" at 2:5`
	if got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
