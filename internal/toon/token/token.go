// Package token defines the immutable token model shared by the TOON
// lexer and parser: the token-kind enumeration and the Token record
// itself, each carrying its source span.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota
	// Invalid marks a character the lexer could not classify, or a
	// quoted string that is unterminated or was cut short by the
	// max_string_length cap.
	Invalid

	// String is quoted-string content or a bare word that is a value.
	String
	// Number is a numeric literal.
	Number
	// True is the `true` keyword.
	True
	// False is the `false` keyword.
	False
	// Null is the `null` keyword.
	Null
	// Identifier is a bare word followed by `:`, `[`, or `{` — a
	// property key.
	Identifier

	// Colon is `:`.
	Colon
	// Comma is `,`.
	Comma
	// Pipe is `|`.
	Pipe
	// LeftBracket is `[`.
	LeftBracket
	// RightBracket is `]`.
	RightBracket
	// LeftBrace is `{`.
	LeftBrace
	// RightBrace is `}`.
	RightBrace

	// Newline is a line break (`\n`, `\r`, or `\r\n`).
	Newline
	// Indent is reserved for a future indent-stack lexer; never
	// produced by the current design (see SPEC_FULL.md §13).
	Indent
	// Dedent is reserved for a future indent-stack lexer; never
	// produced by the current design (see SPEC_FULL.md §13).
	Dedent
	// Whitespace carries a run of inline or leading space/tab.
	Whitespace
	// Comment carries `#`/`//` trivia to end of line.
	Comment
)

var kindNames = map[Kind]string{
	EOF:          "EOF",
	Invalid:      "INVALID",
	String:       "STRING",
	Number:       "NUMBER",
	True:         "TRUE",
	False:        "FALSE",
	Null:         "NULL",
	Identifier:   "IDENTIFIER",
	Colon:        "COLON",
	Comma:        "COMMA",
	Pipe:         "PIPE",
	LeftBracket:  "LEFT_BRACKET",
	RightBracket: "RIGHT_BRACKET",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Newline:      "NEWLINE",
	Indent:       "INDENT",
	Dedent:       "DEDENT",
	Whitespace:   "WHITESPACE",
	Comment:      "COMMENT",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Token is a single immutable lexical unit.
//
// Value holds the decoded text for tokens produced from a quoted
// literal (escapes resolved): a String, or an Invalid token for an
// unterminated quoted string. For every other token it is the same as
// Lexeme.
type Token struct {
	Kind   Kind
	Lexeme string // raw source text
	Value  string // decoded text (quoted literals); equals Lexeme otherwise
	Line   int    // 1-based
	Column int    // 1-based
	Offset int    // 0-based byte offset
	Length int    // byte length of Lexeme
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// IsValueToken reports whether the token can participate in scalar
// parsing (the multi-word joining rule of spec §4.2).
func (t Token) IsValueToken() bool {
	switch t.Kind {
	case String, Number, True, False, Null, Identifier:
		return true
	default:
		return false
	}
}
