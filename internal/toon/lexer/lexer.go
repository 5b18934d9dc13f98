// Package lexer tokenizes TOON source text into the finite token
// sequence consumed by the parser. Lexer instances are not
// thread-safe (each carries mutable cursor state); independent inputs
// may be lexed concurrently by independent instances without any
// shared mutable state, following the same rule the teacher compiler's
// lexer documents for itself.
package lexer

import (
	"strconv"
	"strings"

	"github.com/madskristensen/toon/internal/toon/token"
	"github.com/madskristensen/toon/internal/toon/tooerr"
)

// Options bounds lexer resource usage (spec §6).
type Options struct {
	MaxStringLength int
	MaxTokenCount   int
}

// DefaultOptions returns the spec §6 defaults relevant to the lexer.
func DefaultOptions() Options {
	return Options{MaxStringLength: 65536, MaxTokenCount: 1_000_000}
}

// Lexer tokenizes TOON source code.
type Lexer struct {
	source  string
	start   int
	current int
	line    int
	column  int
	tokens  []token.Token
	diags   []tooerr.Diagnostic
	opts    Options

	tokenCountExceeded bool
}

// New creates a Lexer for the given source and options.
func New(source string, opts Options) *Lexer {
	if opts.MaxStringLength <= 0 {
		opts.MaxStringLength = DefaultOptions().MaxStringLength
	}
	if opts.MaxTokenCount <= 0 {
		opts.MaxTokenCount = DefaultOptions().MaxTokenCount
	}
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
		opts:   opts,
	}
}

// ScanTokens tokenizes the entire source and returns the token
// sequence (always ending in exactly one EOF token) plus any recorded
// lexical diagnostics.
func (l *Lexer) ScanTokens() ([]token.Token, []tooerr.Diagnostic) {
	for !l.isAtEnd() {
		if len(l.tokens) >= l.opts.MaxTokenCount {
			if !l.tokenCountExceeded {
				l.tokenCountExceeded = true
				l.addErrorAt(tooerr.TokenLimitExceeded, "token count exceeds max_token_count")
			}
			break
		}
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, token.Token{
		Kind:   token.EOF,
		Line:   l.line,
		Column: l.column,
		Offset: l.current,
	})

	return l.tokens, l.diags
}

func (l *Lexer) scanToken() {
	c := l.advance()

	switch {
	case c == ' ' || c == '\t':
		l.whitespace()
	case c == '\r':
		l.newline(c)
	case c == '\n':
		l.newline(c)
	case c == '#':
		l.lineComment()
	case c == '/' && l.peek() == '/':
		l.advance()
		l.lineComment()
	case c == ':':
		l.addToken(token.Colon)
	case c == ',':
		l.addToken(token.Comma)
	case c == '|':
		l.addToken(token.Pipe)
	case c == '[':
		l.addToken(token.LeftBracket)
	case c == ']':
		l.addToken(token.RightBracket)
	case c == '{':
		l.addToken(token.LeftBrace)
	case c == '}':
		l.addToken(token.RightBrace)
	case c == '"' || c == '\'':
		l.quotedString(c)
	case isDigit(c):
		l.number()
	case c == '-' && isDigit(l.peek()):
		l.number()
	case isAlpha(c):
		l.bareWord()
	case isUnquotedStringStart(c, l.peek()):
		l.unquotedString()
	default:
		l.addErrorAt(tooerr.InvalidCharacter, "unexpected character '"+string(c)+"'")
		l.addToken(token.Invalid)
	}
}

// whitespace consumes a run of spaces/tabs (leading or inline; the
// parser distinguishes the two from position, not from token kind).
func (l *Lexer) whitespace() {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	l.addToken(token.Whitespace)
}

func (l *Lexer) newline(first byte) {
	if first == '\r' && l.peek() == '\n' {
		l.advance()
	}
	l.addToken(token.Newline)
	l.line++
	l.column = 1
}

func (l *Lexer) lineComment() {
	for l.peek() != '\n' && l.peek() != '\r' && !l.isAtEnd() {
		l.advance()
	}
	l.addToken(token.Comment)
}

func (l *Lexer) quotedString(quote byte) {
	startLine, startColumn, startOffset := l.line, l.column-1, l.start
	var value strings.Builder
	capped := false

	for !l.isAtEnd() && l.peek() != quote {
		if !capped && l.current-l.start > l.opts.MaxStringLength {
			capped = true
			l.addErrorAt(tooerr.StringLengthExceeded, "string token exceeds max_string_length")
			break
		}
		if l.peek() == '\\' {
			l.advance()
			if l.isAtEnd() {
				break
			}
			esc := l.advance()
			switch esc {
			case 'n':
				value.WriteByte('\n')
			case 'r':
				value.WriteByte('\r')
			case 't':
				value.WriteByte('\t')
			case '\\':
				value.WriteByte('\\')
			case '"':
				value.WriteByte('"')
			case '\'':
				if quote == '\'' {
					value.WriteByte('\'')
				} else {
					value.WriteByte('\\')
					value.WriteByte(esc)
				}
			default:
				l.addErrorAt(tooerr.InvalidEscapeSequence, "invalid escape sequence '\\"+string(esc)+"'")
				value.WriteByte('\\')
				value.WriteByte(esc)
			}
			continue
		}
		if l.peek() == '\n' {
			l.line++
			l.column = 0
		}
		value.WriteByte(l.advance())
	}

	if l.isAtEnd() || l.peek() != quote {
		l.addDiagAt(tooerr.UnterminatedString, "unterminated string", startLine, startColumn, startOffset, l.current-startOffset)
		l.tokens = append(l.tokens, token.Token{
			Kind:   token.Invalid,
			Lexeme: l.source[l.start:l.current],
			Value:  value.String(),
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
			Length: l.current - startOffset,
		})
		return
	}

	l.advance() // closing quote

	l.tokens = append(l.tokens, token.Token{
		Kind:   token.String,
		Lexeme: l.source[l.start:l.current],
		Value:  value.String(),
		Line:   startLine,
		Column: startColumn,
		Offset: startOffset,
		Length: l.current - startOffset,
	})
}

// number consumes a numeric literal per spec §4.1: optional `-`, one
// or more digits, optional `.`-and-digits, optional `e`/`E` with
// optional sign and digits. A purely-integer literal whose digit run
// has a leading zero longer than one character is reclassified as a
// String token (TOON forbids integer leading zeros).
func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		save := l.current
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if isDigit(l.peek()) {
			isFloat = true
			for isDigit(l.peek()) {
				l.advance()
			}
		} else {
			// Not a valid exponent after all; back out and leave the
			// 'e'/'E' to be lexed as the start of a bare word/string.
			l.column -= l.current - save
			l.current = save
		}
	}

	lexeme := l.source[l.start:l.current]
	if !isFloat {
		digits := lexeme
		if strings.HasPrefix(digits, "-") {
			digits = digits[1:]
		}
		if len(digits) > 1 && digits[0] == '0' {
			l.addToken(token.String)
			return
		}
	}
	l.addToken(token.Number)
}

// bareWord consumes letter/digit/_/-/./@ runs, classifying the result
// as a keyword, an Identifier (property key — followed, after
// whitespace, by `:`/`[`/`{`), or a String value.
func (l *Lexer) bareWord() {
	for isBareWordRune(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	switch text {
	case "true":
		l.addToken(token.True)
		return
	case "false":
		l.addToken(token.False)
		return
	case "null":
		l.addToken(token.Null)
		return
	}

	if l.looksLikeKey() {
		l.addToken(token.Identifier)
		return
	}
	l.addToken(token.String)
}

// looksLikeKey reports whether, after skipping inline whitespace, the
// next character is `:`, `[`, or `{`.
func (l *Lexer) looksLikeKey() bool {
	i := l.current
	for i < len(l.source) && (l.source[i] == ' ' || l.source[i] == '\t') {
		i++
	}
	if i >= len(l.source) {
		return false
	}
	c := l.source[i]
	return c == ':' || c == '[' || c == '{'
}

func (l *Lexer) unquotedString() {
	for !l.isAtEnd() && isUnquotedStringBody(l.peek()) {
		if l.current-l.start > l.opts.MaxStringLength {
			l.addErrorAt(tooerr.StringLengthExceeded, "string token exceeds max_string_length")
			break
		}
		l.advance()
	}
	l.addToken(token.String)
}

// Character classification helpers.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isBareWordRune(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '@'
}

// forbiddenUnquoted holds characters that can never appear in an
// unquoted string (structural delimiters, comment starters, quotes,
// backslash, and whitespace).
const forbiddenUnquoted = " \t\r\n,:|[]{}#/\"'\\"

func isUnquotedStringBody(c byte) bool {
	return !strings.ContainsRune(forbiddenUnquoted, rune(c))
}

func isUnquotedStringStart(c, next byte) bool {
	if !isUnquotedStringBody(c) {
		return false
	}
	if c == '-' && isDigit(next) {
		return false
	}
	return true
}

// Cursor primitives.

func (l *Lexer) isAtEnd() bool { return l.current >= len(l.source) }

func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	c := l.source[l.current]
	l.current++
	l.column++
	return c
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekAt(n int) byte {
	if l.current+n >= len(l.source) {
		return 0
	}
	return l.source[l.current+n]
}

func (l *Lexer) addToken(kind token.Kind) {
	lexeme := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Value:  lexeme,
		Line:   l.line,
		Column: l.column - (l.current - l.start),
		Offset: l.start,
		Length: l.current - l.start,
	})
}

func (l *Lexer) addErrorAt(code tooerr.Code, message string) {
	line := l.line
	column := l.column - (l.current - l.start)
	l.addDiagAt(code, message, line, column, l.start, l.current-l.start)
}

func (l *Lexer) addDiagAt(code tooerr.Code, message string, line, column, offset, length int) {
	l.diags = append(l.diags, tooerr.New(code, message, tooerr.Position{
		Line: line, Column: column, Offset: offset, Length: length,
	}))
}

// ParseNumberLiteral parses a Number token's raw lexeme into a
// float64 plus an IsInteger flag (no dot, no exponent).
func ParseNumberLiteral(lexeme string) (value float64, isInteger bool, err error) {
	isInteger = !strings.ContainsAny(lexeme, ".eE")
	value, err = strconv.ParseFloat(lexeme, 64)
	return value, isInteger, err
}
