// Package ast defines the Abstract Syntax Tree node types produced by
// the TOON parser: a closed tagged-variant tree (document, property,
// object, array, table-array, and four scalar kinds), each carrying a
// source span. Extending the variant set is a breaking change by
// design — visitors dispatch on the concrete type, there is no open
// inheritance hierarchy.
package ast

import "github.com/madskristensen/toon/internal/toon/token"

// Position is a single point in source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span is the [Start, End) extent of a node in source text.
type Span struct {
	Start Position
	End   Position
}

// Node is the base interface implemented by every AST variant.
type Node interface {
	Span() Span
	node()
}

// PositionOf builds a Position from the start of a token.
func PositionOf(t token.Token) Position {
	return Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// EndPositionOf builds a Position from the end of a token (best-effort:
// exact for single-line tokens, which covers every TOON token kind
// except multi-line quoted strings).
func EndPositionOf(t token.Token) Position {
	return Position{Line: t.Line, Column: t.Column + len(t.Lexeme), Offset: t.Offset + t.Length}
}

// SpanOf builds a Span covering exactly one token.
func SpanOf(t token.Token) Span {
	return Span{Start: PositionOf(t), End: EndPositionOf(t)}
}

// Document is the root node of the AST: an ordered sequence of
// top-level properties.
type Document struct {
	Properties []*Property
	Sp         Span
}

func (d *Document) node()      {}
func (d *Document) Span() Span { return d.Sp }

// Property is a single `key: value` pair, either at document level or
// nested inside an Object.
type Property struct {
	Key    string
	Value  Node
	Indent int
	Sp     Span
}

func (p *Property) node()      {}
func (p *Property) Span() Span { return p.Sp }

// Object is an ordered sequence of properties nested under a parent
// property (no array notation on the header).
type Object struct {
	Properties []*Property
	Sp         Span
}

func (o *Object) node()      {}
func (o *Object) Span() Span { return o.Sp }

// Array is a declared-size sequence of element nodes, either inline
// or expanded (list-item) form. DeclaredSize is -1 when the header
// carried no `[N]`.
type Array struct {
	DeclaredSize int
	Delimiter    Delimiter
	Elements     []Node
	Sp           Span
}

func (a *Array) node()      {}
func (a *Array) Span() Span { return a.Sp }

// TableArray is an array of uniform records: a declared size, a
// shared field-name schema, and one row (ordered scalar cells) per
// record.
type TableArray struct {
	DeclaredSize int
	Delimiter    Delimiter
	Schema       []string
	Rows         [][]Node
	Sp           Span
}

func (t *TableArray) node()      {}
func (t *TableArray) Span() Span { return t.Sp }

// Delimiter identifies which character separates cells/elements
// within an array or table-array scope.
type Delimiter int

const (
	// CommaDelimiter is the document default.
	CommaDelimiter Delimiter = iota
	// TabDelimiter is declared with a literal tab inside `[N<TAB>]`.
	TabDelimiter
	// PipeDelimiter is declared with `[N|]`.
	PipeDelimiter
)

// Rune returns the delimiter's separator character.
func (d Delimiter) Rune() rune {
	switch d {
	case TabDelimiter:
		return '\t'
	case PipeDelimiter:
		return '|'
	default:
		return ','
	}
}

// String returns the delimiter's separator character as a string.
func (d Delimiter) String() string {
	return string(d.Rune())
}

// StringValue is a decoded string scalar.
type StringValue struct {
	Decoded string
	Raw     string
	Sp      Span
}

func (s *StringValue) node()      {}
func (s *StringValue) Span() Span { return s.Sp }

// NumberValue is a numeric scalar, wide-precision (float64) with an
// IsInteger flag recording whether the raw lexeme had no fractional
// part or exponent.
type NumberValue struct {
	Value     float64
	IsInteger bool
	Raw       string
	Sp        Span
}

func (n *NumberValue) node()      {}
func (n *NumberValue) Span() Span { return n.Sp }

// BooleanValue is a `true`/`false` scalar.
type BooleanValue struct {
	Value bool
	Raw   string
	Sp    Span
}

func (b *BooleanValue) node()      {}
func (b *BooleanValue) Span() Span { return b.Sp }

// NullValue is a `null` scalar.
type NullValue struct {
	Raw string
	Sp  Span
}

func (n *NullValue) node()      {}
func (n *NullValue) Span() Span { return n.Sp }
