// Package parser implements the TOON parser: a resilient recursive
// descent parser that consumes a token stream, tracks a delimiter
// stack and an indentation model, and produces a Document AST plus an
// ordered list of recorded diagnostics. Errors never unwind — every
// recoverable failure is recorded and parsing continues with a
// best-effort recovery, following the panic-mode strategy the teacher
// compiler's parser documents for itself.
package parser

import (
	"fmt"
	"strings"

	"github.com/madskristensen/toon/internal/toon/ast"
	"github.com/madskristensen/toon/internal/toon/lexer"
	"github.com/madskristensen/toon/internal/toon/token"
	"github.com/madskristensen/toon/internal/toon/tooerr"
)

// Options bounds parser resource usage (spec §6).
type Options struct {
	MaxNestingDepth int
	// MaxArraySize is stored (zero is replaced by the default) but no
	// declared or parsed array size is checked against it.
	MaxArraySize int
}

// DefaultOptions returns the spec §6 defaults relevant to the parser.
func DefaultOptions() Options {
	return Options{MaxNestingDepth: 100, MaxArraySize: 1_000_000}
}

// Parser transforms a TOON token stream into a Document AST.
type Parser struct {
	tokens     []token.Token
	pos        int
	diags      tooerr.Diagnostics
	delimStack []ast.Delimiter
	opts       Options
}

// New creates a Parser for the given token stream and options.
func New(tokens []token.Token, opts Options) *Parser {
	if opts.MaxNestingDepth <= 0 {
		opts.MaxNestingDepth = DefaultOptions().MaxNestingDepth
	}
	if opts.MaxArraySize <= 0 {
		opts.MaxArraySize = DefaultOptions().MaxArraySize
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens, token.Token{Kind: token.EOF})
	}
	return &Parser{
		tokens:     tokens,
		delimStack: []ast.Delimiter{ast.CommaDelimiter},
		opts:       opts,
	}
}

// Parse parses the token stream and returns the Document AST plus any
// recorded diagnostics.
func (p *Parser) Parse() (*ast.Document, tooerr.Diagnostics) {
	doc := &ast.Document{}

	p.skipBlankLines()
	startTok := p.peek()
	if p.isAtEnd() {
		doc.Sp = ast.SpanOf(startTok)
		return doc, p.diags
	}

	indent := p.currentIndent()
	doc.Properties = p.parseProperties(indent, 0)
	doc.Sp = spanFromProps(doc.Properties, startTok)
	return doc, p.diags
}

// parseProperties parses a run of sibling properties, all at the
// given indentation column, stopping (without consuming) at the first
// token whose column is less than indent.
func (p *Parser) parseProperties(indent, depth int) []*ast.Property {
	if depth > p.opts.MaxNestingDepth {
		p.errorAtCurrent(tooerr.NestingTooDeep, "nesting exceeds max_nesting_depth")
		return nil
	}

	var props []*ast.Property
	lastPos := -1
	for {
		p.skipBlankLines()
		if p.isAtEnd() {
			break
		}
		if p.pos == lastPos {
			p.forceAdvance("parseProperties")
			continue
		}
		lastPos = p.pos

		col := p.currentIndent()
		if col < indent {
			break
		}
		if col > indent {
			p.errorAtCurrent(tooerr.UnexpectedIndentation, "unexpected indentation")
			p.skipCurrentLine()
			continue
		}

		if prop := p.parseProperty(indent, depth); prop != nil {
			props = append(props, prop)
		}
	}
	return props
}

// parseProperty parses one `key [notation]? {schema}?: value` line
// (plus whatever indented block follows it).
func (p *Parser) parseProperty(indent, depth int) *ast.Property {
	keyTok := p.peek()
	if keyTok.Kind != token.Identifier && keyTok.Kind != token.String {
		p.errorAtCurrent(tooerr.ExpectedPropertyKey, "expected a property key")
		p.skipCurrentLine()
		return nil
	}
	p.advance()
	key := keyTok.Value

	declaredSize := -1
	delim := ast.CommaDelimiter
	hasArrayNotation := false
	if p.check(token.LeftBracket) {
		hasArrayNotation = true
		declaredSize, delim = p.parseArrayNotation()
	}

	p.skipInlineTrivia()
	var schema []string
	hasSchema := false
	if p.check(token.LeftBrace) {
		hasSchema = true
		p.advance()
		schema = p.parseSchema()
	}

	p.skipInlineTrivia()
	if !p.match(token.Colon) {
		p.errorAtCurrent(tooerr.ExpectedColon, "expected ':' after property key")
		p.skipCurrentLine()
		return nil
	}

	propStart := ast.PositionOf(keyTok)
	p.skipInlineTrivia()
	inline := !p.check(token.Newline) && !p.isAtEnd()

	var value ast.Node
	switch {
	case hasArrayNotation && hasSchema:
		if inline {
			p.errorAtCurrent(tooerr.UnexpectedToken, "a table array header must be followed by a newline")
			p.skipCurrentLine()
			value = &ast.TableArray{DeclaredSize: declaredSize, Schema: schema, Delimiter: delim, Sp: ast.SpanOf(keyTok)}
		} else {
			p.consumeNewline()
			childIndent := p.advanceToNextContentIndent()
			if childIndent > indent {
				value = p.parseTableArrayBody(declaredSize, delim, schema, childIndent, depth+1, keyTok)
			} else {
				if declaredSize > 0 {
					p.recordSizeMismatch(tooerr.TableSizeMismatch, declaredSize, 0, keyTok, "row")
				}
				value = &ast.TableArray{DeclaredSize: declaredSize, Schema: schema, Delimiter: delim, Sp: ast.SpanOf(keyTok)}
			}
		}
	case hasArrayNotation && !hasSchema && inline:
		value = p.parseInlineArray(declaredSize, delim, keyTok)
	case hasArrayNotation && !hasSchema && !inline:
		p.consumeNewline()
		childIndent := p.advanceToNextContentIndent()
		if childIndent > indent {
			value = p.parseExpandedArray(declaredSize, delim, childIndent, depth+1, keyTok)
		} else {
			p.validateArraySize(declaredSize, 0, keyTok)
			value = &ast.Array{DeclaredSize: declaredSize, Delimiter: delim, Sp: ast.SpanOf(keyTok)}
		}
	case !hasArrayNotation && inline:
		value = p.parseScalarValue(keyTok)
	default: // nested object
		p.consumeNewline()
		childIndent := p.advanceToNextContentIndent()
		if childIndent > indent {
			props := p.parseProperties(childIndent, depth+1)
			value = &ast.Object{Properties: props, Sp: spanFromProps(props, keyTok)}
		} else {
			value = &ast.Object{Sp: ast.SpanOf(keyTok)}
		}
	}

	return &ast.Property{Key: key, Value: value, Indent: indent, Sp: ast.Span{Start: propStart, End: p.lastEndPosition()}}
}

// parseArrayNotation parses `[` Number? delimiter-marker? `]`.
func (p *Parser) parseArrayNotation() (declaredSize int, delim ast.Delimiter) {
	declaredSize = -1
	delim = ast.CommaDelimiter

	p.advance() // '['
	p.skipInlineTrivia()
	if p.check(token.Number) {
		n := p.advance()
		if v, _, err := lexer.ParseNumberLiteral(n.Lexeme); err == nil {
			declaredSize = int(v)
		}
	}
	if p.peekWhitespaceHasTab() {
		delim = ast.TabDelimiter
		p.advance()
	}
	p.skipInlineTrivia()
	if delim == ast.CommaDelimiter && p.check(token.Pipe) {
		delim = ast.PipeDelimiter
		p.advance()
	}
	p.skipInlineTrivia()
	if !p.match(token.RightBracket) {
		p.errorAtCurrent(tooerr.ExpectedRightBracket, "expected ']' in array notation")
	}
	return declaredSize, delim
}

// parseSchema parses `field (delim field)*` up to the closing `}`.
func (p *Parser) parseSchema() []string {
	var fields []string
	p.skipInlineTrivia()
	if p.check(token.RightBrace) {
		p.advance()
		return fields
	}
	for {
		p.skipInlineTrivia()
		tok := p.peek()
		if tok.Kind != token.Identifier && tok.Kind != token.String {
			p.errorAtCurrent(tooerr.ExpectedFieldName, "expected a field name in schema")
			break
		}
		p.advance()
		fields = append(fields, tok.Value)
		p.skipInlineTrivia()
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.skipInlineTrivia()
	if !p.match(token.RightBrace) {
		p.errorAtCurrent(tooerr.ExpectedRightBrace, "expected '}' after schema")
	}
	return fields
}

// parseScalarValue implements spec §4.2 "Scalar parsing": outside any
// array scope, consecutive value tokens on the same line are joined
// by a single space.
func (p *Parser) parseScalarValue(fallback token.Token) ast.Node {
	var parts []string
	var first, last token.Token
	count := 0

	for {
		p.skipInlineTrivia()
		if p.isAtEnd() || p.check(token.Newline) || !p.peek().IsValueToken() {
			break
		}
		tok := p.advance()
		if count == 0 {
			first = tok
		}
		last = tok
		parts = append(parts, tok.Value)
		count++
	}

	switch count {
	case 0:
		p.errorAtCurrent(tooerr.UnexpectedEndOfInput, "expected a value")
		return &ast.NullValue{Sp: ast.SpanOf(fallback)}
	case 1:
		return scalarNodeFromToken(first)
	default:
		joined := strings.Join(parts, " ")
		return &ast.StringValue{Decoded: joined, Raw: joined, Sp: ast.Span{Start: ast.PositionOf(first), End: ast.EndPositionOf(last)}}
	}
}

// parseInlineArray parses delimiter-separated elements on the header
// line itself.
func (p *Parser) parseInlineArray(declaredSize int, delim ast.Delimiter, keyTok token.Token) *ast.Array {
	p.pushDelim(delim)
	defer p.popDelim()

	var elements []ast.Node
	p.skipInlineTrivia()
	if !p.isAtEnd() && !p.check(token.Newline) {
		for {
			p.skipInlineTrivia()
			elements = append(elements, p.parseCellValue())
			p.skipInlineTrivia()
			if p.matchDelimiterToken(delim) {
				continue
			}
			break
		}
	}

	p.validateArraySize(declaredSize, len(elements), keyTok)
	return &ast.Array{DeclaredSize: declaredSize, Delimiter: delim, Elements: elements, Sp: spanFromElements(elements, keyTok)}
}

// parseCellValue parses a single-token cell: inside an array scope,
// scalar parsing is single-token-only (spec §4.2).
func (p *Parser) parseCellValue() ast.Node {
	tok := p.peek()
	if !tok.IsValueToken() {
		p.errorAtCurrent(tooerr.UnexpectedToken, "expected an array element")
		return &ast.NullValue{Sp: ast.SpanOf(tok)}
	}
	p.advance()
	return scalarNodeFromToken(tok)
}

// parseExpandedArray parses `-`-prefixed list items at childIndent.
func (p *Parser) parseExpandedArray(declaredSize int, delim ast.Delimiter, childIndent, depth int, keyTok token.Token) *ast.Array {
	if depth > p.opts.MaxNestingDepth {
		p.errorAtCurrent(tooerr.NestingTooDeep, "nesting exceeds max_nesting_depth")
		return &ast.Array{DeclaredSize: declaredSize, Delimiter: delim, Sp: ast.SpanOf(keyTok)}
	}

	var elements []ast.Node
	lastPos := -1
	for {
		p.skipBlankLines()
		if p.isAtEnd() {
			break
		}
		if p.pos == lastPos {
			p.forceAdvance("parseExpandedArray")
			continue
		}
		lastPos = p.pos

		col := p.currentIndent()
		if col < childIndent {
			break
		}
		if col > childIndent {
			p.errorAtCurrent(tooerr.UnexpectedIndentation, "unexpected indentation in list item")
			p.skipCurrentLine()
			continue
		}

		tok := p.peek()
		if !isListMarker(tok) {
			p.errorAtCurrent(tooerr.UnexpectedToken, "expected '-' list item marker")
			p.skipCurrentLine()
			continue
		}
		p.advance()
		elements = append(elements, p.parseListItemValue(childIndent, depth))
	}

	p.validateArraySize(declaredSize, len(elements), keyTok)
	return &ast.Array{DeclaredSize: declaredSize, Delimiter: delim, Elements: elements, Sp: spanFromElements(elements, keyTok)}
}

// parseListItemValue parses what follows a `-` marker: a nested
// inline array, a scalar, or (by continuation at a deeper indent) an
// object.
func (p *Parser) parseListItemValue(parentIndent, depth int) ast.Node {
	p.skipInlineTrivia()

	if p.check(token.LeftBracket) {
		declaredSize, delim := p.parseArrayNotation()
		p.skipInlineTrivia()
		marker := p.peek()
		if !p.match(token.Colon) {
			p.errorAtCurrent(tooerr.ExpectedColon, "expected ':' after nested array notation")
			return &ast.NullValue{Sp: ast.SpanOf(marker)}
		}
		return p.parseInlineArray(declaredSize, delim, marker)
	}

	if p.isAtEnd() || p.check(token.Newline) {
		marker := p.peek()
		p.consumeNewline()
		lineIndent := p.advanceToNextContentIndent()
		if lineIndent > parentIndent {
			props := p.parseProperties(lineIndent, depth+1)
			return &ast.Object{Properties: props, Sp: spanFromProps(props, marker)}
		}
		return &ast.Object{Sp: ast.SpanOf(marker)}
	}

	return p.parseScalarValue(p.peek())
}

// parseTableArrayBody parses the schema-declared rows of a table
// array.
func (p *Parser) parseTableArrayBody(declaredSize int, delim ast.Delimiter, schema []string, childIndent, depth int, keyTok token.Token) *ast.TableArray {
	if depth > p.opts.MaxNestingDepth {
		p.errorAtCurrent(tooerr.NestingTooDeep, "nesting exceeds max_nesting_depth")
		return &ast.TableArray{DeclaredSize: declaredSize, Schema: schema, Delimiter: delim, Sp: ast.SpanOf(keyTok)}
	}

	p.pushDelim(delim)
	defer p.popDelim()

	var rows [][]ast.Node
	lastPos := -1
	for {
		p.skipBlankLines()
		if p.isAtEnd() {
			break
		}
		if p.pos == lastPos {
			p.forceAdvance("parseTableArrayBody")
			continue
		}
		lastPos = p.pos

		col := p.currentIndent()
		if col < childIndent {
			break
		}
		if col > childIndent {
			p.errorAtCurrent(tooerr.UnexpectedIndentation, "unexpected indentation in table row")
			p.skipCurrentLine()
			continue
		}

		rows = append(rows, p.parseTableRow(schema, delim))
	}

	if declaredSize >= 0 && len(rows) != declaredSize {
		p.recordSizeMismatch(tooerr.TableSizeMismatch, declaredSize, len(rows), keyTok, "row")
	}
	for _, row := range rows {
		if len(row) != len(schema) {
			p.recordSizeMismatch(tooerr.TableRowFieldMismatch, len(schema), len(row), keyTok, "field")
		}
	}

	return &ast.TableArray{DeclaredSize: declaredSize, Schema: schema, Delimiter: delim, Rows: rows, Sp: spanFromRows(rows, keyTok)}
}

// parseTableRow parses exactly len(schema) delimiter-separated cells,
// except single-field tables, which consume the whole row as one
// cell without looking for a delimiter.
func (p *Parser) parseTableRow(schema []string, delim ast.Delimiter) []ast.Node {
	defer p.skipCurrentLine()

	if len(schema) == 1 {
		return []ast.Node{p.parseRowCell(delim, true)}
	}

	var cells []ast.Node
	for i := 0; i < len(schema); i++ {
		cells = append(cells, p.parseRowCell(delim, false))
		if i < len(schema)-1 {
			p.skipInlineTrivia()
			if !p.matchDelimiterToken(delim) {
				p.errorAtCurrent(tooerr.ExpectedDelimiter, "expected a delimiter between row cells")
				break
			}
		}
	}
	return cells
}

// parseRowCell consumes a run of value tokens (joined by a single
// space, same rule as parseScalarValue) ending at the next delimiter,
// newline, or end of input. When singleField is true the active
// delimiter never ends the cell early.
func (p *Parser) parseRowCell(delim ast.Delimiter, singleField bool) ast.Node {
	var parts []string
	var first, last token.Token
	count := 0

	for {
		for p.check(token.Whitespace) && (singleField || !p.atDelimiterBoundary(delim)) {
			p.advance()
		}
		if p.isAtEnd() || p.check(token.Newline) {
			break
		}
		if !singleField && p.atDelimiterBoundary(delim) {
			break
		}
		if !p.peek().IsValueToken() {
			break
		}
		tok := p.advance()
		if count == 0 {
			first = tok
		}
		last = tok
		parts = append(parts, tok.Value)
		count++
	}

	switch count {
	case 0:
		tok := p.peek()
		p.errorAtCurrent(tooerr.UnexpectedToken, "expected a table cell value")
		return &ast.NullValue{Sp: ast.SpanOf(tok)}
	case 1:
		return scalarNodeFromToken(first)
	default:
		joined := strings.Join(parts, " ")
		return &ast.StringValue{Decoded: joined, Raw: joined, Sp: ast.Span{Start: ast.PositionOf(first), End: ast.EndPositionOf(last)}}
	}
}

// Delimiter handling.

func (p *Parser) pushDelim(d ast.Delimiter) { p.delimStack = append(p.delimStack, d) }

func (p *Parser) popDelim() {
	if len(p.delimStack) > 1 {
		p.delimStack = p.delimStack[:len(p.delimStack)-1]
	}
}

func (p *Parser) atDelimiterBoundary(delim ast.Delimiter) bool {
	switch delim {
	case ast.PipeDelimiter:
		return p.check(token.Pipe)
	case ast.TabDelimiter:
		return p.check(token.Whitespace) && tokenHasTab(p.peek())
	default:
		return p.check(token.Comma)
	}
}

func (p *Parser) matchDelimiterToken(delim ast.Delimiter) bool {
	if !p.atDelimiterBoundary(delim) {
		return false
	}
	p.advance()
	return true
}

func tokenHasTab(t token.Token) bool { return strings.ContainsRune(t.Lexeme, '\t') }

func (p *Parser) peekWhitespaceHasTab() bool {
	return p.check(token.Whitespace) && tokenHasTab(p.peek())
}

func isListMarker(t token.Token) bool {
	return (t.Kind == token.String || t.Kind == token.Identifier) && t.Lexeme == "-"
}

// scalarNodeFromToken builds the scalar AST variant matching a single
// value token's kind.
func scalarNodeFromToken(tok token.Token) ast.Node {
	switch tok.Kind {
	case token.Number:
		value, isInt, err := lexer.ParseNumberLiteral(tok.Lexeme)
		if err != nil {
			return &ast.StringValue{Decoded: tok.Lexeme, Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
		}
		return &ast.NumberValue{Value: value, IsInteger: isInt, Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
	case token.True:
		return &ast.BooleanValue{Value: true, Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
	case token.False:
		return &ast.BooleanValue{Value: false, Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
	case token.Null:
		return &ast.NullValue{Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
	default: // String, Identifier
		return &ast.StringValue{Decoded: tok.Value, Raw: tok.Lexeme, Sp: ast.SpanOf(tok)}
	}
}

// Cursor and trivia primitives.

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// skipInlineTrivia skips Whitespace/Comment tokens only; it never
// crosses a Newline. While the active delimiter is tab, a whitespace
// run containing a tab is a delimiter and is left in place.
func (p *Parser) skipInlineTrivia() {
	for p.check(token.Whitespace) || p.check(token.Comment) {
		if p.delimStack[len(p.delimStack)-1] == ast.TabDelimiter && p.peekWhitespaceHasTab() {
			return
		}
		p.advance()
	}
}

// skipBlankLines skips inline trivia and any number of blank lines,
// leaving the cursor at the first substantive token of the next
// nonblank line (or at EOF). A line's leading whitespace that mixes
// tabs and spaces is recorded as InconsistentIndentation.
func (p *Parser) skipBlankLines() {
	for {
		if tok := p.peek(); tok.Kind == token.Whitespace && tok.Column == 1 &&
			strings.ContainsRune(tok.Lexeme, ' ') && strings.ContainsRune(tok.Lexeme, '\t') &&
			p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind != token.Newline && p.tokens[p.pos+1].Kind != token.EOF {
			p.errorAtCurrent(tooerr.InconsistentIndentation, "indentation mixes tabs and spaces")
		}
		p.skipInlineTrivia()
		if p.check(token.Newline) {
			p.advance()
			continue
		}
		break
	}
}

// consumeNewline skips inline trivia and, if present, one Newline.
func (p *Parser) consumeNewline() {
	p.skipInlineTrivia()
	if p.check(token.Newline) {
		p.advance()
	}
}

// skipCurrentLine advances past the rest of the current line,
// consuming its terminating Newline if present. Used for error
// recovery and to close out a table row.
func (p *Parser) skipCurrentLine() {
	for !p.isAtEnd() && !p.check(token.Newline) {
		p.advance()
	}
	if p.check(token.Newline) {
		p.advance()
	}
}

// currentIndent returns the 0-based indentation column of the current
// token. Callers must have just called skipBlankLines.
func (p *Parser) currentIndent() int { return p.peek().Column - 1 }

// advanceToNextContentIndent skips blank lines and returns the
// indentation column of the next substantive line, or -1 if there is
// none (end of input).
func (p *Parser) advanceToNextContentIndent() int {
	p.skipBlankLines()
	if p.isAtEnd() {
		return -1
	}
	return p.currentIndent()
}

func (p *Parser) lastEndPosition() ast.Position {
	if p.pos == 0 {
		return ast.Position{}
	}
	return ast.EndPositionOf(p.tokens[p.pos-1])
}

// Error recording and recovery.

func (p *Parser) errorAtCurrent(code tooerr.Code, msg string) {
	p.errorAtTok(code, msg, p.peek())
}

func (p *Parser) errorAtTok(code tooerr.Code, msg string, tok token.Token) {
	p.diags = append(p.diags, tooerr.New(code, msg, tooerr.Position{
		Line: tok.Line, Column: tok.Column, Offset: tok.Offset, Length: len(tok.Lexeme),
	}))
}

func (p *Parser) forceAdvance(ctx string) {
	p.errorAtCurrent(tooerr.InfiniteLoopDetected, "internal: no progress made in "+ctx+"; forcing advance")
	if !p.isAtEnd() {
		p.advance()
	}
}

func (p *Parser) validateArraySize(declared, actual int, keyTok token.Token) {
	if declared < 0 || declared == actual {
		return
	}
	msg := fmt.Sprintf("declared array size %d does not match %d parsed element(s)%s",
		declared, actual, sizeMismatchHint(declared, actual, "element"))
	p.errorAtTok(tooerr.ArraySizeMismatch, msg, keyTok)
}

func (p *Parser) recordSizeMismatch(code tooerr.Code, declared, actual int, keyTok token.Token, noun string) {
	msg := fmt.Sprintf("declared %s count %d does not match %d actual%s",
		noun, declared, actual, sizeMismatchHint(declared, actual, noun))
	p.errorAtTok(code, msg, keyTok)
}

func sizeMismatchHint(declared, actual int, noun string) string {
	switch {
	case actual == 0:
		return fmt.Sprintf(" (no %ss found; remove the declared size or add content)", noun)
	case actual < declared:
		return fmt.Sprintf(" (missing %d %s(s); add them or adjust the declared size)", declared-actual, noun)
	default:
		return fmt.Sprintf(" (%d extra %s(s); remove them or adjust the declared size)", actual-declared, noun)
	}
}

// Span helpers.

func spanFromProps(props []*ast.Property, fallback token.Token) ast.Span {
	start := ast.PositionOf(fallback)
	end := start
	if len(props) > 0 {
		end = props[len(props)-1].Span().End
	}
	return ast.Span{Start: start, End: end}
}

func spanFromElements(elements []ast.Node, fallback token.Token) ast.Span {
	start := ast.PositionOf(fallback)
	end := start
	if len(elements) > 0 {
		end = elements[len(elements)-1].Span().End
	}
	return ast.Span{Start: start, End: end}
}

func spanFromRows(rows [][]ast.Node, fallback token.Token) ast.Span {
	start := ast.PositionOf(fallback)
	end := start
	if len(rows) > 0 {
		if last := rows[len(rows)-1]; len(last) > 0 {
			end = last[len(last)-1].Span().End
		}
	}
	return ast.Span{Start: start, End: end}
}
