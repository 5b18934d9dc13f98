// Package encoder implements the TOON encoder (spec §5): it turns a
// decoded JSON-like value tree into canonical TOON text. The encoder
// never fails on a well-formed value tree except when the document
// root is not object-shaped — TOON documents are always a sequence of
// top-level properties.
package encoder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/madskristensen/toon/internal/jsonc"
	"github.com/madskristensen/toon/internal/toon/ast"
)

// Options controls rendering choices the spec leaves to the encoder.
type Options struct {
	// IndentWidth is the number of spaces per nesting level. List-item
	// markers ("- ") are two characters wide, so IndentWidth other
	// than 2 will misalign continuation lines of list-item objects;
	// 2 is the only width exercised by this implementation.
	IndentWidth int
	// Delimiter is the separator used for every array/table array in
	// the document. The spec allows per-array delimiter choice; this
	// encoder applies one delimiter document-wide for simplicity.
	Delimiter ast.Delimiter
	// PreferTables renders arrays of uniform flat-scalar objects as
	// table arrays (shared schema) instead of expanded list items.
	PreferTables bool
}

// DefaultOptions returns the encoder's default rendering choices.
func DefaultOptions() Options {
	return Options{IndentWidth: 2, Delimiter: ast.CommaDelimiter, PreferTables: true}
}

// Encoder renders decoded value trees as TOON text.
type Encoder struct {
	opts Options
}

// New creates an Encoder with the given options.
func New(opts Options) *Encoder {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	return &Encoder{opts: opts}
}

// Encode renders root (which must be object-shaped — map[string]any
// or jsonc.Object) as a complete TOON document: LF-separated lines,
// no trailing newline.
func Encode(root any, opts Options) (string, error) { return New(opts).Encode(root) }

// EncodeValue renders any root value (object, array, or scalar) as
// TOON text. Supplements the spec's object-rooted Encode for callers
// that just want a value rendered, such as a single table-array cell
// preview.
func EncodeValue(root any, opts Options) (string, error) { return New(opts).EncodeValue(root) }

// Encode renders root as a complete TOON document.
func (e *Encoder) Encode(root any) (string, error) {
	members, ok := objectMembers(root)
	if !ok {
		return "", fmt.Errorf("encoder: document root must be an object, got %T", root)
	}
	return strings.Join(e.writeProperties(members, 0), "\n"), nil
}

// EncodeValue renders any root value as TOON text.
func (e *Encoder) EncodeValue(root any) (string, error) {
	if members, ok := objectMembers(root); ok {
		return strings.Join(e.writeProperties(members, 0), "\n"), nil
	}
	if elements, ok := arrayElements(root); ok {
		return strings.Join(e.rootArrayLines(elements), "\n"), nil
	}
	return e.scalarText(root), nil
}

type member struct {
	key   string
	value any
}

// objectMembers returns v's members in document order, or false if v
// is not object-shaped. map[string]any is supported for convenience,
// but Go maps carry no order, so its members are sorted by key —
// callers that need a specific key order should decode with
// internal/jsonc, whose Object preserves it.
func objectMembers(v any) ([]member, bool) {
	switch t := v.(type) {
	case jsonc.Object:
		members := make([]member, len(t))
		for i, m := range t {
			members[i] = member{m.Key, m.Value}
		}
		return members, true
	case *jsonc.Object:
		if t == nil {
			return nil, true
		}
		return objectMembers(*t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]member, len(keys))
		for i, k := range keys {
			members[i] = member{k, t[k]}
		}
		return members, true
	default:
		return nil, false
	}
}

func arrayElements(v any) ([]any, bool) {
	elements, ok := v.([]any)
	return elements, ok
}

func lookupMember(members []member, key string) any {
	for _, m := range members {
		if m.key == key {
			return m.value
		}
	}
	return nil
}

// writeProperties renders each member as one or more lines at the
// given indentation depth.
func (e *Encoder) writeProperties(members []member, depth int) []string {
	var lines []string
	for _, m := range members {
		lines = append(lines, e.propertyLines(m.key, m.value, depth)...)
	}
	return lines
}

func (e *Encoder) propertyLines(key string, value any, depth int) []string {
	indent := e.indentAt(depth)
	qk := quoteKey(key)

	if elements, ok := arrayElements(value); ok {
		return e.arrayPropertyLines(indent, qk, elements, depth)
	}
	if members, ok := objectMembers(value); ok {
		if len(members) == 0 {
			return []string{indent + qk + ":"}
		}
		lines := []string{indent + qk + ":"}
		return append(lines, e.writeProperties(members, depth+1)...)
	}
	return []string{indent + qk + ": " + e.scalarText(value)}
}

// arrayPropertyLines chooses among the three array renderings: inline
// (all scalars), table (uniform flat-scalar objects), or expanded
// list items (anything else).
func (e *Encoder) arrayPropertyLines(indent, quotedKey string, elements []any, depth int) []string {
	delim := e.opts.Delimiter
	marker := delimiterMarker(delim)

	if len(elements) == 0 {
		return []string{fmt.Sprintf("%s%s[0%s]:", indent, quotedKey, marker)}
	}

	if allScalars(elements) {
		cells := make([]string, len(elements))
		for i, el := range elements {
			cells[i] = e.scalarText(el)
		}
		return []string{fmt.Sprintf("%s%s[%d%s]: %s", indent, quotedKey, len(elements), marker, strings.Join(cells, delim.String()))}
	}

	if e.opts.PreferTables {
		if schema, ok := uniformSchema(elements); ok {
			header := fmt.Sprintf("%s%s[%d%s]{%s}:", indent, quotedKey, len(elements), marker, strings.Join(quoteFields(schema), ","))
			lines := []string{header}
			rowIndent := indent + e.pad()
			for _, el := range elements {
				members, _ := objectMembers(el)
				cells := make([]string, len(schema))
				for i, field := range schema {
					cells[i] = e.scalarText(lookupMember(members, field))
				}
				lines = append(lines, rowIndent+strings.Join(cells, delim.String()))
			}
			return lines
		}
	}

	lines := []string{fmt.Sprintf("%s%s[%d%s]:", indent, quotedKey, len(elements), marker)}
	for _, el := range elements {
		lines = append(lines, e.listItemLines(el, depth+1)...)
	}
	return lines
}

// listItemLines renders one `-`-prefixed expanded-array element.
// Object items place their first property on the marker line and
// align continuation properties under it; this only lines up visually
// when IndentWidth is 2 (the marker "- " is two characters).
func (e *Encoder) listItemLines(value any, depth int) []string {
	markerIndent := e.indentAt(depth)

	if members, ok := objectMembers(value); ok {
		if len(members) == 0 {
			return []string{markerIndent + "-"}
		}
		inner := e.writeProperties(members, 0)
		lines := []string{markerIndent + "- " + inner[0]}
		for _, l := range inner[1:] {
			lines = append(lines, markerIndent+e.pad()+l)
		}
		return lines
	}

	if elements, ok := arrayElements(value); ok {
		delim := e.opts.Delimiter
		marker := delimiterMarker(delim)
		if len(elements) == 0 {
			return []string{fmt.Sprintf("%s- [0%s]:", markerIndent, marker)}
		}
		cells := make([]string, len(elements))
		for i, el := range elements {
			cells[i] = e.scalarText(el)
		}
		return []string{fmt.Sprintf("%s- [%d%s]: %s", markerIndent, len(elements), marker, strings.Join(cells, delim.String()))}
	}

	return []string{markerIndent + "- " + e.scalarText(value)}
}

func (e *Encoder) rootArrayLines(elements []any) []string {
	if len(elements) == 0 {
		return []string{""}
	}
	if allScalars(elements) {
		cells := make([]string, len(elements))
		for i, el := range elements {
			cells[i] = e.scalarText(el)
		}
		return []string{strings.Join(cells, e.opts.Delimiter.String())}
	}
	var lines []string
	for _, el := range elements {
		lines = append(lines, e.listItemLines(el, 0)...)
	}
	return lines
}

func (e *Encoder) pad() string { return strings.Repeat(" ", e.opts.IndentWidth) }

func (e *Encoder) indentAt(depth int) string { return strings.Repeat(e.pad(), depth) }

// uniformSchema reports whether every element of elements is an
// object with the same ordered set of flat-scalar fields, returning
// that shared field order.
func uniformSchema(elements []any) ([]string, bool) {
	first, ok := objectMembers(elements[0])
	if !ok || len(first) == 0 {
		return nil, false
	}
	schema := make([]string, len(first))
	for i, m := range first {
		if !isScalar(m.value) {
			return nil, false
		}
		schema[i] = m.key
	}
	for _, el := range elements[1:] {
		members, ok := objectMembers(el)
		if !ok || len(members) != len(schema) {
			return nil, false
		}
		for i, m := range members {
			if m.key != schema[i] || !isScalar(m.value) {
				return nil, false
			}
		}
	}
	return schema, true
}

func allScalars(elements []any) bool {
	for _, el := range elements {
		if !isScalar(el) {
			return false
		}
	}
	return true
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case bool, string, json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// scalarText renders one scalar value as its canonical TOON lexeme.
func (e *Encoder) scalarText(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return quoteStringValue(v)
	default:
		if s, ok := canonicalNumber(value); ok {
			return s
		}
		return quoteStringValue(fmt.Sprintf("%v", value))
	}
}

// canonicalNumber formats a numeric value per spec §5's number
// canonicalization rule: no exponents, no trailing fractional zeros,
// "-0" collapses to "0". decimal.Decimal is backed by big.Int, so
// integers of arbitrary size survive exactly instead of being rounded
// through float64.
func canonicalNumber(value any) (string, bool) {
	var dec decimal.Decimal
	var err error

	switch v := value.(type) {
	case json.Number:
		dec, err = decimal.NewFromString(string(v))
	case float64:
		dec = decimal.NewFromFloat(v)
	case float32:
		dec = decimal.NewFromFloat(float64(v))
	case int:
		dec = decimal.NewFromInt(int64(v))
	case int8:
		dec = decimal.NewFromInt(int64(v))
	case int16:
		dec = decimal.NewFromInt(int64(v))
	case int32:
		dec = decimal.NewFromInt(int64(v))
	case int64:
		dec = decimal.NewFromInt(v)
	case uint, uint8, uint16, uint32, uint64:
		dec, err = decimal.NewFromString(fmt.Sprintf("%d", v))
	default:
		return "", false
	}
	if err != nil {
		return "", false
	}

	s := dec.String()
	if s == "-0" {
		s = "0"
	}
	return s, true
}

// Key/string quoting. A bare word is safe unquoted only if it would
// re-lex as exactly one String or Identifier token — this mirrors
// internal/toon/lexer's own unquoted-string and keyword rules rather
// than re-implementing a separate notion of "safe".
const forbiddenUnquoted = " \t\r\n,:|[]{}#/\"'\\"

func quoteKey(key string) string {
	if !mustQuoteKey(key) {
		return key
	}
	return `"` + escapeString(key) + `"`
}

// mustQuoteKey reports whether key fails spec §5's bare-key grammar
// (`[A-Za-z_][A-Za-z0-9_.]*`) and therefore needs quoting — a narrower
// rule than mustQuote's, since keys never look like numbers or
// keywords but do forbid characters (like `@`) that a bare string
// value would otherwise tolerate.
func mustQuoteKey(key string) bool {
	if key == "" {
		return true
	}
	first := key[0]
	if !(first == '_' || (first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return true
	}
	for i := 1; i < len(key); i++ {
		c := key[i]
		if c == '_' || c == '.' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return true
	}
	return false
}

func quoteFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = quoteKey(f)
	}
	return out
}

func quoteStringValue(s string) string {
	if !mustQuote(s) {
		return s
	}
	return `"` + escapeString(s) + `"`
}

func mustQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if s[0] == '-' {
		return true
	}
	if looksLikeNumber(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(forbiddenUnquoted, s[i]) >= 0 {
			return true
		}
	}
	return false
}

func looksLikeNumber(s string) bool {
	i := 0
	if s[0] == '-' {
		i = 1
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func delimiterMarker(d ast.Delimiter) string {
	switch d {
	case ast.PipeDelimiter:
		return "|"
	case ast.TabDelimiter:
		return "\t"
	default:
		return ""
	}
}
