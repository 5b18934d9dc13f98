// Package toon is the public API of the TOON processor: tokenizing,
// resilient parsing to an AST, and encoding JSON-like values to
// canonical TOON text. It is a thin façade over internal/toon's
// lexer, parser, and encoder packages — application code should
// depend on this package, not on internal/toon directly.
package toon

import (
	"fmt"
	"strings"

	"github.com/madskristensen/toon/internal/jsonc"
	"github.com/madskristensen/toon/internal/toon/ast"
	"github.com/madskristensen/toon/internal/toon/encoder"
	"github.com/madskristensen/toon/internal/toon/lexer"
	"github.com/madskristensen/toon/internal/toon/parser"
	"github.com/madskristensen/toon/internal/toon/token"
	"github.com/madskristensen/toon/internal/toon/tooerr"
)

// DefaultMaxInputSize is spec §6's default bound on source length
// (10,485,760 bytes), enforced by Tokenize and Parse before any
// lexing begins.
const DefaultMaxInputSize = 10 * 1024 * 1024

// Delimiter identifies which character separates array/table-array
// cells. It is an alias of the AST's delimiter type so callers never
// need to import internal/toon/ast directly.
type Delimiter = ast.Delimiter

// The three delimiters TOON arrays and table arrays can declare.
const (
	CommaDelimiter = ast.CommaDelimiter
	TabDelimiter   = ast.TabDelimiter
	PipeDelimiter  = ast.PipeDelimiter
)

// ParseDelimiterName maps a config-friendly name ("comma", "tab",
// "pipe") to a Delimiter, defaulting to CommaDelimiter for any other
// input.
func ParseDelimiterName(name string) Delimiter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tab":
		return TabDelimiter
	case "pipe":
		return PipeDelimiter
	default:
		return CommaDelimiter
	}
}

// Options bounds lexer and parser resource usage (spec §6). Zero
// values are replaced by the package defaults. MaxArraySize is passed
// to the parser, which does not check any array size against it.
type Options struct {
	MaxInputSize    int
	MaxStringLength int
	MaxTokenCount   int
	MaxNestingDepth int
	MaxArraySize    int
}

// DefaultOptions returns the spec's default resource bounds.
func DefaultOptions() Options {
	lexDefaults := lexer.DefaultOptions()
	parseDefaults := parser.DefaultOptions()
	return Options{
		MaxInputSize:    DefaultMaxInputSize,
		MaxStringLength: lexDefaults.MaxStringLength,
		MaxTokenCount:   lexDefaults.MaxTokenCount,
		MaxNestingDepth: parseDefaults.MaxNestingDepth,
		MaxArraySize:    parseDefaults.MaxArraySize,
	}
}

// maxInputSize returns the effective input-size bound, substituting
// the package default for an unset (zero or negative) value.
func (o Options) maxInputSize() int {
	if o.MaxInputSize <= 0 {
		return DefaultMaxInputSize
	}
	return o.MaxInputSize
}

func (o Options) lexerOptions() lexer.Options {
	return lexer.Options{MaxStringLength: o.MaxStringLength, MaxTokenCount: o.MaxTokenCount}
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{MaxNestingDepth: o.MaxNestingDepth, MaxArraySize: o.MaxArraySize}
}

// Status summarizes how much of a Parse call succeeded.
type Status int

const (
	// StatusSuccess: no diagnostics were recorded.
	StatusSuccess Status = iota
	// StatusPartial: diagnostics were recorded, but the parser still
	// recovered at least one top-level property.
	StatusPartial
	// StatusFailure: diagnostics were recorded and no top-level
	// property could be recovered.
	StatusFailure
)

// String returns the status's name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ParseResult is the outcome of parsing a TOON document: the Document
// (possibly partial), the token stream it was built from, and every
// diagnostic recorded along the way. Document and Tokens are nil when
// the source exceeded max_input_size, and in TryParse's result for a
// blank source.
type ParseResult struct {
	Status      Status
	Document    *ast.Document
	Diagnostics tooerr.Diagnostics
	Tokens      []token.Token
}

// inputSizeDiagnostic builds the fail-fast diagnostic for a source
// that exceeds max_input_size (spec §6, §8).
func inputSizeDiagnostic(size, max int) tooerr.Diagnostic {
	return tooerr.New(tooerr.InputSizeExceeded,
		fmt.Sprintf("input size %d bytes exceeds max_input_size (%d bytes)", size, max),
		tooerr.Position{})
}

// Tokenize lexes source into a token stream plus lexical diagnostics,
// without parsing it. A source longer than max_input_size is rejected
// outright with no tokens produced.
func Tokenize(source string, opts Options) ([]token.Token, tooerr.Diagnostics) {
	if max := opts.maxInputSize(); len(source) > max {
		return nil, tooerr.Diagnostics{inputSizeDiagnostic(len(source), max)}
	}
	tokens, diags := lexer.New(source, opts.lexerOptions()).ScanTokens()
	return tokens, tooerr.Diagnostics(diags)
}

// Parse tokenizes and parses source, never returning an error: every
// lexical or structural problem is recorded as a Diagnostic and
// parsing recovers and continues, per spec §4's resilience
// requirement. A source longer than max_input_size fails fast with
// StatusFailure and no document, per spec §6/§8.
func Parse(source string, opts Options) ParseResult {
	if max := opts.maxInputSize(); len(source) > max {
		return ParseResult{Status: StatusFailure, Diagnostics: tooerr.Diagnostics{inputSizeDiagnostic(len(source), max)}}
	}

	tokens, lexDiags := Tokenize(source, opts)
	doc, parseDiags := parser.New(tokens, opts.parserOptions()).Parse()

	diags := make(tooerr.Diagnostics, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)

	status := StatusSuccess
	if diags.HasErrors() {
		if doc != nil && len(doc.Properties) > 0 {
			status = StatusPartial
		} else {
			status = StatusFailure
		}
	}

	return ParseResult{Status: status, Document: doc, Diagnostics: diags, Tokens: tokens}
}

// TryParse parses source and reports whether parsing produced a
// usable result, per spec §6: it returns false only for a blank
// source or a catastrophic failure (the input-size bound exceeded, or
// the parser's infinite-loop watchdog tripping) — never merely because
// the result carries recoverable diagnostics.
func TryParse(source string, opts Options) (bool, ParseResult) {
	if strings.TrimSpace(source) == "" {
		return false, ParseResult{Status: StatusFailure}
	}
	result := Parse(source, opts)
	if result.Diagnostics.Filter(tooerr.InputSizeExceeded, tooerr.InfiniteLoopDetected).HasErrors() {
		return false, result
	}
	return true, result
}

// MustParse parses source and panics if any diagnostic was recorded.
// Supplements TryParse for tests and fixture loading, where a failure
// to parse is a programmer error, not a runtime condition to handle.
func MustParse(source string, opts Options) *ast.Document {
	result := Parse(source, opts)
	if result.Diagnostics.HasErrors() {
		panic(result.Diagnostics.Error())
	}
	return result.Document
}

// EncodeOptions controls TOON rendering choices (spec §5).
type EncodeOptions = encoder.Options

// DefaultEncodeOptions returns the encoder's default rendering
// choices.
func DefaultEncodeOptions() EncodeOptions { return encoder.DefaultOptions() }

// Encode renders an object-shaped value (map[string]any or
// internal/jsonc.Object) as a complete TOON document.
func Encode(value any, opts EncodeOptions) (string, error) {
	return encoder.Encode(value, opts)
}

// EncodeJSON implements spec §6's public `encode(json_text,
// encoder_options?) → string` operation: it decodes jsonText as
// JSON-with-comments (internal/jsonc — // and /* */ comments and
// trailing commas tolerated) and renders the result as canonical TOON
// text.
func EncodeJSON(jsonText string, opts EncodeOptions) (string, error) {
	value, err := jsonc.Decode(jsonText)
	if err != nil {
		return "", fmt.Errorf("toon: decoding JSON input: %w", err)
	}
	return encoder.Encode(value, opts)
}

// EncodeValue renders any value — object, array, or scalar — as TOON
// text. Supplements Encode for callers that don't have a full
// object-rooted document to render.
func EncodeValue(value any, opts EncodeOptions) (string, error) {
	return encoder.EncodeValue(value, opts)
}
