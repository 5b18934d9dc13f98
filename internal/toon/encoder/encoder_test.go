package encoder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/madskristensen/toon/internal/jsonc"
	"github.com/madskristensen/toon/internal/toon/ast"
)

func obj(members ...jsonc.Member) jsonc.Object { return jsonc.Object(members) }

func TestEncode_SimpleScalars(t *testing.T) {
	root := obj(
		jsonc.Member{Key: "name", Value: "Alice"},
		jsonc.Member{Key: "age", Value: int64(30)},
		jsonc.Member{Key: "active", Value: true},
		jsonc.Member{Key: "nickname", Value: nil},
	)
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "name: Alice\nage: 30\nactive: true\nnickname: null"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEncode_NonObjectRootFails(t *testing.T) {
	_, err := Encode([]any{1, 2, 3}, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error encoding a non-object root")
	}
}

func TestEncode_NestedObject(t *testing.T) {
	root := obj(
		jsonc.Member{Key: "address", Value: obj(
			jsonc.Member{Key: "city", Value: "Oslo"},
			jsonc.Member{Key: "zip", Value: "0150"},
		)},
	)
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "0150" starts with a digit, so the encoder quotes it defensively
	// even though it would re-lex fine unquoted (leading-zero strings
	// are reclassified as String tokens by the lexer).
	want := "address:\n  city: Oslo\n  zip: \"0150\""
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEncode_InlineScalarArray(t *testing.T) {
	root := obj(jsonc.Member{Key: "tags", Value: []any{"reading", "gaming", "coding"}})
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "tags[3]: reading,gaming,coding"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEncode_PipeDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = ast.PipeDelimiter
	root := obj(jsonc.Member{Key: "tags", Value: []any{"a", "b"}})
	out, err := Encode(root, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "tags[2|]: a|b"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEncode_UniformObjectArrayAsTable(t *testing.T) {
	root := obj(jsonc.Member{Key: "users", Value: []any{
		obj(jsonc.Member{Key: "name", Value: "Alice"}, jsonc.Member{Key: "age", Value: int64(30)}),
		obj(jsonc.Member{Key: "name", Value: "Bob"}, jsonc.Member{Key: "age", Value: int64(25)}),
	}})
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "users[2]{name,age}:\n  Alice,30\n  Bob,25"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEncode_NonUniformObjectArrayFallsBackToListItems(t *testing.T) {
	root := obj(jsonc.Member{Key: "items", Value: []any{
		obj(jsonc.Member{Key: "name", Value: "Alice"}),
		obj(jsonc.Member{Key: "name", Value: "Bob"}, jsonc.Member{Key: "age", Value: int64(25)}),
	}})
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "- name: Alice") {
		t.Errorf("expected expanded list-item rendering, got:\n%s", out)
	}
}

func TestEncode_NumberCanonicalization(t *testing.T) {
	cases := map[string]string{
		"3.50":        "3.5",
		"1e2":         "100",
		"-0":          "0",
		"2.000":       "2",
		"123456789012345678901234567890": "123456789012345678901234567890",
	}
	for raw, want := range cases {
		root := obj(jsonc.Member{Key: "n", Value: json.Number(raw)})
		out, err := Encode(root, DefaultOptions())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", raw, err)
		}
		if got := strings.TrimPrefix(out, "n: "); got != want {
			t.Errorf("canonicalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestEncode_QuotesValuesNeedingIt(t *testing.T) {
	root := obj(
		jsonc.Member{Key: "is_true", Value: "true"},
		jsonc.Member{Key: "with space", Value: "has, comma"},
		jsonc.Member{Key: "user@host", Value: "ok"},
		jsonc.Member{Key: "negative", Value: "-abc"},
	)
	out, err := Encode(root, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"with space": "has, comma"`) {
		t.Errorf("expected quoted key and value, got:\n%s", out)
	}
	if !strings.Contains(out, `is_true: "true"`) {
		t.Errorf("expected quoted boolean-looking string, got:\n%s", out)
	}
	if !strings.Contains(out, `"user@host": ok`) {
		t.Errorf("expected a key with '@' (outside the [A-Za-z_][A-Za-z0-9_.]* grammar) quoted, got:\n%s", out)
	}
	if !strings.Contains(out, `negative: "-abc"`) {
		t.Errorf("expected a value starting with '-' quoted, got:\n%s", out)
	}
}

func TestEncodeValue_ArrayRoot(t *testing.T) {
	out, err := EncodeValue([]any{"a", "b"}, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a,b" {
		t.Errorf("got %q, want %q", out, "a,b")
	}
}
