package jsonc

import (
	"encoding/json"
	"testing"
)

func TestDecode_PreservesObjectOrder(t *testing.T) {
	v, err := Decode(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}
	want := []string{"z", "a", "m"}
	for i, m := range obj {
		if m.Key != want[i] {
			t.Errorf("member %d: expected key %q, got %q", i, want[i], m.Key)
		}
	}
}

func TestDecode_NumbersAsJSONNumber(t *testing.T) {
	v, err := Decode(`{"big": 123456789012345678901234567890}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := v.(Object)
	value, ok := obj.Get("big")
	if !ok {
		t.Fatal("expected 'big' key present")
	}
	num, ok := value.(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", value)
	}
	if num.String() != "123456789012345678901234567890" {
		t.Errorf("expected exact digits preserved, got %q", num.String())
	}
}

func TestDecode_CommentsAndTrailingCommas(t *testing.T) {
	source := `{
		// a line comment
		"name": "Alice", /* inline comment */
		"tags": ["a", "b",],
	}`
	v, err := Decode(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := v.(Object)
	name, _ := obj.Get("name")
	if name != "Alice" {
		t.Errorf("expected name=Alice, got %v", name)
	}
	tags, _ := obj.Get("tags")
	arr, ok := tags.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("expected 2-element tags array, got %#v", tags)
	}
}

func TestDecode_NestedArrayAndObject(t *testing.T) {
	v, err := Decode(`{"items": [{"id": 1}, {"id": 2}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := v.(Object)
	items, _ := obj.Get("items")
	arr := items.([]any)
	if len(arr) != 2 {
		t.Fatalf("expected 2 items, got %d", len(arr))
	}
	first := arr[0].(Object)
	id, _ := first.Get("id")
	if id.(json.Number).String() != "1" {
		t.Errorf("expected first id=1, got %v", id)
	}
}

func TestDecode_UnterminatedStringError(t *testing.T) {
	_, err := Decode(`{"name": "Alice}`)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	var syntaxErr *SyntaxError
	if !asSyntaxError(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}

func TestDecode_EmptyInputError(t *testing.T) {
	_, err := Decode("   ")
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestDecode_TrailingGarbageError(t *testing.T) {
	_, err := Decode(`{"a": 1} extra`)
	if err == nil {
		t.Fatal("expected a trailing-character error")
	}
}

func asSyntaxError(err error, target **SyntaxError) bool {
	if se, ok := err.(*SyntaxError); ok {
		*target = se
		return true
	}
	return false
}
