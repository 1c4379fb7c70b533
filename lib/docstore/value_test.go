package docstore

import (
	"reflect"
	"strings"
	"testing"
)

// mustParse parses a document or fails the test
func mustParse(t *testing.T, data string) Value {
	t.Helper()
	v, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", data, err)
	}
	return v
}

// TestParseSerializeRoundTrip tests that documents survive a parse and
// serialize cycle with member order and number literals intact
func TestParseSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Scalars", `[null, true, false, "s", 0, -1, 1.0, 2.5e3]`},
		{"MemberOrder", `{"z": 1, "a": 2, "m": 3}`},
		{"Nested", `{"a": {"b": [1, {"c": null}]}, "d": []}`},
		{"NumberLiteral", `{"v": 1.0}`},
		{"EscapedString", `{"k": "a\"b\\c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.doc)
			got := string(Serialize(v, DefaultFormat()))
			if got != tt.doc {
				t.Errorf("round trip doesn't match:\nGot:  %s\nWant: %s", got, tt.doc)
			}
		})
	}
}

// TestParseInvalid tests that malformed documents are rejected
func TestParseInvalid(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`{"a": }`,
		`[1, 2,]`,
		`{"a": 1} trailing`,
		`tru`,
	}

	for _, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) should fail", doc)
		}
	}
}

// TestSerializeFormats tests the formatting directives
func TestSerializeFormats(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": [2, 3]}`)

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{
			name:   "Compact",
			format: Format{},
			want:   `{"a":1,"b":[2,3]}`,
		},
		{
			name:   "Default",
			format: DefaultFormat(),
			want:   `{"a": 1, "b": [2, 3]}`,
		},
		{
			name:   "Indented",
			format: Format{Indent: "  ", Newline: "\n", Space: " "},
			want:   "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}",
		},
		{
			name:   "NewlineOnly",
			format: Format{Newline: "\n"},
			want:   "{\n\"a\":1,\n\"b\":[\n2,\n3\n]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Serialize(v, tt.format))
			if got != tt.want {
				t.Errorf("serialization doesn't match:\nGot:  %q\nWant: %q", got, tt.want)
			}
		})
	}
}

// TestSerializeEmptyContainers tests that empty containers never pick up
// interior whitespace
func TestSerializeEmptyContainers(t *testing.T) {
	v := mustParse(t, `{"a": [], "b": {}}`)
	got := string(Serialize(v, Format{Indent: "  ", Newline: "\n", Space: " "}))
	if strings.Contains(got, "[\n") || strings.Contains(got, "{\n  \"a\": [\n") {
		t.Errorf("empty containers should stay closed: %q", got)
	}
	if !strings.Contains(got, "[]") || !strings.Contains(got, "{}") {
		t.Errorf("empty containers missing from output: %q", got)
	}
}

// TestObjectOperations tests the ordered object primitives
func TestObjectOperations(t *testing.T) {
	obj := &Object{}
	obj.Set("a", json1(t))
	obj.Set("b", true)
	obj.Set("a", false) // update keeps position

	if got, want := obj.Keys(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if ref := obj.Ref("a"); ref == nil || *ref != false {
		t.Errorf("Ref(a) should see the updated value")
	}
	if !obj.Delete("a") || obj.Delete("a") {
		t.Errorf("Delete should report existence exactly once")
	}
	if obj.Len() != 1 {
		t.Errorf("Len() = %d, want 1", obj.Len())
	}
}

func json1(t *testing.T) Value {
	t.Helper()
	return mustParse(t, `1`)
}
