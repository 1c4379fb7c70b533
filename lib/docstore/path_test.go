package docstore

import (
	"reflect"
	"testing"
)

// evalStrings resolves path against doc and returns the compact rendering
// of every match
func evalStrings(t *testing.T, doc, path string) []string {
	t.Helper()
	root := mustParse(t, doc)
	p, err := ParsePath(path)
	if err != nil {
		t.Fatalf("ParsePath(%q) failed: %v", path, err)
	}

	var out []string
	for _, slot := range p.eval(&root) {
		out = append(out, string(Serialize(*slot, Format{})))
	}
	return out
}

// TestParsePathModes tests root detection and addressing mode detection
func TestParsePathModes(t *testing.T) {
	tests := []struct {
		path     string
		jsonPath bool
		root     bool
	}{
		{"", false, true},
		{".", false, true},
		{"$", true, true},
		{".a", false, false},
		{"a", false, false},
		{"a.b", false, false},
		{"$.a", true, false},
		{"$..a", true, false},
		{"$[0]", true, false},
		{"$[*]", true, false},
		{"$.*", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath(%q) failed: %v", tt.path, err)
			}
			if p.IsJSONPath() != tt.jsonPath {
				t.Errorf("IsJSONPath() = %v, want %v", p.IsJSONPath(), tt.jsonPath)
			}
			if p.IsRoot() != tt.root {
				t.Errorf("IsRoot() = %v, want %v", p.IsRoot(), tt.root)
			}
		})
	}
}

// TestParsePathInvalid tests rejection of malformed paths
func TestParsePathInvalid(t *testing.T) {
	tests := []string{
		"$.",
		"$..",
		"$[",
		"$[x]",
		"$a[0]b",
	}

	for _, path := range tests {
		if _, err := ParsePath(path); err == nil {
			t.Errorf("ParsePath(%q) should fail", path)
		}
	}
}

// TestPathEval tests path resolution against a fixed document
func TestPathEval(t *testing.T) {
	doc := `{"a": {"b": 1, "c": [10, 20, 30]}, "d": [{"b": 2}, {"b": 3}], "b": 4}`

	tests := []struct {
		name string
		path string
		want []string
	}{
		{"Field", ".a.b", []string{"1"}},
		{"FieldNoDot", "a.b", []string{"1"}},
		{"Index", ".a.c[1]", []string{"20"}},
		{"NegativeIndex", ".a.c[-1]", []string{"30"}},
		{"IndexOutOfRange", ".a.c[5]", nil},
		{"ArrayWildcard", "$.a.c[*]", []string{"10", "20", "30"}},
		{"ObjectWildcard", "$.a.*", []string{"1", "[10,20,30]"}},
		{"Recursive", "$..b", []string{"1", "2", "3", "4"}},
		{"RecursiveMiss", "$..zz", nil},
		{"WildcardThenField", "$.d[*].b", []string{"2", "3"}},
		{"MissingField", ".a.x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalStrings(t, doc, tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("eval(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// TestPathEvalMutates tests that writing through a returned slot mutates
// the document
func TestPathEvalMutates(t *testing.T) {
	root := mustParse(t, `{"a": [1, 2]}`)
	p, err := ParsePath("$.a[*]")
	if err != nil {
		t.Fatalf("ParsePath failed: %v", err)
	}

	for _, slot := range p.eval(&root) {
		*slot = true
	}

	if got := string(Serialize(root, Format{})); got != `{"a":[true,true]}` {
		t.Errorf("mutation through slots didn't apply: %s", got)
	}
}

// TestPathDeleteMatches tests location deletion
func TestPathDeleteMatches(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		deleted int
		after   string
	}{
		{"Member", `{"a": 1, "b": 2}`, ".a", 1, `{"b":2}`},
		{"MissingMember", `{"a": 1}`, ".x", 0, `{"a":1}`},
		{"Index", `[1, 2, 3]`, "[1]", 1, `[1,3]`},
		{"NegativeIndex", `[1, 2, 3]`, "[-1]", 1, `[1,2]`},
		{"Wildcard", `{"a": [1, 2], "b": 3}`, "$.a[*]", 2, `{"a":[],"b":3}`},
		{"Recursive", `{"b": 1, "a": {"b": 2}}`, "$..b", 2, `{"a":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.doc)
			p, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath failed: %v", err)
			}
			if got := p.deleteMatches(&root); got != tt.deleted {
				t.Errorf("deleteMatches() = %d, want %d", got, tt.deleted)
			}
			if got := string(Serialize(root, Format{})); got != tt.after {
				t.Errorf("document after delete = %s, want %s", got, tt.after)
			}
		})
	}
}

// TestPathCreateMember tests member creation for unmatched final steps
func TestPathCreateMember(t *testing.T) {
	t.Run("CreatesOnExistingParent", func(t *testing.T) {
		root := mustParse(t, `{"a": {}}`)
		p, _ := ParsePath(".a.b")
		if created := p.createMember(&root, true); created != 1 {
			t.Fatalf("createMember() = %d, want 1", created)
		}
		if got := string(Serialize(root, Format{})); got != `{"a":{"b":true}}` {
			t.Errorf("document = %s", got)
		}
	})

	t.Run("NoParent", func(t *testing.T) {
		root := mustParse(t, `{}`)
		p, _ := ParsePath(".a.b")
		if created := p.createMember(&root, true); created != 0 {
			t.Errorf("createMember() = %d, want 0", created)
		}
	})

	t.Run("IndexFinalStepCannotCreate", func(t *testing.T) {
		root := mustParse(t, `{"a": []}`)
		p, _ := ParsePath(".a[0]")
		if created := p.createMember(&root, true); created != 0 {
			t.Errorf("createMember() = %d, want 0", created)
		}
	})
}
