package docstore

import (
	"reflect"
	"strings"
	"testing"
)

// newTestStore returns a store preloaded with the given documents
func newTestStore(t *testing.T, docs map[string]string) IDocStore {
	t.Helper()
	s := NewStore()
	for key, doc := range docs {
		if _, err := s.Set(key, ".", []byte(doc), SetAlways); err != nil {
			t.Fatalf("preloading %q failed: %v", key, err)
		}
	}
	return s
}

// TestStoreSetGet tests document writes and reads
func TestStoreSetGet(t *testing.T) {
	s := NewStore()

	t.Run("RootRoundTrip", func(t *testing.T) {
		if _, err := s.Set("doc", ".", []byte(`{"a": 1.0, "b": 2}`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		out, found, err := s.Get("doc", DefaultFormat())
		if err != nil || !found {
			t.Fatalf("Get failed: found=%v err=%v", found, err)
		}
		if got := string(out); got != `{"a": 1.0, "b": 2}` {
			t.Errorf("Get = %s", got)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, found, err := s.Get("nope", DefaultFormat())
		if err != nil || found {
			t.Errorf("missing key should report found=false without error, got found=%v err=%v", found, err)
		}
	})

	t.Run("NestedWrite", func(t *testing.T) {
		if _, err := s.Set("doc", ".a", []byte(`[true]`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		out, _, err := s.Get("doc", Format{}, ".a")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got := string(out); got != `[true]` {
			t.Errorf("Get(.a) = %s", got)
		}
	})

	t.Run("CreateMember", func(t *testing.T) {
		if _, err := s.Set("doc", ".c", []byte(`"new"`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		out, _, err := s.Get("doc", Format{}, ".c")
		if err != nil || string(out) != `"new"` {
			t.Errorf("created member not readable: out=%s err=%v", out, err)
		}
	})

	t.Run("NonRootWriteOnMissingKey", func(t *testing.T) {
		_, err := s.Set("nope", ".a", []byte(`1`), SetAlways)
		if err == nil || !strings.Contains(err.Error(), "root") {
			t.Errorf("expected root-creation error, got %v", err)
		}
	})

	t.Run("InvalidValue", func(t *testing.T) {
		if _, err := s.Set("doc", ".", []byte(`{not json`), SetAlways); err == nil {
			t.Errorf("invalid JSON should fail")
		}
	})
}

// TestStoreSetConditions tests the XX/NX write conditions
func TestStoreSetConditions(t *testing.T) {
	s := newTestStore(t, map[string]string{"doc": `{"a": 1}`})

	tests := []struct {
		name    string
		key     string
		path    string
		cond    SetCondition
		written bool
	}{
		{"NXOnExistingRoot", "doc", ".", SetIfNotExists, false},
		{"NXOnExistingPath", "doc", ".a", SetIfNotExists, false},
		{"NXOnNewPath", "doc", ".b", SetIfNotExists, true},
		{"XXOnExistingPath", "doc", ".a", SetIfExists, true},
		{"XXOnMissingPath", "doc", ".z", SetIfExists, false},
		{"XXOnMissingKey", "other", ".", SetIfExists, false},
		{"NXOnMissingKey", "fresh", ".", SetIfNotExists, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			written, err := s.Set(tt.key, tt.path, []byte(`42`), tt.cond)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if written != tt.written {
				t.Errorf("written = %v, want %v", written, tt.written)
			}
		})
	}
}

// TestStoreGetMultiPath tests the multi-path object reply shape
func TestStoreGetMultiPath(t *testing.T) {
	s := newTestStore(t, map[string]string{"doc": `{"a": 1, "b": {"a": 2}}`})

	t.Run("LegacyPaths", func(t *testing.T) {
		out, _, err := s.Get("doc", Format{}, ".a", ".b")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got := string(out); got != `{".a":1,".b":{"a":2}}` {
			t.Errorf("Get = %s", got)
		}
	})

	t.Run("JSONPathCollectsMatches", func(t *testing.T) {
		out, _, err := s.Get("doc", Format{}, "$..a", ".b")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got := string(out); got != `{"$..a":[1,2],".b":{"a":2}}` {
			t.Errorf("Get = %s", got)
		}
	})

	t.Run("LegacyPathMiss", func(t *testing.T) {
		_, _, err := s.Get("doc", Format{}, ".a", ".zz")
		if err == nil {
			t.Errorf("missing legacy path should fail")
		}
	})

	t.Run("SingleJSONPathMiss", func(t *testing.T) {
		out, _, err := s.Get("doc", Format{}, "$.zz")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got := string(out); got != `[]` {
			t.Errorf("unmatched JSONPath should render [], got %s", got)
		}
	})
}

// TestStoreArrAppend tests array append semantics
func TestStoreArrAppend(t *testing.T) {
	t.Run("Legacy", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": [1]}`})
		counts, err := s.ArrAppend("doc", ".a", []byte(`2`), []byte(`3`))
		if err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		if counts.Multi || counts.Single != 3 {
			t.Errorf("counts = %+v, want Single=3", counts)
		}
	})

	t.Run("JSONPathMixedTypes", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": [1], "b": true, "c": []}`})
		counts, err := s.ArrAppend("doc", "$.*", []byte(`9`))
		if err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		want := []*int64{int64p(2), nil, int64p(1)}
		if !counts.Multi || !reflect.DeepEqual(counts.PerMatch, want) {
			t.Errorf("counts = %+v, want PerMatch %v", counts, want)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		s := NewStore()
		if _, err := s.ArrAppend("nope", ".a", []byte(`1`)); err == nil {
			t.Errorf("append to missing key should fail")
		}
	})

	t.Run("NotAnArray", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": 1}`})
		if _, err := s.ArrAppend("doc", ".a", []byte(`1`)); err == nil {
			t.Errorf("append to non-array should fail")
		}
	})
}

// TestStoreArrInsert tests array insertion semantics
func TestStoreArrInsert(t *testing.T) {
	t.Run("AtIndex", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `[1, 4]`})
		counts, err := s.ArrInsert("doc", ".", 1, []byte(`2`), []byte(`3`))
		if err != nil {
			t.Fatalf("ArrInsert failed: %v", err)
		}
		if counts.Single != 4 {
			t.Errorf("counts = %+v, want Single=4", counts)
		}
		out, _, _ := s.Get("doc", Format{})
		if got := string(out); got != `[1,2,3,4]` {
			t.Errorf("document = %s", got)
		}
	})

	t.Run("NegativeIndex", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `[1, 2]`})
		if _, err := s.ArrInsert("doc", ".", -1, []byte(`9`)); err != nil {
			t.Fatalf("ArrInsert failed: %v", err)
		}
		out, _, _ := s.Get("doc", Format{})
		if got := string(out); got != `[1,9,2]` {
			t.Errorf("document = %s", got)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `[1]`})
		if _, err := s.ArrInsert("doc", ".", 5, []byte(`9`)); err == nil {
			t.Errorf("out of bounds insert should fail")
		}
	})

	t.Run("JSONPathEveryMatch", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `[[], ["a"], ["a", "b"]]`})
		counts, err := s.ArrInsert("doc", "$[*]", 0, []byte(`"c"`))
		if err != nil {
			t.Fatalf("ArrInsert failed: %v", err)
		}
		want := []*int64{int64p(1), int64p(2), int64p(3)}
		if !reflect.DeepEqual(counts.PerMatch, want) {
			t.Errorf("counts = %+v, want PerMatch %v", counts, want)
		}
	})
}

// TestStoreWriteIndependence tests that multi-match writes store
// independent copies, so mutating one location never changes a sibling
func TestStoreWriteIndependence(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": {"v": 0}, "b": {"v": 0}}`})
		if _, err := s.Set("doc", "$..v", []byte(`[]`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if _, err := s.ArrAppend("doc", ".a.v", []byte(`1`)); err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		counts, _, err := s.ArrLen("doc", ".b.v")
		if err != nil {
			t.Fatalf("ArrLen failed: %v", err)
		}
		if counts.Single != 0 {
			t.Errorf("len(.b.v) = %d, want 0", counts.Single)
		}
	})

	t.Run("ArrAppend", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": [], "b": []}`})
		if _, err := s.ArrAppend("doc", "$.*", []byte(`[]`)); err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		if _, err := s.ArrAppend("doc", ".a[0]", []byte(`1`)); err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		counts, _, err := s.ArrLen("doc", ".b[0]")
		if err != nil {
			t.Fatalf("ArrLen failed: %v", err)
		}
		if counts.Single != 0 {
			t.Errorf("len(.b[0]) = %d, want 0", counts.Single)
		}
	})

	t.Run("ArrInsert", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `[[], []]`})
		if _, err := s.ArrInsert("doc", "$[*]", 0, []byte(`{}`)); err != nil {
			t.Fatalf("ArrInsert failed: %v", err)
		}
		if _, err := s.Set("doc", "[0][0].k", []byte(`1`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		counts, _, err := s.ObjLen("doc", "[1][0]")
		if err != nil {
			t.Fatalf("ObjLen failed: %v", err)
		}
		if counts.Single != 0 {
			t.Errorf("len([1][0]) = %d, want 0", counts.Single)
		}
	})

	t.Run("CreateMember", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": {}, "b": {}}`})
		if _, err := s.Set("doc", "$.*.v", []byte(`[]`), SetAlways); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if _, err := s.ArrAppend("doc", ".a.v", []byte(`1`)); err != nil {
			t.Fatalf("ArrAppend failed: %v", err)
		}
		counts, _, err := s.ArrLen("doc", ".b.v")
		if err != nil {
			t.Fatalf("ArrLen failed: %v", err)
		}
		if counts.Single != 0 {
			t.Errorf("len(.b.v) = %d, want 0", counts.Single)
		}
	})
}

// TestStoreMeasure tests ARRLEN and OBJLEN
func TestStoreMeasure(t *testing.T) {
	s := newTestStore(t, map[string]string{"doc": `{"arr": [1, 2, 3], "obj": {"x": 1}, "num": 7}`})

	t.Run("ArrLenLegacy", func(t *testing.T) {
		counts, found, err := s.ArrLen("doc", ".arr")
		if err != nil || !found || counts.Single != 3 {
			t.Errorf("ArrLen = %+v found=%v err=%v", counts, found, err)
		}
	})

	t.Run("ArrLenWrongType", func(t *testing.T) {
		if _, _, err := s.ArrLen("doc", ".num"); err == nil {
			t.Errorf("ArrLen on number should fail")
		}
	})

	t.Run("ObjLenJSONPath", func(t *testing.T) {
		counts, _, err := s.ObjLen("doc", "$.*")
		if err != nil {
			t.Fatalf("ObjLen failed: %v", err)
		}
		want := []*int64{nil, int64p(1), nil}
		if !reflect.DeepEqual(counts.PerMatch, want) {
			t.Errorf("ObjLen = %+v, want PerMatch %v", counts, want)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, found, err := s.ObjLen("nope", ".")
		if err != nil || found {
			t.Errorf("missing key should report found=false, got found=%v err=%v", found, err)
		}
	})

	t.Run("JSONPathNoMatches", func(t *testing.T) {
		counts, found, err := s.ObjLen("doc", "$.zz")
		if err != nil || !found {
			t.Fatalf("ObjLen failed: found=%v err=%v", found, err)
		}
		if !counts.Multi || len(counts.PerMatch) != 0 {
			t.Errorf("unmatched JSONPath should yield an empty PerMatch, got %+v", counts)
		}
	})
}

// TestStoreObjKeys tests member name listing
func TestStoreObjKeys(t *testing.T) {
	s := newTestStore(t, map[string]string{"doc": `{"b": {"z": 1, "a": 2}, "n": 5}`})

	t.Run("LegacyOrder", func(t *testing.T) {
		keys, _, err := s.ObjKeys("doc", ".b")
		if err != nil {
			t.Fatalf("ObjKeys failed: %v", err)
		}
		if want := []string{"z", "a"}; !reflect.DeepEqual(keys.Single, want) {
			t.Errorf("keys = %v, want %v", keys.Single, want)
		}
	})

	t.Run("JSONPath", func(t *testing.T) {
		keys, _, err := s.ObjKeys("doc", "$.*")
		if err != nil {
			t.Fatalf("ObjKeys failed: %v", err)
		}
		want := [][]string{{"z", "a"}, nil}
		if !keys.Multi || !reflect.DeepEqual(keys.PerMatch, want) {
			t.Errorf("keys = %+v, want PerMatch %v", keys, want)
		}
	})

	t.Run("LegacyWrongType", func(t *testing.T) {
		if _, _, err := s.ObjKeys("doc", ".n"); err == nil {
			t.Errorf("ObjKeys on number should fail")
		}
	})
}

// TestStoreDel tests deletion counting
func TestStoreDel(t *testing.T) {
	t.Run("Root", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": 1}`})
		if n, _ := s.Del("doc", "."); n != 1 {
			t.Errorf("Del = %d, want 1", n)
		}
		if _, found, _ := s.Get("doc", Format{}); found {
			t.Errorf("document should be gone")
		}
		if n, _ := s.Del("doc", "."); n != 0 {
			t.Errorf("second Del = %d, want 0", n)
		}
	})

	t.Run("Recursive", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": {"x": 1}, "b": {"x": 2}}`})
		if n, _ := s.Del("doc", "$..x"); n != 2 {
			t.Errorf("Del = %d, want 2", n)
		}
	})

	t.Run("MissingKeyAndPath", func(t *testing.T) {
		s := newTestStore(t, map[string]string{"doc": `{"a": 1}`})
		if n, err := s.Del("nope", "."); n != 0 || err != nil {
			t.Errorf("Del on missing key = %d, %v", n, err)
		}
		if n, err := s.Del("doc", ".zz"); n != 0 || err != nil {
			t.Errorf("Del on missing path = %d, %v", n, err)
		}
	})
}

// TestStoreToggle tests boolean flipping
func TestStoreToggle(t *testing.T) {
	s := newTestStore(t, map[string]string{"doc": `{"on": true, "n": 1, "nested": {"on": false}}`})

	t.Run("LegacyFlipTwice", func(t *testing.T) {
		toggles, _, err := s.Toggle("doc", ".on")
		if err != nil || toggles.Single != false {
			t.Fatalf("first Toggle = %+v err=%v", toggles, err)
		}
		toggles, _, err = s.Toggle("doc", ".on")
		if err != nil || toggles.Single != true {
			t.Errorf("second Toggle = %+v err=%v", toggles, err)
		}
	})

	t.Run("JSONPathMixed", func(t *testing.T) {
		toggles, _, err := s.Toggle("doc", "$..on")
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		want := []*bool{boolp(false), boolp(true)}
		if !reflect.DeepEqual(toggles.PerMatch, want) {
			t.Errorf("toggles = %+v, want PerMatch %v", toggles, want)
		}
	})

	t.Run("LegacyWrongType", func(t *testing.T) {
		if _, _, err := s.Toggle("doc", ".n"); err == nil {
			t.Errorf("Toggle on number should fail")
		}
	})
}

// TestStoreInfo tests the document count
func TestStoreInfo(t *testing.T) {
	s := newTestStore(t, map[string]string{"a": `1`, "b": `2`})
	if info := s.Info(); info.Documents != 2 {
		t.Errorf("Documents = %d, want 2", info.Documents)
	}
	s.Del("a", ".")
	if info := s.Info(); info.Documents != 1 {
		t.Errorf("Documents = %d, want 1", info.Documents)
	}
}

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }
