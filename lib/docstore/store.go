package docstore

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Store Implementation
// --------------------------------------------------------------------------

// document is one stored JSON document. The mutex guards the value tree;
// the store map itself is concurrency safe.
type document struct {
	mu   sync.RWMutex
	root Value
}

// store implements IDocStore on top of a concurrent document map.
type store struct {
	docs *xsync.MapOf[string, *document]
}

// NewStore creates an empty in-memory document store.
func NewStore() IDocStore {
	return &store{
		docs: xsync.NewMapOf[string, *document](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see interface.go)
// --------------------------------------------------------------------------

func (s *store) Set(key, path string, value []byte, cond SetCondition) (bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return false, err
	}
	val, err := Parse(value)
	if err != nil {
		return false, err
	}

	// Root writes create or replace the whole document.
	if p.IsRoot() {
		written := false
		s.docs.Compute(key, func(old *document, loaded bool) (*document, bool) {
			switch {
			case loaded && cond == SetIfNotExists:
				return old, false
			case !loaded && cond == SetIfExists:
				return nil, true // do not create
			case loaded:
				old.mu.Lock()
				old.root = val
				old.mu.Unlock()
				written = true
				return old, false
			default:
				written = true
				return &document{root: val}, false
			}
		})
		return written, nil
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return false, fmt.Errorf("ERR new objects must be created at the root")
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	matches := p.eval(&doc.root)
	if len(matches) > 0 {
		if cond == SetIfNotExists {
			return false, nil
		}
		for _, slot := range matches {
			*slot = cloneValue(val)
		}
		return true, nil
	}

	// Nothing matched: a new member can still be created when the final
	// path step is a member name whose parent object exists.
	if cond == SetIfExists {
		return false, nil
	}
	if created := p.createMember(&doc.root, val); created > 0 {
		return true, nil
	}
	return false, fmt.Errorf("ERR Path '%s' does not exist", p.String())
}

func (s *store) Get(key string, f Format, paths ...string) ([]byte, bool, error) {
	doc, ok := s.docs.Load(key)
	if !ok {
		return nil, false, nil
	}

	doc.mu.RLock()
	defer doc.mu.RUnlock()

	if len(paths) == 0 {
		return Serialize(doc.root, f), true, nil
	}

	if len(paths) == 1 {
		out, err := s.renderPath(doc, paths[0], f)
		if err != nil {
			return nil, true, err
		}
		return out, true, nil
	}

	// Several paths: an object keyed by the path literals.
	result := &Object{}
	for _, raw := range paths {
		p, err := ParsePath(raw)
		if err != nil {
			return nil, true, err
		}
		matches := p.eval(&doc.root)
		if p.IsJSONPath() {
			arr := &Array{}
			for _, slot := range matches {
				arr.Items = append(arr.Items, *slot)
			}
			result.Set(raw, arr)
			continue
		}
		if len(matches) == 0 {
			return nil, true, fmt.Errorf("ERR Path '%s' does not exist", p.String())
		}
		result.Set(raw, *matches[0])
	}
	return Serialize(result, f), true, nil
}

func (s *store) ArrAppend(key, path string, values ...[]byte) (Counts, error) {
	items, err := parseValues(values)
	if err != nil {
		return Counts{}, err
	}
	return s.mutateArrays(key, path, "last", func(arr *Array) (int64, error) {
		arr.Items = append(arr.Items, cloneValues(items)...)
		return int64(len(arr.Items)), nil
	})
}

func (s *store) ArrInsert(key, path string, index int, values ...[]byte) (Counts, error) {
	items, err := parseValues(values)
	if err != nil {
		return Counts{}, err
	}
	return s.mutateArrays(key, path, "first", func(arr *Array) (int64, error) {
		idx := index
		if idx < 0 {
			idx += len(arr.Items)
		}
		if idx < 0 || idx > len(arr.Items) {
			return 0, fmt.Errorf("ERR index out of array bounds")
		}
		arr.Items = append(arr.Items[:idx], append(cloneValues(items), arr.Items[idx:]...)...)
		return int64(len(arr.Items)), nil
	})
}

func (s *store) ArrLen(key, path string) (Counts, bool, error) {
	return s.measure(key, path, "array", func(v Value) (int64, bool) {
		if arr, ok := v.(*Array); ok {
			return int64(arr.Len()), true
		}
		return 0, false
	})
}

func (s *store) ObjLen(key, path string) (Counts, bool, error) {
	return s.measure(key, path, "object", func(v Value) (int64, bool) {
		if obj, ok := v.(*Object); ok {
			return int64(obj.Len()), true
		}
		return 0, false
	})
}

func (s *store) ObjKeys(key, path string) (Keys, bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Keys{}, true, err
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return Keys{}, false, nil
	}

	doc.mu.RLock()
	defer doc.mu.RUnlock()

	matches := p.eval(&doc.root)
	if p.IsJSONPath() {
		keys := Keys{Multi: true, PerMatch: make([][]string, 0, len(matches))}
		for _, slot := range matches {
			if obj, ok := (*slot).(*Object); ok {
				keys.PerMatch = append(keys.PerMatch, obj.Keys())
			} else {
				keys.PerMatch = append(keys.PerMatch, nil)
			}
		}
		return keys, true, nil
	}

	if len(matches) == 0 {
		return Keys{}, true, fmt.Errorf("ERR Path '%s' does not exist", p.String())
	}
	obj, isObj := (*matches[0]).(*Object)
	if !isObj {
		return Keys{}, true, fmt.Errorf("ERR Path '%s' does not exist or not an object", p.String())
	}
	return Keys{Single: obj.Keys()}, true, nil
}

func (s *store) Del(key, path string) (int64, error) {
	p, err := ParsePath(path)
	if err != nil {
		return 0, err
	}

	if p.IsRoot() {
		if _, loaded := s.docs.LoadAndDelete(key); loaded {
			return 1, nil
		}
		return 0, nil
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return 0, nil
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()
	return int64(p.deleteMatches(&doc.root)), nil
}

func (s *store) Toggle(key, path string) (Toggles, bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Toggles{}, true, err
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return Toggles{}, false, nil
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	matches := p.eval(&doc.root)
	if p.IsJSONPath() {
		toggles := Toggles{Multi: true, PerMatch: make([]*bool, 0, len(matches))}
		for _, slot := range matches {
			if b, ok := (*slot).(bool); ok {
				flipped := !b
				*slot = flipped
				toggles.PerMatch = append(toggles.PerMatch, &flipped)
			} else {
				toggles.PerMatch = append(toggles.PerMatch, nil)
			}
		}
		return toggles, true, nil
	}

	if len(matches) == 0 {
		return Toggles{}, true, fmt.Errorf("ERR Path '%s' does not exist", p.String())
	}
	b, isBool := (*matches[0]).(bool)
	if !isBool {
		return Toggles{}, true, fmt.Errorf("ERR Path '%s' does not exist or not a bool", p.String())
	}
	*matches[0] = !b
	return Toggles{Single: !b}, true, nil
}

func (s *store) Info() StoreInfo {
	return StoreInfo{Documents: int64(s.docs.Size())}
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// parseValues parses each raw JSON value token.
func parseValues(raw [][]byte) ([]Value, error) {
	items := make([]Value, len(raw))
	for i, b := range raw {
		v, err := Parse(b)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

// mutateArrays applies fn to every matched array and reports the new
// lengths. For legacy paths the reported scalar is the first or last
// updated array's length, matching the per-operation documented behavior
// (report = "first" or "last").
func (s *store) mutateArrays(key, path, report string, fn func(*Array) (int64, error)) (Counts, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Counts{}, err
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return Counts{}, fmt.Errorf("ERR no such key")
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	matches := p.eval(&doc.root)
	if p.IsJSONPath() {
		counts := Counts{Multi: true, PerMatch: make([]*int64, 0, len(matches))}
		for _, slot := range matches {
			arr, isArr := (*slot).(*Array)
			if !isArr {
				counts.PerMatch = append(counts.PerMatch, nil)
				continue
			}
			n, err := fn(arr)
			if err != nil {
				return Counts{}, err
			}
			counts.PerMatch = append(counts.PerMatch, &n)
		}
		return counts, nil
	}

	if len(matches) == 0 {
		return Counts{}, fmt.Errorf("ERR Path '%s' does not exist", p.String())
	}
	var lengths []int64
	for _, slot := range matches {
		if arr, isArr := (*slot).(*Array); isArr {
			n, err := fn(arr)
			if err != nil {
				return Counts{}, err
			}
			lengths = append(lengths, n)
		}
	}
	if len(lengths) == 0 {
		return Counts{}, fmt.Errorf("ERR Path '%s' does not exist or not an array", p.String())
	}
	if report == "last" {
		return Counts{Single: lengths[len(lengths)-1]}, nil
	}
	return Counts{Single: lengths[0]}, nil
}

// measure resolves the path read-only and reports a per-location size via
// the kind-specific probe.
func (s *store) measure(key, path, kind string, probe func(Value) (int64, bool)) (Counts, bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Counts{}, true, err
	}

	doc, ok := s.docs.Load(key)
	if !ok {
		return Counts{}, false, nil
	}

	doc.mu.RLock()
	defer doc.mu.RUnlock()

	matches := p.eval(&doc.root)
	if p.IsJSONPath() {
		counts := Counts{Multi: true, PerMatch: make([]*int64, 0, len(matches))}
		for _, slot := range matches {
			if n, ok := probe(*slot); ok {
				v := n
				counts.PerMatch = append(counts.PerMatch, &v)
			} else {
				counts.PerMatch = append(counts.PerMatch, nil)
			}
		}
		return counts, true, nil
	}

	if len(matches) == 0 {
		return Counts{}, true, fmt.Errorf("ERR Path '%s' does not exist", p.String())
	}
	n, isKind := probe(*matches[0])
	if !isKind {
		return Counts{}, true, fmt.Errorf("ERR Path '%s' does not exist or not an %s", p.String(), kind)
	}
	return Counts{Single: n}, true, nil
}

// renderPath serializes the value(s) matched by one path.
func (s *store) renderPath(doc *document, raw string, f Format) ([]byte, error) {
	p, err := ParsePath(raw)
	if err != nil {
		return nil, err
	}
	matches := p.eval(&doc.root)
	if p.IsJSONPath() {
		arr := &Array{}
		for _, slot := range matches {
			arr.Items = append(arr.Items, *slot)
		}
		return Serialize(arr, f), nil
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("ERR Path '%s' does not exist", p.String())
	}
	return Serialize(*matches[0], f), nil
}
