package docstore

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Path Model
// --------------------------------------------------------------------------

// segKind enumerates the supported path segment kinds.
type segKind uint8

const (
	segField    segKind = iota // .name
	segRecurse                 // ..name
	segIndex                   // [i]
	segWildcard                // [*]
)

// segment is one step of a parsed path.
type segment struct {
	kind  segKind
	name  string
	index int
}

// Path is a parsed document path. A leading '$' switches the path into
// JSONPath addressing (zero or more matches); every other form is a
// legacy path ("." or the empty string address the document root).
type Path struct {
	raw      string
	jsonPath bool
	segs     []segment
}

// IsJSONPath reports whether the path uses JSONPath addressing.
func (p *Path) IsJSONPath() bool { return p.jsonPath }

// IsRoot reports whether the path addresses the document root.
func (p *Path) IsRoot() bool { return len(p.segs) == 0 }

// String returns the original path string.
func (p *Path) String() string { return p.raw }

// --------------------------------------------------------------------------
// Parsing
// --------------------------------------------------------------------------

// ParsePath parses a path string. Supported syntax: '$' or '.' for the
// root, '.name' / 'name' member steps, '..name' recursive descent,
// '[<int>]' array index and '[*]' wildcard steps.
func ParsePath(path string) (*Path, error) {
	p := &Path{raw: path}

	rest := path
	if strings.HasPrefix(rest, "$") {
		p.jsonPath = true
		rest = rest[1:]
	} else if rest == "" || rest == "." {
		return p, nil
	}

	for len(rest) > 0 {
		switch {
		case strings.HasPrefix(rest, ".."):
			rest = rest[2:]
			name, n := scanName(rest)
			if name == "" {
				return nil, fmt.Errorf("ERR invalid path '%s': missing name after '..'", path)
			}
			rest = rest[n:]
			p.segs = append(p.segs, segment{kind: segRecurse, name: name})

		case strings.HasPrefix(rest, "."):
			rest = rest[1:]
			if strings.HasPrefix(rest, "[") {
				continue
			}
			name, n := scanName(rest)
			if name == "" {
				return nil, fmt.Errorf("ERR invalid path '%s': missing member name", path)
			}
			rest = rest[n:]
			if name == "*" {
				p.segs = append(p.segs, segment{kind: segWildcard})
				continue
			}
			p.segs = append(p.segs, segment{kind: segField, name: name})

		case strings.HasPrefix(rest, "["):
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("ERR invalid path '%s': unterminated '['", path)
			}
			inner := rest[1:end]
			rest = rest[end+1:]
			if inner == "*" {
				p.segs = append(p.segs, segment{kind: segWildcard})
				continue
			}
			idx, err := strconv.Atoi(inner)
			if err != nil {
				return nil, fmt.Errorf("ERR invalid path '%s': bad index '%s'", path, inner)
			}
			p.segs = append(p.segs, segment{kind: segIndex, index: idx})

		default:
			// leading member name without a dot (legacy form "a.b")
			name, n := scanName(rest)
			if name == "" || len(p.segs) > 0 {
				return nil, fmt.Errorf("ERR invalid path '%s'", path)
			}
			rest = rest[n:]
			p.segs = append(p.segs, segment{kind: segField, name: name})
		}
	}

	return p, nil
}

// scanName reads a member name up to the next path metacharacter and
// returns it together with the number of bytes consumed.
func scanName(s string) (string, int) {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '[' {
			return s[:i], i
		}
	}
	return s, len(s)
}

// --------------------------------------------------------------------------
// Evaluation
// --------------------------------------------------------------------------

// eval resolves the path against a document root and returns pointers to
// every matched value slot in document traversal order. Mutating through
// the returned pointers mutates the document.
func (p *Path) eval(root *Value) []*Value {
	cur := []*Value{root}
	for i := range p.segs {
		cur = evalSegment(cur, &p.segs[i])
		if len(cur) == 0 {
			return nil
		}
	}
	return cur
}

// evalSegment applies one path step to every candidate slot.
func evalSegment(cur []*Value, seg *segment) []*Value {
	var next []*Value
	for _, slot := range cur {
		switch seg.kind {
		case segField:
			if obj, ok := (*slot).(*Object); ok {
				if ref := obj.Ref(seg.name); ref != nil {
					next = append(next, ref)
				}
			}
		case segIndex:
			if arr, ok := (*slot).(*Array); ok {
				idx := seg.index
				if idx < 0 {
					idx += len(arr.Items)
				}
				if idx >= 0 && idx < len(arr.Items) {
					next = append(next, &arr.Items[idx])
				}
			}
		case segWildcard:
			switch c := (*slot).(type) {
			case *Array:
				for i := range c.Items {
					next = append(next, &c.Items[i])
				}
			case *Object:
				for i := range c.members {
					next = append(next, &c.members[i].val)
				}
			}
		case segRecurse:
			next = append(next, collectRecursive(slot, seg.name)...)
		}
	}
	return next
}

// collectRecursive gathers all members with the given name anywhere below
// (and including) the candidate, depth first in document order.
func collectRecursive(slot *Value, name string) []*Value {
	var found []*Value
	switch c := (*slot).(type) {
	case *Object:
		for i := range c.members {
			if c.members[i].key == name {
				found = append(found, &c.members[i].val)
			}
			found = append(found, collectRecursive(&c.members[i].val, name)...)
		}
	case *Array:
		for i := range c.Items {
			found = append(found, collectRecursive(&c.Items[i], name)...)
		}
	}
	return found
}

// deleteMatches removes every location matched by the path from the
// document and returns the number of deleted locations. The root itself
// is never deleted here, that case is handled by the store.
func (p *Path) deleteMatches(root *Value) int {
	if len(p.segs) == 0 {
		return 0
	}

	parents := []*Value{root}
	for i := 0; i < len(p.segs)-1; i++ {
		parents = evalSegment(parents, &p.segs[i])
	}
	if len(parents) == 0 {
		return 0
	}

	last := &p.segs[len(p.segs)-1]
	deleted := 0
	for _, slot := range parents {
		switch last.kind {
		case segField:
			if obj, ok := (*slot).(*Object); ok {
				if obj.Delete(last.name) {
					deleted++
				}
			}
		case segIndex:
			if arr, ok := (*slot).(*Array); ok {
				idx := last.index
				if idx < 0 {
					idx += len(arr.Items)
				}
				if idx >= 0 && idx < len(arr.Items) {
					arr.Items = append(arr.Items[:idx], arr.Items[idx+1:]...)
					deleted++
				}
			}
		case segWildcard:
			switch c := (*slot).(type) {
			case *Array:
				deleted += len(c.Items)
				c.Items = nil
			case *Object:
				deleted += len(c.members)
				c.members = nil
			}
		case segRecurse:
			deleted += deleteRecursive(slot, last.name)
		}
	}
	return deleted
}

// createMember appends a new member with the path's final name to every
// object matched by the preceding steps and returns the creation count.
// Only member-name final steps can create; indices and wildcards cannot.
func (p *Path) createMember(root *Value, v Value) int {
	if len(p.segs) == 0 {
		return 0
	}
	last := &p.segs[len(p.segs)-1]
	if last.kind != segField {
		return 0
	}

	parents := []*Value{root}
	for i := 0; i < len(p.segs)-1; i++ {
		parents = evalSegment(parents, &p.segs[i])
	}

	created := 0
	for _, slot := range parents {
		if obj, ok := (*slot).(*Object); ok {
			if obj.Ref(last.name) == nil {
				obj.Set(last.name, cloneValue(v))
				created++
			}
		}
	}
	return created
}

// deleteRecursive removes all members with the given name anywhere below
// the candidate and returns the deletion count.
func deleteRecursive(slot *Value, name string) int {
	deleted := 0
	switch c := (*slot).(type) {
	case *Object:
		if c.Delete(name) {
			deleted++
		}
		for i := range c.members {
			deleted += deleteRecursive(&c.members[i].val, name)
		}
	case *Array:
		for i := range c.Items {
			deleted += deleteRecursive(&c.Items[i], name)
		}
	}
	return deleted
}
