package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Value Model
// --------------------------------------------------------------------------

// Value is one node of a stored JSON document. A Value is one of:
//
//	nil          - JSON null
//	bool         - JSON true/false
//	json.Number  - JSON number, kept in its literal form
//	string       - JSON string
//	*Array       - JSON array
//	*Object      - JSON object, member order preserved
type Value any

// member is a single key/value pair of an Object.
type member struct {
	key string
	val Value
}

// Object is a JSON object that preserves member insertion order. The
// order matters for deterministic OBJKEYS replies and serialized output.
type Object struct {
	members []member
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the member names in document order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// Ref returns a pointer to the value slot of the named member, or nil if
// the member does not exist.
func (o *Object) Ref(name string) *Value {
	for i := range o.members {
		if o.members[i].key == name {
			return &o.members[i].val
		}
	}
	return nil
}

// Set updates the named member or appends it if it does not exist yet.
func (o *Object) Set(name string, v Value) {
	if ref := o.Ref(name); ref != nil {
		*ref = v
		return
	}
	o.members = append(o.members, member{key: name, val: v})
}

// Delete removes the named member and reports whether it existed.
func (o *Object) Delete(name string) bool {
	for i := range o.members {
		if o.members[i].key == name {
			o.members = append(o.members[:i], o.members[i+1:]...)
			return true
		}
	}
	return false
}

// Array is a JSON array.
type Array struct {
	Items []Value
}

// Len returns the number of items.
func (a *Array) Len() int {
	return len(a.Items)
}

// cloneValue returns a deep copy of a value. Every write into a document
// stores its own copy, so two matched locations never share container
// pointers.
func cloneValue(v Value) Value {
	switch t := v.(type) {
	case *Object:
		cp := &Object{members: make([]member, len(t.members))}
		for i, m := range t.members {
			cp.members[i] = member{key: m.key, val: cloneValue(m.val)}
		}
		return cp
	case *Array:
		cp := &Array{Items: make([]Value, len(t.Items))}
		for i, item := range t.Items {
			cp.Items[i] = cloneValue(item)
		}
		return cp
	default:
		// scalars are immutable
		return t
	}
}

// cloneValues deep-copies a parsed value list.
func cloneValues(items []Value) []Value {
	out := make([]Value, len(items))
	for i, v := range items {
		out[i] = cloneValue(v)
	}
	return out
}

// --------------------------------------------------------------------------
// Parsing
// --------------------------------------------------------------------------

// Parse decodes a JSON document into the ordered value model. Numbers are
// kept as json.Number so scalar literals survive a round trip unchanged.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %v", err)
	}

	// Reject trailing garbage after the first value
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON: unexpected trailing data")
	}
	return v, nil
}

// parseValue reads one complete value from the token stream.
func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj.members = append(obj.members, member{key: key, val: val})
			}
			// consume closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Array{}
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Items = append(arr.Items, val)
			}
			// consume closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case bool, json.Number, string:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// --------------------------------------------------------------------------
// Serialization
// --------------------------------------------------------------------------

// Format holds the output formatting directives of a read operation.
type Format struct {
	// Indent is the prefix applied once per nesting level
	Indent string
	// Newline terminates each element line
	Newline string
	// Space follows each object key's colon
	Space string
}

// DefaultFormat is the server's default rendering: no indentation, a
// space after each colon and after each comma.
func DefaultFormat() Format {
	return Format{Space: " "}
}

// Serialize renders a value using the given format.
func Serialize(v Value, f Format) []byte {
	var sb strings.Builder
	writeValue(&sb, v, f, 0)
	return []byte(sb.String())
}

// writeValue appends the rendering of v at the given depth.
func writeValue(sb *strings.Builder, v Value, f Format, depth int) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case json.Number:
		sb.WriteString(t.String())
	case string:
		b, _ := json.Marshal(t)
		sb.Write(b)
	case *Object:
		sb.WriteString("{")
		for i := range t.members {
			if i > 0 {
				sb.WriteString(",")
			}
			writeElementStart(sb, f, depth+1, i == 0)
			b, _ := json.Marshal(t.members[i].key)
			sb.Write(b)
			sb.WriteString(":")
			sb.WriteString(f.Space)
			writeValue(sb, t.members[i].val, f, depth+1)
		}
		writeElementEnd(sb, f, depth, len(t.members) == 0)
		sb.WriteString("}")
	case *Array:
		sb.WriteString("[")
		for i := range t.Items {
			if i > 0 {
				sb.WriteString(",")
			}
			writeElementStart(sb, f, depth+1, i == 0)
			writeValue(sb, t.Items[i], f, depth+1)
		}
		writeElementEnd(sb, f, depth, len(t.Items) == 0)
		sb.WriteString("]")
	}
}

// writeElementStart emits the separator that precedes a container
// element: the configured newline plus indentation, or a single space
// between siblings when no newline is configured.
func writeElementStart(sb *strings.Builder, f Format, depth int, first bool) {
	if f.Newline != "" {
		sb.WriteString(f.Newline)
		for i := 0; i < depth; i++ {
			sb.WriteString(f.Indent)
		}
		return
	}
	if !first {
		sb.WriteString(f.Space)
	}
}

// writeElementEnd emits the newline and indentation before a closing
// bracket of a non-empty container.
func writeElementEnd(sb *strings.Builder, f Format, depth int, empty bool) {
	if f.Newline == "" || empty {
		return
	}
	sb.WriteString(f.Newline)
	for i := 0; i < depth; i++ {
		sb.WriteString(f.Indent)
	}
}
