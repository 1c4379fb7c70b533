package docstore

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// SetCondition restricts when a Set operation takes effect.
type SetCondition uint8

const (
	// SetAlways - unconditional write.
	SetAlways SetCondition = iota
	// SetIfExists - only update an existing value.
	SetIfExists
	// SetIfNotExists - only write if nothing exists at the path.
	SetIfNotExists
)

// IDocStore is the interface of the in-memory JSON document engine. All
// methods are safe for concurrent use. Reported errors carry the server
// error text that a transport surfaces to the client unchanged.
//
// Every path-taking method accepts both addressing modes: a path starting
// with '$' matches zero or more locations and produces per-match results,
// any other path matches at most one location with stricter absence and
// type error semantics. "." and the empty string address the root.
type IDocStore interface {
	// Set parses value and stores it at path inside the document key.
	// The returned bool is false if cond prevented the write.
	Set(key, path string, value []byte, cond SetCondition) (bool, error)

	// Get serializes the values at the given paths using format f. With
	// no paths the whole document is returned, with several paths an
	// object keyed by the path literals. The bool is false if the key
	// does not exist.
	Get(key string, f Format, paths ...string) ([]byte, bool, error)

	// ArrAppend appends the parsed values to the array(s) at path and
	// reports the new length(s).
	ArrAppend(key, path string, values ...[]byte) (Counts, error)

	// ArrInsert inserts the parsed values at index into the array(s) at
	// path and reports the new length(s). Negative indices count from the
	// end; an out of bounds index is an error.
	ArrInsert(key, path string, index int, values ...[]byte) (Counts, error)

	// ArrLen reports the length of the array(s) at path. The bool is
	// false if the key does not exist.
	ArrLen(key, path string) (Counts, bool, error)

	// ObjLen reports the member count of the object(s) at path. The bool
	// is false if the key does not exist.
	ObjLen(key, path string) (Counts, bool, error)

	// ObjKeys reports the member names of the object(s) at path. The bool
	// is false if the key does not exist.
	ObjKeys(key, path string) (Keys, bool, error)

	// Del deletes the locations matched by path and returns the count of
	// deleted locations. Deleting the root removes the document. A
	// missing key or path yields 0, never an error.
	Del(key, path string) (int64, error)

	// Toggle flips the boolean(s) at path and reports the new value(s).
	// The bool is false if the key does not exist.
	Toggle(key, path string) (Toggles, bool, error)

	// Info reports store level statistics.
	Info() StoreInfo
}

// --------------------------------------------------------------------------
// Result Types
// --------------------------------------------------------------------------

// Counts is the result of a counting operation. For a legacy path Single
// holds the count; for a JSONPath Multi is true and PerMatch holds one
// entry per matched location, nil where the location had the wrong type.
type Counts struct {
	Multi    bool
	Single   int64
	PerMatch []*int64
}

// Toggles is the result of a toggle operation, shaped like Counts.
type Toggles struct {
	Multi    bool
	Single   bool
	PerMatch []*bool
}

// Keys is the result of an object-keys operation. For a legacy path
// Single holds the key names of the one matched object; for a JSONPath
// PerMatch holds one name list per match, nil where the location was not
// an object.
type Keys struct {
	Multi    bool
	Single   []string
	PerMatch [][]string
}

// StoreInfo holds store level statistics.
type StoreInfo struct {
	// Documents is the number of stored documents
	Documents int64
}
