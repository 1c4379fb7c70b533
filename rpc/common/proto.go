package common

import (
	"strings"
)

// --------------------------------------------------------------------------
// Command Name Tokens
// --------------------------------------------------------------------------

// Command name tokens of the document store protocol. The command name is
// always the first token of the argument vector.
const (
	cmdPrefix = "JSON."

	CmdSet       = cmdPrefix + "SET"
	CmdGet       = cmdPrefix + "GET"
	CmdArrAppend = cmdPrefix + "ARRAPPEND"
	CmdArrInsert = cmdPrefix + "ARRINSERT"
	CmdArrLen    = cmdPrefix + "ARRLEN"
	CmdObjLen    = cmdPrefix + "OBJLEN"
	CmdObjKeys   = cmdPrefix + "OBJKEYS"
	CmdDel       = cmdPrefix + "DEL"
	CmdForget    = cmdPrefix + "FORGET"
	CmdToggle    = cmdPrefix + "TOGGLE"

	// CmdStoreInfo is the one fan-out command: it is answered by every
	// shard of a clustered deployment instead of a single key owner.
	CmdStoreInfo = "STORE.INFO"
)

// --------------------------------------------------------------------------
// Replies
// --------------------------------------------------------------------------

// Reply is one raw protocol value as returned by a transport. A Reply is
// one of:
//
//	nil        - null reply (absent key, unmet write condition, ...)
//	int64      - integer reply (lengths, deletion counts)
//	bool       - boolean reply (toggle results)
//	float64    - floating point reply
//	[]byte     - bulk reply (serialized JSON values, object keys)
//	string     - status reply ("OK")
//	[]Reply    - array reply (one entry per JSONPath match, nil entries
//	             for matched locations of the wrong type)
//
// Clustered transports additionally return a map of shard id to Reply
// which is resolved by the client before normalization (see ShardReplies).
type Reply any

// ShardReplies is the per-shard reply variant returned by clustered
// transports. For single-key commands the map holds exactly one entry.
type ShardReplies map[string]Reply

// --------------------------------------------------------------------------
// Path Modes
// --------------------------------------------------------------------------

// PathMode distinguishes the two path addressing modes of the protocol.
// The mode decides the shape of the reply, so it is detected once when the
// command is encoded and threaded through to reply normalization.
type PathMode uint8

const (
	// PathModeRoot marks a command sent without a path token. The server
	// defaults to the document root, legacy reply semantics apply.
	PathModeRoot PathMode = iota
	// PathModeLegacy matches at most one location. Replies are scalars and
	// a missing or wrong-typed location is a protocol error.
	PathModeLegacy
	// PathModeJSONPath matches zero or more locations. Replies are arrays
	// with one entry per match.
	PathModeJSONPath
)

// jsonPathSentinel is the leading character that switches a path into
// JSONPath multi-match addressing.
const jsonPathSentinel = "$"

// DetectPathMode returns the addressing mode of a path string.
func DetectPathMode(path string) PathMode {
	if strings.HasPrefix(path, jsonPathSentinel) {
		return PathModeJSONPath
	}
	return PathModeLegacy
}

// String returns the string representation of a PathMode.
func (m PathMode) String() string {
	switch m {
	case PathModeRoot:
		return "root"
	case PathModeLegacy:
		return "legacy"
	case PathModeJSONPath:
		return "jsonpath"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Aggregation Modes
// --------------------------------------------------------------------------

// AggregationMode selects how the per-shard replies of a clustered
// deployment are resolved into the value handed to reply normalization.
type AggregationMode uint8

const (
	// AggSingleValue asserts that exactly one shard answered (the case for
	// every single-key command) and unwraps that value. Any other
	// cardinality is a shape-consistency fault.
	AggSingleValue AggregationMode = iota
	// AggMultiValue keeps the per-shard map. Only used by commands whose
	// contract is an explicit fan-out, never by document-path commands.
	AggMultiValue
)

// String returns the string representation of an AggregationMode.
func (m AggregationMode) String() string {
	switch m {
	case AggSingleValue:
		return "single-value"
	case AggMultiValue:
		return "multi-value"
	default:
		return "unknown"
	}
}
