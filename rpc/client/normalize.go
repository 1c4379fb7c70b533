package client

import (
	"github.com/docukv/djson/rpc/common"
)

// --------------------------------------------------------------------------
// Reply Normalization
// --------------------------------------------------------------------------
//
// Stateless per-call transforms from raw replies to the typed results of
// the caller-facing surface, keyed by the path mode detected at encode
// time. A reply whose shape contradicts the mode is a consistency fault,
// never silently coerced.

// asInt64 converts an integer reply.
func asInt64(reply common.Reply) (int64, error) {
	if n, ok := reply.(int64); ok {
		return n, nil
	}
	return 0, common.NewError(common.RetCConsistency, "expected integer reply, got %T", reply)
}

// asBool converts a boolean reply.
func asBool(reply common.Reply) (bool, error) {
	if b, ok := reply.(bool); ok {
		return b, nil
	}
	return false, common.NewError(common.RetCConsistency, "expected boolean reply, got %T", reply)
}

// asBulk converts a bulk reply.
func asBulk(reply common.Reply) ([]byte, error) {
	switch r := reply.(type) {
	case []byte:
		return r, nil
	case string:
		return []byte(r), nil
	default:
		return nil, common.NewError(common.RetCConsistency, "expected bulk reply, got %T", reply)
	}
}

// asArray converts an array reply.
func asArray(reply common.Reply) ([]common.Reply, error) {
	if arr, ok := reply.([]common.Reply); ok {
		return arr, nil
	}
	return nil, common.NewError(common.RetCConsistency, "expected array reply, got %T", reply)
}

// normalizeCount maps a counting reply into its tagged result. For a
// JSONPath the reply is an array with one entry per match (empty when the
// path matched nothing), nil entries marking wrong-typed locations. For a
// legacy path the reply is a bare integer.
func normalizeCount(reply common.Reply, mode common.PathMode) (CountResult, error) {
	if mode != common.PathModeJSONPath {
		n, err := asInt64(reply)
		if err != nil {
			return CountResult{}, err
		}
		return CountResult{Mode: mode, Count: n}, nil
	}

	arr, err := asArray(reply)
	if err != nil {
		return CountResult{}, err
	}
	counts := make([]*int64, len(arr))
	for i, entry := range arr {
		if entry == nil {
			continue
		}
		n, err := asInt64(entry)
		if err != nil {
			return CountResult{}, err
		}
		counts[i] = &n
	}
	return CountResult{Mode: mode, Counts: counts}, nil
}

// normalizeToggle maps a toggle reply into its tagged result.
func normalizeToggle(reply common.Reply, mode common.PathMode) (ToggleResult, error) {
	if mode != common.PathModeJSONPath {
		b, err := asBool(reply)
		if err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Mode: mode, Value: b}, nil
	}

	arr, err := asArray(reply)
	if err != nil {
		return ToggleResult{}, err
	}
	values := make([]*bool, len(arr))
	for i, entry := range arr {
		if entry == nil {
			continue
		}
		b, err := asBool(entry)
		if err != nil {
			return ToggleResult{}, err
		}
		values[i] = &b
	}
	return ToggleResult{Mode: mode, Values: values}, nil
}

// normalizeKeyList maps one array-of-names reply into a string slice.
func normalizeKeyList(reply common.Reply) ([]string, error) {
	arr, err := asArray(reply)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(arr))
	for i, entry := range arr {
		name, err := asBulk(entry)
		if err != nil {
			return nil, err
		}
		keys[i] = string(name)
	}
	return keys, nil
}

// normalizeKeys maps an object-keys reply into its tagged result. The
// JSONPath shape is a list of lists, one inner list per match, null for
// non-object locations.
func normalizeKeys(reply common.Reply, mode common.PathMode) (KeysResult, error) {
	if mode != common.PathModeJSONPath {
		keys, err := normalizeKeyList(reply)
		if err != nil {
			return KeysResult{}, err
		}
		return KeysResult{Mode: mode, Keys: keys}, nil
	}

	arr, err := asArray(reply)
	if err != nil {
		return KeysResult{}, err
	}
	perMatch := make([][]string, len(arr))
	for i, entry := range arr {
		if entry == nil {
			continue
		}
		keys, err := normalizeKeyList(entry)
		if err != nil {
			return KeysResult{}, err
		}
		perMatch[i] = keys
	}
	return KeysResult{Mode: mode, KeysPerMatch: perMatch}, nil
}

// normalizeInfo maps a store-info reply into a per-shard map. Standalone
// deployments answer with a single integer, reported under one synthetic
// entry.
func normalizeInfo(reply common.Reply) (map[string]int64, error) {
	switch r := reply.(type) {
	case common.ShardReplies:
		info := make(map[string]int64, len(r))
		for shard, entry := range r {
			n, err := asInt64(entry)
			if err != nil {
				return nil, err
			}
			info[shard] = n
		}
		return info, nil
	default:
		n, err := asInt64(reply)
		if err != nil {
			return nil, err
		}
		return map[string]int64{"standalone": n}, nil
	}
}
