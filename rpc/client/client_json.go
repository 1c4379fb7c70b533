package client

import (
	"github.com/docukv/djson/rpc/common"
	"github.com/docukv/djson/rpc/encoder"
	"github.com/docukv/djson/rpc/transport"
)

// --------------------------------------------------------------------------
// Store Construction
// --------------------------------------------------------------------------

// Store is the typed client surface of the document store. The type
// parameter fixes the token representation - UTF-8 text or binary-safe
// bytes - for every command sent through the store; the two can never mix
// within one invocation.
//
// Methods are synchronous and self-contained: no state is shared between
// calls, so a Store may be used from arbitrarily many goroutines. The
// only blocking point is the transport call; cancellation and retries
// are the transport's domain.
type Store[T encoder.Token] struct {
	config common.ClientConfig
	sender sender
}

// NewStore creates a document store client. The transport must match the
// configured deployment mode, otherwise a configuration error is
// returned.
func NewStore[T encoder.Token](config common.ClientConfig, t transport.ITransport) (*Store[T], error) {
	snd, err := newSender(config, t)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("created document store client with configuration:%s", config.String())
	return &Store[T]{config: config, sender: snd}, nil
}

// NewTextStore creates a client using UTF-8 text tokens.
func NewTextStore(config common.ClientConfig, t transport.ITransport) (*Store[string], error) {
	return NewStore[string](config, t)
}

// NewBinaryStore creates a client using binary-safe byte tokens.
func NewBinaryStore(config common.ClientConfig, t transport.ITransport) (*Store[[]byte], error) {
	return NewStore[[]byte](config, t)
}

// Close closes the underlying transport.
func (s *Store[T]) Close() error {
	return s.sender.close()
}

// checkKey rejects empty keys before any transport call is made.
func checkKey[T encoder.Token](key T) error {
	if len(key) == 0 {
		return common.NewError(common.RetCArgument, "key must not be empty")
	}
	return nil
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

// Set stores value (a serialized JSON document) at path inside key. The
// returned bool is true if the value was written.
func (s *Store[T]) Set(key, path, value T) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdSet).Add(key, path, value).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil {
		return false, err
	}
	return reply != nil, nil
}

// SetWithCondition stores value at path inside key, restricted by the
// conditional-write option. A nil reply (condition unmet) yields false.
func (s *Store[T]) SetWithCondition(key, path, value T, cond encoder.ConditionalChange) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdSet).
		Add(key, path, value).
		AddName(cond.ToArgs()...).
		Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil {
		return false, err
	}
	return reply != nil, nil
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

// Get returns the whole serialized document. The bool is false if the
// key does not exist.
func (s *Store[T]) Get(key T) (T, bool, error) {
	var zero T
	if err := checkKey(key); err != nil {
		return zero, false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdGet).Add(key).Build()
	return s.finishGet(args)
}

// GetPaths returns the serialized values at the given paths. With one
// path the value itself is returned (a JSON array of matches for a
// JSONPath); with several paths an object keyed by the path literals.
func (s *Store[T]) GetPaths(key T, paths ...T) (T, bool, error) {
	var zero T
	if err := checkKey(key); err != nil {
		return zero, false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdGet).Add(key).Add(paths...).Build()
	return s.finishGet(args)
}

// GetWithOptions is GetPaths with formatting directives. The option
// tokens precede the path tokens on the wire.
func (s *Store[T]) GetWithOptions(key T, opts encoder.GetOptions, paths ...T) (T, bool, error) {
	var zero T
	if err := checkKey(key); err != nil {
		return zero, false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdGet).
		Add(key).
		AddName(opts.ToArgs()...).
		Add(paths...).
		Build()
	return s.finishGet(args)
}

// finishGet sends an encoded JSON.GET and converts the bulk reply.
func (s *Store[T]) finishGet(args [][]byte) (T, bool, error) {
	var zero T
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil {
		return zero, false, err
	}
	if reply == nil {
		return zero, false, nil
	}
	value, err := asBulk(reply)
	if err != nil {
		return zero, false, err
	}
	return T(value), true, nil
}

// --------------------------------------------------------------------------
// Array Operations
// --------------------------------------------------------------------------

// ArrAppend appends the pre-quoted JSON values to the array(s) at path
// and reports the new length(s).
func (s *Store[T]) ArrAppend(key, path T, values ...T) (CountResult, error) {
	if err := checkKey(key); err != nil {
		return CountResult{}, err
	}
	mode := common.DetectPathMode(string(path))
	args := encoder.NewArgsBuilder[T](common.CmdArrAppend).Add(key, path).Add(values...).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil {
		return CountResult{}, err
	}
	return normalizeCount(reply, mode)
}

// ArrInsert inserts the pre-quoted JSON values at index into the
// array(s) at path and reports the new length(s). The index is encoded
// in canonical decimal text form.
func (s *Store[T]) ArrInsert(key, path T, index int, values ...T) (CountResult, error) {
	if err := checkKey(key); err != nil {
		return CountResult{}, err
	}
	mode := common.DetectPathMode(string(path))
	args := encoder.NewArgsBuilder[T](common.CmdArrInsert).
		Add(key, path).
		AddInt(int64(index)).
		Add(values...).
		Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil {
		return CountResult{}, err
	}
	return normalizeCount(reply, mode)
}

// ArrLen reports the length of the root array. The bool is false if the
// key does not exist.
func (s *Store[T]) ArrLen(key T) (int64, bool, error) {
	return s.rootCount(common.CmdArrLen, key)
}

// ArrLenAt reports the length of the array(s) at path. The bool is
// false if the key does not exist.
func (s *Store[T]) ArrLenAt(key, path T) (CountResult, bool, error) {
	return s.pathCount(common.CmdArrLen, key, path)
}

// --------------------------------------------------------------------------
// Object Operations
// --------------------------------------------------------------------------

// ObjLen reports the member count of the root object. The bool is false
// if the key does not exist.
func (s *Store[T]) ObjLen(key T) (int64, bool, error) {
	return s.rootCount(common.CmdObjLen, key)
}

// ObjLenAt reports the member count of the object(s) at path. The bool
// is false if the key does not exist.
func (s *Store[T]) ObjLenAt(key, path T) (CountResult, bool, error) {
	return s.pathCount(common.CmdObjLen, key, path)
}

// ObjKeys reports the member names of the root object. The bool is
// false if the key does not exist.
func (s *Store[T]) ObjKeys(key T) ([]string, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdObjKeys).Add(key).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return nil, false, err
	}
	keys, err := normalizeKeyList(reply)
	if err != nil {
		return nil, false, err
	}
	return keys, true, nil
}

// ObjKeysAt reports the member names of the object(s) at path. The bool
// is false if the key does not exist.
func (s *Store[T]) ObjKeysAt(key, path T) (KeysResult, bool, error) {
	if err := checkKey(key); err != nil {
		return KeysResult{}, false, err
	}
	mode := common.DetectPathMode(string(path))
	args := encoder.NewArgsBuilder[T](common.CmdObjKeys).Add(key, path).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return KeysResult{}, false, err
	}
	result, err := normalizeKeys(reply, mode)
	if err != nil {
		return KeysResult{}, false, err
	}
	return result, true, nil
}

// --------------------------------------------------------------------------
// Delete Operations
// --------------------------------------------------------------------------

// Del deletes the whole document and returns the number of deleted
// locations (0 if the key does not exist).
func (s *Store[T]) Del(key T) (int64, error) {
	return s.deleteCount(common.CmdDel, key, nil)
}

// DelAt deletes the locations matched by path and returns the deletion
// count. The count semantics are identical in both path modes.
func (s *Store[T]) DelAt(key, path T) (int64, error) {
	return s.deleteCount(common.CmdDel, key, &path)
}

// Forget is Del under the protocol's alias command name.
func (s *Store[T]) Forget(key T) (int64, error) {
	return s.deleteCount(common.CmdForget, key, nil)
}

// ForgetAt is DelAt under the protocol's alias command name.
func (s *Store[T]) ForgetAt(key, path T) (int64, error) {
	return s.deleteCount(common.CmdForget, key, &path)
}

// --------------------------------------------------------------------------
// Toggle Operation
// --------------------------------------------------------------------------

// Toggle flips the boolean at the document root and returns the new
// value. The middle bool is false if the key does not exist.
func (s *Store[T]) Toggle(key T) (bool, bool, error) {
	if err := checkKey(key); err != nil {
		return false, false, err
	}
	args := encoder.NewArgsBuilder[T](common.CmdToggle).Add(key).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return false, false, err
	}
	value, err := asBool(reply)
	if err != nil {
		return false, false, err
	}
	return value, true, nil
}

// ToggleAt flips the boolean(s) at path and reports the new value(s).
// The bool is false if the key does not exist.
func (s *Store[T]) ToggleAt(key, path T) (ToggleResult, bool, error) {
	if err := checkKey(key); err != nil {
		return ToggleResult{}, false, err
	}
	mode := common.DetectPathMode(string(path))
	args := encoder.NewArgsBuilder[T](common.CmdToggle).Add(key, path).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return ToggleResult{}, false, err
	}
	result, err := normalizeToggle(reply, mode)
	if err != nil {
		return ToggleResult{}, false, err
	}
	return result, true, nil
}

// --------------------------------------------------------------------------
// Admin Operations
// --------------------------------------------------------------------------

// StoreInfo reports the number of documents per shard. This is the one
// fan-out command: against a clustered deployment every shard answers
// and the per-shard map is returned as-is. A standalone deployment
// reports a single entry keyed "standalone".
func (s *Store[T]) StoreInfo() (map[string]int64, error) {
	args := encoder.NewArgsBuilder[T](common.CmdStoreInfo).Build()
	reply, err := s.sender.invoke(args, common.AggMultiValue)
	if err != nil {
		return nil, err
	}
	return normalizeInfo(reply)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// rootCount sends a counting command without a path token and returns
// the scalar count.
func (s *Store[T]) rootCount(cmd string, key T) (int64, bool, error) {
	if err := checkKey(key); err != nil {
		return 0, false, err
	}
	args := encoder.NewArgsBuilder[T](cmd).Add(key).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return 0, false, err
	}
	n, err := asInt64(reply)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// pathCount sends a counting command with a path token and normalizes
// the reply by the path's mode.
func (s *Store[T]) pathCount(cmd string, key, path T) (CountResult, bool, error) {
	if err := checkKey(key); err != nil {
		return CountResult{}, false, err
	}
	mode := common.DetectPathMode(string(path))
	args := encoder.NewArgsBuilder[T](cmd).Add(key, path).Build()
	reply, err := s.sender.invoke(args, common.AggSingleValue)
	if err != nil || reply == nil {
		return CountResult{}, false, err
	}
	result, err := normalizeCount(reply, mode)
	if err != nil {
		return CountResult{}, false, err
	}
	return result, true, nil
}

// deleteCount sends a delete-family command, with or without a path
// token, and returns the deletion count.
func (s *Store[T]) deleteCount(cmd string, key T, path *T) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	builder := encoder.NewArgsBuilder[T](cmd).Add(key)
	if path != nil {
		builder.Add(*path)
	}
	reply, err := s.sender.invoke(builder.Build(), common.AggSingleValue)
	if err != nil {
		return 0, err
	}
	return asInt64(reply)
}
