package client

import (
	"github.com/docukv/djson/rpc/common"
)

// --------------------------------------------------------------------------
// Tagged Result Types
// --------------------------------------------------------------------------

// CountResult is the result of a counting operation (array lengths,
// object sizes, new lengths after an array mutation). The path mode
// chosen at encode time decides which field is populated: Count for a
// legacy path, Counts for a JSONPath with one entry per matched location
// in server order, nil where the location had the wrong type.
type CountResult struct {
	Mode   common.PathMode
	Count  int64
	Counts []*int64
}

// ToggleResult is the result of a toggle operation, shaped like
// CountResult.
type ToggleResult struct {
	Mode   common.PathMode
	Value  bool
	Values []*bool
}

// KeysResult is the result of an object-keys operation. Keys holds the
// member names of the one legacy match; KeysPerMatch holds one name list
// per JSONPath match, nil where the location was not an object.
type KeysResult struct {
	Mode         common.PathMode
	Keys         []string
	KeysPerMatch [][]string
}
