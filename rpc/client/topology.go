package client

import (
	"github.com/docukv/djson/rpc/common"
)

// --------------------------------------------------------------------------
// Topology Resolution
// --------------------------------------------------------------------------

// resolveShardReplies applies an aggregation mode to the per-shard reply
// map of a clustered deployment.
//
// Single-value mode covers every single-key command: exactly one shard
// owns the key, so exactly one reply must be present. Any other
// cardinality means the transport broke the protocol contract - that is
// surfaced as a fatal consistency error, never coerced or retried.
//
// Multi-value mode keeps the map as-is; it is only used by commands whose
// documented contract is an explicit fan-out.
func resolveShardReplies(replies common.ShardReplies, mode common.AggregationMode) (common.Reply, error) {
	if mode == common.AggMultiValue {
		return replies, nil
	}

	if len(replies) != 1 {
		return nil, common.NewError(common.RetCConsistency,
			"single-value command answered by %d shards, expected exactly 1", len(replies))
	}
	for _, reply := range replies {
		return reply, nil
	}
	panic("unreachable")
}
