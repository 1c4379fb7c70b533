package client

import (
	"reflect"
	"testing"

	"github.com/docukv/djson/rpc/common"
)

// TestResolveShardReplies tests the cardinality contract of the two
// aggregation modes
func TestResolveShardReplies(t *testing.T) {
	t.Run("SingleValueUnwraps", func(t *testing.T) {
		reply, err := resolveShardReplies(
			common.ShardReplies{"shard-2": int64(5)}, common.AggSingleValue)
		if err != nil {
			t.Fatalf("resolveShardReplies failed: %v", err)
		}
		if reply != int64(5) {
			t.Errorf("reply = %#v, want int64(5)", reply)
		}
	})

	t.Run("SingleValueZeroShards", func(t *testing.T) {
		_, err := resolveShardReplies(common.ShardReplies{}, common.AggSingleValue)
		if common.CodeOf(err) != common.RetCConsistency {
			t.Errorf("empty reply map should be a consistency error, got %v", err)
		}
	})

	t.Run("SingleValueTwoShards", func(t *testing.T) {
		replies := common.ShardReplies{"shard-0": int64(1), "shard-1": int64(1)}
		_, err := resolveShardReplies(replies, common.AggSingleValue)
		if common.CodeOf(err) != common.RetCConsistency {
			t.Errorf("two answering shards should be a consistency error, got %v", err)
		}
	})

	t.Run("MultiValueKeepsMap", func(t *testing.T) {
		replies := common.ShardReplies{"shard-0": int64(1), "shard-1": int64(2)}
		reply, err := resolveShardReplies(replies, common.AggMultiValue)
		if err != nil {
			t.Fatalf("resolveShardReplies failed: %v", err)
		}
		if !reflect.DeepEqual(reply, replies) {
			t.Errorf("reply = %#v, want the untouched map", reply)
		}
	})
}
