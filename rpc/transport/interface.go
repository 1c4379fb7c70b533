package transport

import (
	"github.com/docukv/djson/rpc/common"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// ITransport is the marker interface all client transports implement. A
// concrete transport additionally implements IExecutor (standalone
// deployments), IClusterExecutor (clustered deployments) or both; the
// client asserts the capability matching its configured deployment mode
// once at construction.
type ITransport interface {
	// Close closes the transport connection
	Close() error
}

// IExecutor is the downstream surface consumed for standalone
// deployments. The client treats it as opaque: retries, timeouts and
// cancellation are entirely the transport's responsibility.
type IExecutor interface {
	ITransport

	// Send sends one encoded argument vector and returns the raw reply.
	// A server-side error reply is returned as an error carrying the
	// server's original error text.
	Send(args [][]byte) (common.Reply, error)
}

// IClusterExecutor is the per-shard variant for clustered deployments.
// Replies arrive as a map of shard id to raw reply.
type IClusterExecutor interface {
	ITransport

	// Send routes a single-key command to the shard owning the key. The
	// returned map holds the replying shard's value, keyed by shard id.
	Send(args [][]byte) (common.ShardReplies, error)

	// SendAll fans a command out to every shard and collects all replies.
	SendAll(args [][]byte) (common.ShardReplies, error)
}
