// Package memory provides in-process implementations of the client
// transport interfaces, backed by lib/docstore. The standalone flavor
// wraps one document store; the cluster flavor partitions keys over
// several stores by key hash and answers with per-shard reply maps,
// exercising the same topology resolution a real cluster requires.
//
// The package exists so the module can be tested and used end-to-end
// without a network or a production server. It is not a server
// implementation: there is no framing, no routing table and no retry
// logic.
package memory
