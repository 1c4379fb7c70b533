// Package client implements the caller-facing surface of the document
// store: typed methods that encode path-addressed JSON operations into
// wire token vectors, dispatch them through a transport and normalize
// the heterogeneous replies back into typed results.
//
// Three concerns live here:
//
//   - Dispatch: a sender capability is selected once at construction
//     from the configured deployment mode (standalone vs cluster); an
//     unrecognized mode is a configuration error.
//
//   - Topology resolution: clustered transports answer with per-shard
//     reply maps. Single-key commands assert exactly one shard reply;
//     the one fan-out command (StoreInfo) keeps the whole map.
//
//   - Reply normalization: the path mode detected at encode time (legacy
//     vs JSONPath, by the leading '$') decides whether a reply is a
//     scalar or a per-match list, per the protocol's documented table.
//
// The Store type is generic over the token representation, so the full
// surface exists for UTF-8 text and binary-safe tokens without
// duplicating any logic.
package client
