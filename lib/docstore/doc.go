// Package docstore provides an in-memory JSON document engine with
// path-addressed operations. It backs the in-process memory transport,
// giving the client module a complete deployment to run against without
// a real server.
//
// The package focuses on:
//   - An ordered JSON value model: object member order is preserved, and
//     numbers are kept in their literal form (json.Number), so documents
//     serialize deterministically and round-trip unchanged.
//   - A document path engine supporting both addressing modes of the
//     wire protocol: JSONPath form (leading '$', zero or more matches)
//     and legacy form (at most one reported match, stricter errors).
//   - A concurrency safe document map (xsync) with per-document locking.
//
// Reply shape semantics live here on purpose: a real server decides
// between scalar and per-match replies, so the test double has to make
// the same decisions for the client's normalization layer to be
// exercised honestly.
package docstore
