// Package rpc contains the command layer of the dJSON document store
// client. It translates typed method calls into ordered wire token
// vectors and raw protocol replies back into typed results.
//
// The package is organized into several subpackages:
//
//   - common: Core vocabulary shared across the system - command name
//     tokens, the Reply variant, path and aggregation modes, the typed
//     error system, configuration and logging.
//
//   - encoder: Argument vector construction, generic over the token
//     representation (text or binary-safe), plus option serialization.
//
//   - transport: The narrow interfaces through which commands reach a
//     deployment, with an in-process implementation (memory) backed by
//     lib/docstore.
//
//   - client: The typed store surface - dispatch, cluster topology
//     resolution and reply normalization.
package rpc
