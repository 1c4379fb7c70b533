// Package common contains the shared vocabulary of the dJSON RPC system:
// the command name tokens of the wire protocol, the Reply variant returned
// by transports, path and aggregation modes, the typed error system and
// the client configuration structures.
//
// Everything in this package is plain data - it performs no I/O and holds
// no state, so it can be used concurrently without coordination.
package common
