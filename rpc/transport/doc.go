// Package transport defines the narrow interfaces through which the dJSON
// client talks to a deployment. The client makes no assumptions about
// what is behind them - network framing, routing, retries and timeouts
// all live on the other side of these interfaces.
//
// The memory subpackage provides an in-process implementation of both
// interfaces backed by lib/docstore, used by the test suite and the CLI.
package transport
