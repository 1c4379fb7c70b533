// Package cmd implements the djson command line interface. The json
// command group exposes one subcommand per document store operation and
// talks to an in-process deployment (standalone or clustered) selected
// via flags or DJSON_* environment variables.
package cmd
