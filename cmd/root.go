package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docukv/djson/cmd/json"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "djson",
		Short: "JSON document store client",
		Long: fmt.Sprintf(`dJSON (v%s)

A client for path-addressed JSON document operations over a
key-value wire protocol, supporting standalone and clustered
deployments.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dJSON",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dJSON v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(json.DocumentCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
