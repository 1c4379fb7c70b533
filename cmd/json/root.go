package json

import (
	"github.com/spf13/cobra"

	"github.com/docukv/djson/cmd/util"
	"github.com/docukv/djson/rpc/client"
	"github.com/docukv/djson/rpc/common"
)

var (
	store *client.Store[string]

	// DocumentCommands represents the JSON command group
	DocumentCommands = &cobra.Command{
		Use:               "json",
		Short:             "Perform JSON document store operations",
		PersistentPreRunE: setupJSONClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common client flags to the JSON command
	util.SetupClientFlags(DocumentCommands)

	// Add subcommands
	DocumentCommands.AddCommand(setCmd)
	DocumentCommands.AddCommand(getCmd)
	DocumentCommands.AddCommand(arrAppendCmd)
	DocumentCommands.AddCommand(arrInsertCmd)
	DocumentCommands.AddCommand(arrLenCmd)
	DocumentCommands.AddCommand(objLenCmd)
	DocumentCommands.AddCommand(objKeysCmd)
	DocumentCommands.AddCommand(delCmd)
	DocumentCommands.AddCommand(toggleCmd)
	DocumentCommands.AddCommand(infoCmd)
	DocumentCommands.AddCommand(perfTestCmd)
}

// setupJSONClient initializes the document store client
func setupJSONClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration
	config := util.GetClientConfig()
	common.InitLoggers(config)

	// Get the transport matching the deployment mode
	t, err := util.GetTransport(config)
	if err != nil {
		return err
	}

	// Create the client
	store, err = client.NewTextStore(config, t)
	return err
}
