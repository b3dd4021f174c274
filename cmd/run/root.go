package run

import (
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvload/kvload/cmd/util"
	"github.com/kvload/kvload/lib/logging"
)

var (
	log = logger.GetLogger("cmd")

	// RunCommands represents the run command group
	RunCommands = &cobra.Command{
		Use:               "run",
		Short:             "Run the load generator against a storage backend",
		PersistentPreRunE: setup,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add the shared load generator flags to the command group
	util.SetupLoadFlags(RunCommands)

	// Add subcommands
	RunCommands.AddCommand(memoryCmd)
	RunCommands.AddCommand(xmemCmd)
	RunCommands.AddCommand(fileCmd)
}

// setup binds flags and configures logging for all run subcommands
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	logging.InitLoggers(viper.GetString("log-level"))
	return nil
}
