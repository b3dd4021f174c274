package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvload/kvload/cmd/run"
	"github.com/kvload/kvload/cmd/util"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "kvload",
		Short: "key-value storage backends under load",
		Long: fmt.Sprintf(`kvload (v%s)

A pluggable key-value storage layer exercised by a concurrent load
generator, used to compare storage backends under configurable
workloads.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kvload",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kvload v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(run.RunCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use for shard snapshots (json, gob)"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
