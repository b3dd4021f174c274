package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvload/kvload/cmd/util"
	"github.com/kvload/kvload/lib/store/filestore"
	"github.com/kvload/kvload/lib/store/memstore"
	"github.com/kvload/kvload/lib/store/xmemstore"
)

var (
	memoryCmd = &cobra.Command{
		Use:   "memory",
		Short: "Drive the shared in-memory baseline backend",
		RunE: func(_ *cobra.Command, _ []string) error {
			return execute(memstore.New())
		},
	}

	xmemCmd = &cobra.Command{
		Use:   "xmem",
		Short: "Drive the lock-free in-memory backend",
		RunE: func(_ *cobra.Command, _ []string) error {
			return execute(xmemstore.New())
		},
	}

	fileCmd = &cobra.Command{
		Use:   "file",
		Short: "Drive the sharded file-backed durable backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := fileOptions(cmd)
			if err != nil {
				return err
			}

			target, err := filestore.New(opts)
			if err != nil {
				return err
			}
			return execute(target)
		},
	}
)

func init() {
	key := "output"
	fileCmd.Flags().String(key, "", util.WrapString("Output directory for the shard files (empty = a new temporary directory)"))

	key = "shards"
	fileCmd.Flags().Int(key, 8, util.WrapString("Number of shards (and files) to split the keyspace across"))

	key = "sync-every"
	fileCmd.Flags().Duration(key, filestore.DefaultFlushEvery, util.WrapString("Synchronous policy: how often to persist changes to disk"))

	key = "async-depth"
	fileCmd.Flags().Int(key, 0, util.WrapString("Asynchronous policy: queue depth of the per-shard write mailbox (selects the async policy)"))
}

// fileOptions assembles filestore options from the command line. Exactly one
// write policy may be selected; the synchronous one is the default.
func fileOptions(cmd *cobra.Command) (filestore.Options, error) {
	syncSelected := cmd.Flags().Changed("sync-every")
	asyncSelected := cmd.Flags().Changed("async-depth")
	if syncSelected && asyncSelected {
		return filestore.Options{}, fmt.Errorf("only one write policy may be selected: pass either --sync-every or --async-depth")
	}

	ser, err := util.GetSerializer()
	if err != nil {
		return filestore.Options{}, err
	}

	dir := viper.GetString("output")
	if dir == "" {
		dir, err = os.MkdirTemp("", "kvload-*")
		if err != nil {
			return filestore.Options{}, fmt.Errorf("create temporary output directory: %w", err)
		}
		log.Infof("using temporary output directory %s", dir)
	}

	opts := filestore.Options{
		ShardCount: viper.GetInt("shards"),
		Dir:        dir,
		Serializer: ser,
	}
	if asyncSelected {
		opts.Async = &filestore.AsyncOptions{QueueDepth: viper.GetInt("async-depth")}
	} else {
		opts.Sync = &filestore.SyncOptions{FlushEvery: viper.GetDuration("sync-every")}
	}
	return opts, nil
}
