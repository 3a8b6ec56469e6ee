package photosort

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/photosort/pkg/config"
	"github.com/arthur-debert/photosort/pkg/filesystem"
	"github.com/arthur-debert/photosort/pkg/replicator"
	"github.com/arthur-debert/photosort/pkg/report"
	"github.com/arthur-debert/photosort/pkg/sort"
)

// addSortFlags registers the flags shared by sort and watch.
func addSortFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringSliceP("replicator", "r", nil,
		fmt.Sprintf(MsgFlagReplicator, strings.Join(replicator.KindNames(), ", ")))
	cmd.Flags().BoolP("overwrite", "o", false, MsgFlagOverwrite)
}

// flagValues collects the flags the user set, keyed by configuration key,
// so they override every other configuration layer. Positional arguments
// replace the configured sources.
func flagValues(cmd *cobra.Command, args []string) map[string]interface{} {
	values := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("template") {
		v, _ := flags.GetString("template")
		values["template"] = v
	}
	if flags.Changed("replicator") {
		v, _ := flags.GetStringSlice("replicator")
		values["replicators"] = v
	}
	if flags.Changed("overwrite") {
		v, _ := flags.GetBool("overwrite")
		values["overwrite"] = v
	}
	if flags.Changed("ignore") {
		v, _ := flags.GetString("ignore")
		values["watch.ignore_regex"] = v
	}
	if flags.Changed("no-lock") {
		v, _ := flags.GetBool("no-lock")
		values["watch.lock"] = !v
	}
	if len(args) > 0 {
		values["sources"] = args
	}
	return values
}

// loadConfig loads and validates the configuration for cmd.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configFile, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, err := config.Load(config.LoadOptions{
		File:  configFile,
		Flags: flagValues(cmd, args),
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSorter builds a sorter over the OS filesystem from cfg.
func newSorter(cfg *config.Config) (*sort.Sorter, error) {
	fsys := filesystem.NewOS()
	chain, err := replicator.New(fsys, cfg.ReplicatorKinds())
	if err != nil {
		return nil, err
	}

	tmpl := cfg.Template
	return sort.New(sort.Config{
		Template:   &tmpl,
		Replicator: chain,
		Overwrite:  cfg.Overwrite,
	}, sort.WithFS(fsys)), nil
}

// newReporter writes to the command's output in the --format format.
func newReporter(cmd *cobra.Command) (*report.Reporter, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return report.New(cmd.OutOrStdout(), format), nil
}
