package photosort

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/photosort/internal/version"
	"github.com/arthur-debert/photosort/pkg/config"
	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/logging"
	"github.com/arthur-debert/photosort/pkg/sort"
	"github.com/arthur-debert/photosort/pkg/watch"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sort [sources...]",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		Example: MsgSortExample,
		GroupID: "core",
		RunE:    runSort,
	}
	addSortFlags(cmd)
	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	logger := logging.WithFields(map[string]interface{}{"command": "sort"})

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	rep, err := newReporter(cmd)
	if err != nil {
		return err
	}
	sorter, err := newSorter(cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Strs("sources", cfg.Sources).
		Str("template", cfg.Template.String()).
		Bool("overwrite", cfg.Overwrite).
		Msg("Sorting sources")

	done := logging.LogOperationStart(logger, "sort")
	summary := sorter.SortPaths(cfg.Sources, func(res sort.Result) {
		if err := rep.Result(res); err != nil {
			logger.Warn().Err(err).Str("path", res.Path).Msg("Failed to report result")
		}
	})
	done()

	if err := rep.Summary(summary); err != nil {
		return err
	}

	logger.Info().
		Int("replicated", summary.Replicated).
		Int("overwritten", summary.Overwritten).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("Sort finished")

	if summary.Failed() {
		return errors.Newf(errors.ErrSortFailed, MsgSortFailedError, summary.Errors, summary.Total()).
			WithDetail("errors", summary.Errors)
	}
	return nil
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch [sources...]",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Example: MsgWatchExample,
		GroupID: "core",
		RunE:    runWatch,
	}
	addSortFlags(cmd)
	cmd.Flags().String("ignore", "", MsgFlagIgnore)
	cmd.Flags().Bool("no-lock", false, MsgFlagNoLock)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.watch")
	defer logging.LogDuration(time.Now(), "watch")

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	ignore, err := cfg.IgnorePattern()
	if err != nil {
		return err
	}
	rep, err := newReporter(cmd)
	if err != nil {
		return err
	}
	sorter, err := newSorter(cfg)
	if err != nil {
		return err
	}

	if cfg.Watch.Lock {
		path, err := cfg.LockPath()
		if err != nil {
			return err
		}
		lock, err := watch.AcquireLock(path)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Str("lock", lock.Path()).Msg("Failed to release lock")
			}
		}()
		logger.Debug().Str("lock", lock.Path()).Msg("Acquired watch lock")
	}

	w, err := watch.NewWatcher(cfg.Sources)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := watch.NewHandler(sorter, watch.Filter{Ignore: ignore})
	logger.Info().
		Strs("watching", w.WatchList()).
		Str("template", cfg.Template.String()).
		Msg("Watching for changes")

	err = watch.Serve(ctx, w, handler, func(res watch.HandlerResult) {
		switch res.Kind {
		case watch.ResultIgnored:
			logger.Trace().Str("event", res.Event.String()).Msg("Ignored event")
		case watch.ResultFiltered:
			logger.Debug().
				Str("event", res.Event.String()).
				Str("reason", res.Reason.String()).
				Msg("Filtered event")
		}
		if err := rep.HandlerResult(res); err != nil {
			logger.Warn().Err(err).Msg("Failed to report result")
		}
	})
	logger.Info().Msg(MsgWatchStopped)
	return err
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.WriteStarterConfig(path, force)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, written)
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagPath)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", dir)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate man pages")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

// ManHeader is the header of every generated man page.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PHOTOSORT",
		Section: "1",
		Source:  "photosort " + version.Version,
		Manual:  "photosort manual",
	}
}
