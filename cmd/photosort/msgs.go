package photosort

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sort photos into a date-based directory tree"
	MsgSortShort       = "Sort the files below the sources once"
	MsgWatchShort      = "Watch the sources and sort files as they arrive"
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a starter configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgVersionFormat   = "photosort version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten   = "Wrote configuration to %s\n"
	MsgManWritten      = "Wrote man pages to %s\n"
	MsgWatchStopped    = "Watcher stopped"
	MsgNoCommandError  = "no command specified"
	MsgSortFailedError = "%d of %d files could not be sorted"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/photosort/config.toml)"
	MsgFlagFormat     = "Output format: auto, term or text"
	MsgFlagTemplate   = "Destination path template"
	MsgFlagReplicator = "Replication strategy (%s); repeat to try several in order"
	MsgFlagOverwrite  = "Replace destinations that already exist"
	MsgFlagIgnore     = "Skip events whose path matches this regular expression"
	MsgFlagNoLock     = "Do not take the single-watcher lock"
	MsgFlagForce      = "Overwrite an existing configuration file"
	MsgFlagPath       = "Write the configuration to this path"
	MsgFlagManDir     = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/sort-example.txt
	msgSortExampleRaw string
	MsgSortExample    = strings.TrimRight(msgSortExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
