package cmd

import (
	"fmt"
	"os"

	"lead-consolidator/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lead-consolidator",
	Short: "Lead deduplication and merge tool",
	Long: `Lead Consolidator merges duplicate lead records into one up-to-date record
per person. Records are matched on identifying keys (by default _id and email)
and merged oldest to newest until no duplicates remain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
