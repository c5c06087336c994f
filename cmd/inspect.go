package cmd

import (
	"fmt"

	"lead-consolidator/core/logger"
	"lead-consolidator/core/output"
	"lead-consolidator/core/store"
	"lead-consolidator/feature/leads"

	"github.com/spf13/cobra"
)

var failOnDuplicates bool

// inspectCmd reports duplicate key values without merging.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List duplicated identifying key values in a leads file",
	Long: `Scan a leads file and list every identifying key value held by more than
one record. Nothing is merged or written. With --fail the command exits
non-zero when duplicates are found, which suits CI checks on consolidated
output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, format, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		svc := leads.NewService(store.NewClient(cfg.Files), l, nil, cfg.Consolidate.Options())
		insp, err := svc.Inspect(cmd.Context(), cfg.Files.Input)
		if err != nil {
			return err
		}

		if err := output.NewFormatter(format).Format(cmd.OutOrStdout(), insp); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}

		if failOnDuplicates && !insp.Clean() {
			return fmt.Errorf("%s has %d duplicated key values", insp.Input, len(insp.Duplicates))
		}
		return nil
	},
}

func init() {
	addMatchFlags(inspectCmd.Flags())
	inspectCmd.Flags().BoolVar(&failOnDuplicates, "fail", false, "Exit non-zero when duplicates are found")

	RootCmd.AddCommand(inspectCmd)
}
