package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"lead-consolidator/core/config"
	"lead-consolidator/core/dedupe"
	"lead-consolidator/core/logger"
	"lead-consolidator/core/output"
	"lead-consolidator/core/store"
	"lead-consolidator/feature/leads"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	// Flags shared by consolidate and inspect
	inputPath      string
	keysFlag       []string
	timestampField string
	maxPasses      int
	skipMissing    bool
	formatFlag     string

	// Flags for consolidate only
	outputPath string
	dryRun     bool
	yesConfirm bool
)

// consolidateCmd merges duplicate leads and writes the result.
var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Merge duplicate leads into one record per person",
	Long: `Read a leads file, merge every group of records that share an identifying
key, and write the consolidated leads. Every field change is appended to the
change log.

Examples:
  # Use the configured files (leads.json -> consolidated-leads.json)
  consolidate

  # Preview without writing the output or the change log
  consolidate --dry-run

  # Match on email only and read YAML
  consolidate --input leads.yaml --keys email

  # Overwrite an existing output without prompting
  consolidate --output out.json --yes`,
	RunE: runConsolidate,
}

func init() {
	addMatchFlags(consolidateCmd.Flags())
	consolidateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output leads file (overrides files.output)")
	consolidateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan the merge without writing anything")
	consolidateCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Overwrite an existing output file without prompting")

	RootCmd.AddCommand(consolidateCmd)
}

func addMatchFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&inputPath, "input", "i", "", "Input leads file (overrides files.input)")
	fs.StringSliceVarP(&keysFlag, "keys", "k", nil, "Identifying keys in priority order (overrides consolidate.keys)")
	fs.StringVar(&timestampField, "timestamp-field", "", "Field used to order records (overrides consolidate.timestamp_field)")
	fs.IntVar(&maxPasses, "max-passes", 0, "Maximum number of passes (overrides consolidate.max_passes)")
	fs.BoolVar(&skipMissing, "skip-missing", false, "Do not group records that lack an identifying key")
	fs.StringVarP(&formatFlag, "format", "f", "", "Report format: table, json or yaml (default: table on a terminal, json otherwise)")
}

// loadSettings reads the configuration and applies any flags that were set.
func loadSettings(cmd *cobra.Command) (*config.Config, output.Format, error) {
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Files.Input = inputPath
	}
	if flags.Changed("output") {
		cfg.Files.Output = outputPath
	}
	if flags.Changed("keys") {
		cfg.Consolidate.Keys = keysFlag
	}
	if flags.Changed("timestamp-field") {
		cfg.Consolidate.TimestampField = timestampField
	}
	if flags.Changed("max-passes") {
		cfg.Consolidate.MaxPasses = maxPasses
	}
	if flags.Changed("skip-missing") {
		cfg.Consolidate.SkipMissing = skipMissing
	}

	return cfg, output.DetectFormat(string(format)), nil
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, format, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	// stdout carries the report itself unless it is a table.
	if format != output.FormatTable {
		cfg.Log.MirrorTo = "stderr"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client := store.NewClient(cfg.Files)
	opts := cfg.Consolidate.Options()

	var report *leads.Report
	if dryRun {
		svc := leads.NewService(client, l, dedupe.NopChangeLog(), opts)
		report, err = svc.Plan(ctx, cfg.Files.Input)
		if err != nil {
			return err
		}
		l.Info("Dry-run mode: No changes were made.")
	} else {
		if !confirmOverwrite(cfg.Files.Output) {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		changes, err := logger.NewChangeLog(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to open change log: %w", err)
		}
		defer changes.Sync()

		svc := leads.NewService(client, l, dedupe.ZapChangeLog(changes), opts)
		report, err = svc.Consolidate(ctx, cfg.Files.Input, cfg.Files.Output)
		if err != nil {
			return err
		}
	}

	if err := output.NewFormatter(format).Format(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	l.Debug("Report printed", zap.String("format", string(format)))
	return nil
}

// confirmOverwrite asks before replacing an existing output file. It only
// prompts when stdin is a terminal; --yes and non-interactive runs proceed.
func confirmOverwrite(path string) bool {
	if yesConfirm {
		return true
	}
	if _, err := os.Stat(path); err != nil {
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return true
	}

	fmt.Fprintf(os.Stderr, "\n%s already exists. Type 'yes' to overwrite it: ", path)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
