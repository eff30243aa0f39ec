package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sdejongh/configdiff/pkg/config"
	"github.com/sdejongh/configdiff/pkg/diff"
	"github.com/sdejongh/configdiff/pkg/logging"
	"github.com/sdejongh/configdiff/pkg/models"
	"github.com/sdejongh/configdiff/pkg/output"
	"github.com/sdejongh/configdiff/pkg/parsers"
)

// DiffFlags holds the root command flag values
type DiffFlags struct {
	OutputFormat string
	IgnoreOrder  bool
	OutputFile   string
	Color        string
}

var diffFlags DiffFlags

// NewRootCommand creates the root command. The comparison itself runs on
// the root: `configdiff BEFORE AFTER`.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configdiff BEFORE AFTER",
		Short: "Structure-aware configuration diff tool",
		Long: `configdiff compares two configuration files semantically and reports
added, removed, modified, and type-changed values.

Both files must use the same format (json, yaml, toml or ini, detected by
extension). Exit code 0 means the files are identical, 1 means differences
were found, 2 means an error occurred.`,
		Example:       "  configdiff before.yaml after.yaml --format json",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDiff,
	}

	AddGlobalFlags(cmd)

	cmd.Flags().StringVarP(&diffFlags.OutputFormat, "format", "f", "text", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&diffFlags.IgnoreOrder, "ignore-order", false, "ignore list ordering when comparing arrays")
	cmd.Flags().StringVarP(&diffFlags.OutputFile, "output-file", "o", "", "write output to FILE instead of stdout")
	cmd.Flags().StringVar(&diffFlags.Color, "color", "auto", "colorize text output: auto, always, never")

	cmd.AddCommand(NewFormatsCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	status, err := executeDiff(cmd, args[0], args[1])
	if err != nil {
		return err
	}

	os.Exit(status.ExitCode())
	return nil
}

// executeDiff performs the whole load-parse-compare-render pipeline and
// returns the exit status (split from runDiff for testability)
func executeDiff(cmd *cobra.Command, beforePath, afterPath string) (models.ExitStatus, error) {
	cfg, err := loadConfig()
	if err != nil {
		return models.StatusError, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return models.StatusError, err
	}

	logging.Setup(globalFlags.Verbose, globalFlags.Quiet, cfg.Logging.Level)
	logger := logging.GetLogger("cli")

	for _, path := range []string{beforePath, afterPath} {
		info, err := os.Stat(path)
		if err != nil {
			return models.StatusError, fmt.Errorf("file not found: %s", path)
		}
		if info.IsDir() {
			return models.StatusError, fmt.Errorf("not a file: %s", path)
		}
	}

	registry := parsers.NewRegistry()

	beforeFormat, err := registry.DetectFormat(beforePath)
	if err != nil {
		return models.StatusError, err
	}
	afterFormat, err := registry.DetectFormat(afterPath)
	if err != nil {
		return models.StatusError, err
	}

	if beforeFormat != afterFormat {
		return models.StatusError, fmt.Errorf(
			"format mismatch: %s is %s, but %s is %s; both files must use the same configuration format",
			beforePath, beforeFormat, afterPath, afterFormat)
	}

	parser, err := registry.ByFormat(beforeFormat)
	if err != nil {
		return models.StatusError, err
	}

	before, err := parser.Parse(beforePath)
	if err != nil {
		return models.StatusError, err
	}
	after, err := parser.Parse(afterPath)
	if err != nil {
		return models.StatusError, err
	}

	logger.Info().
		Str("format", beforeFormat).
		Str("before", beforePath).
		Str("after", afterPath).
		Bool("ignore_order", cfg.Diff.IgnoreOrder).
		Msg("comparing files")

	result := diff.Compare(before, after, cfg.Diff.IgnoreOrder, map[string]any{
		"before": beforePath,
		"after":  afterPath,
		"format": beforeFormat,
	})

	formatter, err := output.New(cfg.Output.Format, colorEnabled(cfg.Output.Color))
	if err != nil {
		return models.StatusError, err
	}

	rendered, err := formatter.Format(result)
	if err != nil {
		return models.StatusError, err
	}

	if diffFlags.OutputFile != "" {
		if err := os.WriteFile(diffFlags.OutputFile, []byte(rendered+"\n"), 0644); err != nil {
			return models.StatusError, fmt.Errorf("cannot write to %s: %w", diffFlags.OutputFile, err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}

	return result.Status(), nil
}

// loadConfig loads the configuration from --config or the default location
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config file values with flags the user
// actually set
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = diffFlags.OutputFormat
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = diffFlags.Color
	}
	if cmd.Flags().Changed("ignore-order") {
		cfg.Diff.IgnoreOrder = diffFlags.IgnoreOrder
	}
}

// colorEnabled resolves the colour mode against the actual output
// destination: auto means colour only when writing to a terminal
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return diffFlags.OutputFile == "" && isatty.IsTerminal(os.Stdout.Fd())
	}
}
