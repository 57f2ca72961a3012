package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "careerfit",
	Short: "Career fit assessment for credit risk",
	Long:  "CareerFit: a terminal assessment of your fit for a career as a Credit Risk Specialist.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", "", "Path to a .env file (default: ./.env when present)")
	flags.String("log-file", "", "Write logs to this file (overrides CAREERFIT_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides CAREERFIT_LOG_LEVEL)")
	flags.Bool("strict-catalog", false, "Fail when a scenario option has no score (overrides CAREERFIT_STRICT_CATALOG)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration from the env file and environment, then
// applies flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strict-catalog") {
		cfg.StrictCatalog, _ = flags.GetBool("strict-catalog")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stdoutFormatter builds a formatter for terminal output. Workbooks are
// binary, so xlsx is only written to files.
func stdoutFormatter(cmd *cobra.Command, format string) (report.Formatter, error) {
	if format == report.FormatXLSX {
		return nil, errors.New("xlsx output needs a file: use --out with a .xlsx path")
	}
	return report.NewFormatter(format, &report.FormatterOptions{Writer: cmd.OutOrStdout()})
}

// deps are the collaborators shared by every command.
type deps struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *slog.Logger
	closer  io.Closer
}

func (d *deps) Close() error {
	return d.closer.Close()
}

func setup(cmd *cobra.Command) (*deps, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.StrictCatalog {
		cat, err = catalog.NewDefault(catalog.WithStrictScenarios())
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	logger.Debug("configured", "command", cmd.Name(), "questions", cat.Len(), "strict_catalog", cfg.StrictCatalog)
	return &deps{cfg: cfg, catalog: cat, logger: logger, closer: closer}, nil
}
