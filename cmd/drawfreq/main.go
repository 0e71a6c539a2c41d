// Package main provides the CLI entrypoint for drawfreq.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/drawfreq/internal/config"
	"github.com/verte-zerg/drawfreq/internal/dataset"
	"github.com/verte-zerg/drawfreq/internal/logging"
	"github.com/verte-zerg/drawfreq/internal/model"
	"github.com/verte-zerg/drawfreq/internal/render"
	"github.com/verte-zerg/drawfreq/internal/stats"
	"github.com/verte-zerg/drawfreq/internal/statsui"
)

const (
	defaultTop            = stats.DefaultTop
	defaultInvalid        = "error"
	defaultTimeout        = 60 * time.Second
	defaultLogLevel       = "info"
	defaultWinningColumn  = "Winning Numbers"
	defaultCashBallColumn = "Cash Ball"
	defaultFormat         = "png"
	defaultOutDir         = "."
)

var (
	configPath     string
	top            int
	invalidPolicy  string
	timeout        time.Duration
	logLevel       string
	logJSON        bool
	winningColumn  string
	cashBallColumn string

	reportColor bool

	exportFormat string
	exportOutDir string
	exportWidth  int
	exportHeight int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drawfreq [source]",
		Short:         "Lottery number frequency charts",
		Long:          "Count how often each winning number and cash ball was drawn and chart the results.\nThe source is a CSV file path, - for stdin, or an http(s) URL.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	flags.IntVar(&top, "top", defaultTop, "number of most frequent values to highlight")
	flags.StringVar(&invalidPolicy, "invalid", defaultInvalid, "invalid token policy: error, bucket or skip")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "load timeout (0 disables)")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	flags.StringVar(&winningColumn, "winning-column", defaultWinningColumn, "header of the winning numbers column")
	flags.StringVar(&cashBallColumn, "cash-ball-column", defaultCashBallColumn, "header of the cash ball column")

	rootCmd.Flags().BoolVar(&reportColor, "color", false, "force ANSI colors in the text report")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	report, fileCfg, err := loadReport(cmd, args)
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "color", &reportColor, fileCfg.Chart.Color)

	r := render.Text{ForceColor: reportColor, TableRows: report.Winning.Top}
	if err := render.RenderAll(cmd.OutOrStdout(), r, report.Charts()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [source]",
		Short: "Write PNG or SVG charts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFormat, "format", defaultFormat, "image format: png or svg")
	cmd.Flags().StringVar(&exportOutDir, "out-dir", defaultOutDir, "output directory")
	cmd.Flags().IntVar(&exportWidth, "width", render.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&exportHeight, "height", render.DefaultHeight, "image height in pixels")
	return cmd
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	report, fileCfg, err := loadReport(cmd, args)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "format", &exportFormat, fileCfg.Chart.Format)
	applyStringConfig(cmd, "out-dir", &exportOutDir, fileCfg.Chart.OutDir)
	applyIntConfig(cmd, "width", &exportWidth, fileCfg.Chart.Width)
	applyIntConfig(cmd, "height", &exportHeight, fileCfg.Chart.Height)

	chartCfg := model.ChartConfig{
		Width:  exportWidth,
		Height: exportHeight,
		Format: exportFormat,
		OutDir: exportOutDir,
	}
	if err := validateChartConfig(chartCfg); err != nil {
		return err
	}
	format, err := render.ParseFormat(chartCfg.Format)
	if err != nil {
		return err
	}

	im := render.Image{Format: format, Width: chartCfg.Width, Height: chartCfg.Height}
	paths, err := render.WriteFiles(chartCfg.OutDir, report.Charts(), im)
	if err != nil {
		return fmt.Errorf("failed to export charts: %w", err)
	}
	logger := logging.FromContext(cmd.Context())
	for _, path := range paths {
		logging.LogOperation(logger, "chart written", slog.String("path", path))
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [source]",
		Short: "Browse charts interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	report, _, err := loadReport(cmd, args)
	if err != nil {
		return err
	}
	program := tea.NewProgram(statsui.NewModel(report), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// loadReport merges flags over the config file, sets up logging and builds the report.
func loadReport(cmd *cobra.Command, args []string) (stats.Report, config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return stats.Report{}, config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, args, fileCfg)
	if err != nil {
		return stats.Report{}, fileCfg, err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return stats.Report{}, fileCfg, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level, logJSON)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	report, err := stats.BuildReport(ctx, cfg)
	if err != nil {
		logging.LogError(logger, "report failed", err, slog.String("source", cfg.Source))
		return stats.Report{}, fileCfg, err
	}
	return report, fileCfg, nil
}

func resolveConfig(cmd *cobra.Command, args []string, fileCfg config.FileConfig) (model.Config, error) {
	applyIntConfig(cmd, "top", &top, fileCfg.Chart.Top)
	applyStringConfig(cmd, "invalid", &invalidPolicy, fileCfg.Data.Invalid)
	applyStringConfig(cmd, "winning-column", &winningColumn, fileCfg.Data.WinningColumn)
	applyStringConfig(cmd, "cash-ball-column", &cashBallColumn, fileCfg.Data.CashBallColumn)
	if err := applyDurationConfig(cmd, "timeout", &timeout, fileCfg.Data.Timeout); err != nil {
		return model.Config{}, err
	}

	source := ""
	if fileCfg.Data.Source != nil {
		source = *fileCfg.Data.Source
	}
	if len(args) > 0 {
		source = args[0]
	}

	cfg := model.Config{
		Source:         strings.TrimSpace(source),
		WinningColumn:  winningColumn,
		CashBallColumn: cashBallColumn,
		Invalid:        invalidPolicy,
		Timeout:        timeout,
		Top:            top,
		Stdin:          cmd.InOrStdin(),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(*value))
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# drawfreq configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# source = "draws.csv"            # File path, "-" for stdin, or http(s) URL
# winning-column = %q  # Header of the winning numbers column
# cash-ball-column = %q      # Header of the cash ball column
# invalid = %q                 # Invalid token policy: error, bucket or skip
# timeout = %q                   # Load timeout (0s disables)

[chart]
# top = %d                         # Number of values to highlight
# width = %d                     # Image width in pixels
# height = %d                    # Image height in pixels
# format = %q                   # Image format: png or svg
# out-dir = %q                    # Export directory
# color = false                   # Force ANSI colors in the text report
`,
		defaultWinningColumn,
		defaultCashBallColumn,
		defaultInvalid,
		defaultTimeout.String(),
		defaultTop,
		render.DefaultWidth,
		render.DefaultHeight,
		defaultFormat,
		defaultOutDir,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Source == "" {
		return fmt.Errorf("no source given (pass a CSV path, URL or %s for stdin)", dataset.StdinSource)
	}
	if cfg.Top <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if _, err := stats.ParsePolicy(cfg.Invalid); err != nil {
		return fmt.Errorf("--invalid: %w", err)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("--timeout must be >= 0")
	}
	if strings.TrimSpace(cfg.WinningColumn) == "" || strings.TrimSpace(cfg.CashBallColumn) == "" {
		return fmt.Errorf("column names must not be empty")
	}
	if cfg.WinningColumn == cfg.CashBallColumn {
		return fmt.Errorf("winning and cash ball columns must differ")
	}
	return nil
}

func validateChartConfig(cfg model.ChartConfig) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("--height must be > 0")
	}
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return fmt.Errorf("--out-dir must not be empty")
	}
	return nil
}
