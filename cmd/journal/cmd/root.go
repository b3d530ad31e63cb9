// Package cmd contains all CLI commands for the journal tool.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/journal/internal/api"
	"github.com/f3rmion/journal/internal/config"
	"github.com/f3rmion/journal/internal/logging"
	"github.com/f3rmion/journal/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "AI Reflection - a journaling companion for your terminal",
	Long: `journal sends what you write to a reflection service and types back
a short reflection, an affirmation, and a few prompts to keep reflecting on.

The service address defaults to http://localhost:8080 and can be changed
with --api-url, the JOURNAL_API_URL environment variable, or api_url in
config.yaml.

Running 'journal' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/journal)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
	rootCmd.PersistentFlags().String("api-url", "", "reflection service base URL")
	rootCmd.PersistentFlags().String("log-file", "", "log file (default is <config>/journal.log)")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyAPIURL, rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig resolves the config directory.
func initConfig() {
	if cfgDir != "" {
		viper.Set(config.KeyConfigDir, cfgDir)
		return
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
		os.Exit(1)
	}
	viper.Set(config.KeyConfigDir, dir)
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString(config.KeyConfigDir)
}

// runtimeDeps holds what every command needs to talk to the service.
type runtimeDeps struct {
	cfg     *config.Config
	client  *api.Client
	logger  *zap.Logger
	cleanup func()
}

// loadRuntime loads configuration and builds the logger and API client.
func loadRuntime() (*runtimeDeps, error) {
	cfg, err := config.Load(viper.GetViper(), getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, cleanup, err := logging.New(logging.Options{Path: cfg.LogFile, Verbose: cfg.Verbose})
	if err != nil {
		// Logging is best effort; the journal still works without it.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, cleanup = logging.Nop(), func() {}
	}

	client := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger.Named("api")),
	)

	logger.Info("journal starting",
		zap.String("api_url", client.BaseURL()),
		zap.String("config_file", cfg.ConfigFile),
	)

	return &runtimeDeps{cfg: cfg, client: client, logger: logger, cleanup: cleanup}, nil
}

// runTUI launches the unified TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	deps, err := loadRuntime()
	if err != nil {
		return err
	}
	defer deps.cleanup()

	p := tea.NewProgram(
		tui.NewApp(deps.cfg, deps.client, deps.logger.Named("session")),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
