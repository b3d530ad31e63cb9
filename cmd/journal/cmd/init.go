package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/journal/internal/config"
	"github.com/f3rmion/journal/internal/journal"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize journal configuration",
	Long: `Initialize journal configuration files in your config directory.

This creates:
  - config.yaml   (service URL, timeout, typing speed, contact)
  - prompts.yaml  (example entries shown before your first reflection)

Environment variables with the JOURNAL_ prefix override config.yaml,
e.g. JOURNAL_API_URL=https://reflect.example.com.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	out := cmd.OutOrStdout()
	created, err := writeConfigFiles(configDir, force)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Initializing journal configuration in %s\n\n", configDir)
	for _, file := range created {
		fmt.Fprintf(out, "  Created %s\n", file)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Point api_url in config.yaml at your reflection service")
	fmt.Fprintln(out, "  2. Run 'journal' to open the journal")
	fmt.Fprintln(out, "  3. Run 'journal reflect \"how I feel\"' for a quick one-off reflection")

	return nil
}

// writeConfigFiles writes the template files into configDir. Existing files
// are only replaced when force is set.
func writeConfigFiles(configDir string, force bool) ([]string, error) {
	configPath := filepath.Join(configDir, config.ConfigFileName)
	promptsPath := filepath.Join(configDir, config.PromptsFileName)

	if !force {
		for _, path := range []string{configPath, promptsPath} {
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
			}
		}
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", config.ConfigFileName, err)
	}

	if err := config.SavePrompts(promptsPath, journal.DefaultPrompts()); err != nil {
		return nil, err
	}

	return []string{config.ConfigFileName, config.PromptsFileName}, nil
}

const configTemplate = `# journal configuration
#
# Every key can be overridden with an environment variable using the
# JOURNAL_ prefix, e.g. JOURNAL_API_URL or JOURNAL_TYPING_CHAR_DELAY.

# Base URL of the reflection service. Entries are POSTed to <api_url>/reflect.
api_url: http://localhost:8080

# How long to wait for a reflection before giving up.
timeout: 30s

# Typewriter cadence.
typing:
  char_delay: 25ms
  phase_pause: 500ms

# Shown on the Contact page.
contact: hello@journal.local

# Log file. Defaults to journal.log in this directory.
# log_file: /tmp/journal.log
`
