package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the current configuration",
	Long: `Display the current effective configuration for kcal.

Shows the configuration file location, whether it exists, and all
current settings. Values are merged from the config file with defaults;
kcal works without any configuration file at all.

Settings:
  theme             TUI color theme (default: dracula)
  storage_backend   file | sqlite (default: file)
  storage_path      storage location override (default: platform data dir)

Configuration file location:
  ~/.config/kcal/config.toml         Linux/macOS
  %APPDATA%\kcal\config.toml         Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err,
			"Check that your home directory is accessible")
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	storagePath, pathErr := deps.BlobPath()

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: not found (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", deps.Config.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "storage_backend: %s\n", deps.Config.StorageBackend)
	if pathErr == nil {
		_, _ = fmt.Fprintf(deps.Stdout, "storage:         %s\n", storagePath)
	}
}
