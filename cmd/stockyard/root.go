// Root command for the stockyard CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockyard/internal/paths"
	"github.com/mesh-intelligence/stockyard/pkg/stockyard"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// configListenAddr holds the listen_addr value loaded from config.yaml.
// Set by PersistentPreRunE so the serve command can use it.
var configListenAddr string

var rootCmd = &cobra.Command{
	Use:     "stockyard",
	Short:   "Stockyard tracks item quantities across warehouse sections",
	Version: stockyard.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > STOCKYARD_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
