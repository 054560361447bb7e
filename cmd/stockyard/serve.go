// Serve command exposes the inventory over HTTP.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockyard/internal/httpapi"
	"github.com/mesh-intelligence/stockyard/pkg/warehouse"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inventory as a JSON HTTP API",
	Long: `Serve starts an HTTP server exposing the inventory call surface as JSON
endpoints. State lives in memory for the lifetime of the process; nothing
is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default: config listen_addr or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "serve:", err)
		os.Exit(exitSysError)
	}
	defer logger.Sync()

	addr := resolveListenAddr()
	server := httpapi.New(warehouse.New(), logger)

	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(exitSysError)
	}
	return nil
}

// resolveListenAddr follows the precedence chain:
// --listen flag > config listen_addr > defaultListenAddr.
func resolveListenAddr() string {
	if flagListen != "" {
		return flagListen
	}
	if configListenAddr != "" {
		return configListenAddr
	}
	return defaultListenAddr
}
