package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelfd/pkg/api"
	"github.com/shelfd/shelfd/pkg/config"
	"github.com/shelfd/shelfd/pkg/logging"
	"github.com/shelfd/shelfd/pkg/store"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	port       int
	configFile string
	logLevel   string
	logFormat  string
}

var serveFlagVals serveFlags

// serveCmd starts the book API in the foreground.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the book catalog server (foreground)",
	Example: `  # Start with the built-in seed catalog
  shelfd serve

  # Start with a config file on a custom port
  shelfd serve --config shelfd.yaml --port 3000

  # Log JSON at debug level
  shelfd serve --log-level debug --log-format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, &serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (YAML or JSON)")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
}

func runServe(cmd *cobra.Command, f *serveFlags) error {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.LoadFromFile(f.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Explicit flags win over the config file.
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = f.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	bookStore := store.NewMemoryStore(cfg.Seed)
	log.Info("catalog seeded", "books", bookStore.Count())

	srv := api.New(bookStore,
		api.WithPort(cfg.Server.Port),
		api.WithLogger(log),
		api.WithVersion(Version),
		api.WithTimeouts(
			time.Duration(cfg.Server.ReadTimeout)*time.Second,
			time.Duration(cfg.Server.WriteTimeout)*time.Second,
		),
	)

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Info("shutting down", "signal", sig.String())
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
