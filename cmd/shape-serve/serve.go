package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-serve/internal/config"
	"github.com/shapestone/shape-serve/internal/logging"
	"github.com/shapestone/shape-serve/pkg/http"
)

var (
	serveConfigPath string
	serveAddr       string
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo routes",
	Long: `Listen on the configured address and answer requests for /, /echo and
/headers. Configuration comes from --config, SHAPE_SERVE_* environment
variables and the flags below, flags taking precedence.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a yaml, json or toml config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.LevelFromString(cfg.Log.Level), cfg.Log.Format)

	gate, ok := http.ParseVersionGate(cfg.VersionGate)
	if !ok {
		return fmt.Errorf("unknown version gate %q", cfg.VersionGate)
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	server := http.NewServer(ln,
		http.WithLogger(logger),
		http.WithReadBufferSize(cfg.ReadBufferSize),
		http.WithVersionGate(gate),
	)
	for path, h := range demoRoutes() {
		if err := server.Handle(path, h); err != nil {
			ln.Close()
			return err
		}
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	return serveUntilSignal(server, shutdown, logger)
}

// serveUntilSignal runs server until it fails or a signal arrives on
// shutdown, in which case the listener is closed and nil is returned.
func serveUntilSignal(server *http.Server, shutdown <-chan os.Signal, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Serve() }()

	select {
	case err := <-serverErr:
		return err
	case sig := <-shutdown:
		logger.Info("received shutdown signal", "signal", sig.String())
		server.Close()
		if err := <-serverErr; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
