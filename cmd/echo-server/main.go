package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anpotashev/frame-common/pkg/config"
	"github.com/anpotashev/frame-common/pkg/frame"
	"github.com/anpotashev/frame-common/pkg/framereaderwriter"
	"github.com/anpotashev/frame-common/pkg/logconfig"
	"github.com/anpotashev/frame-common/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	}

	if err := logconfig.ConfigLogs(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		go serveMetrics(logger, cfg.Metrics.Address)
	}

	listener, err := net.Listen("tcp", cfg.Server.ListenAddress)
	if err != nil {
		logger.Error("Failed to listen", "Address", cfg.Server.ListenAddress, "Error", err)
		os.Exit(1)
	}
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()
	logger.Info("Listening", "Address", cfg.Server.ListenAddress)

	idleTimeout := time.Duration(cfg.Server.IdleTimeout) * time.Second
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			logger.Error("Accept failed", "Error", err)
			continue
		}
		go serveConn(ctx, logger, m, conn, idleTimeout)
	}
	logger.Info("Shutting down")
}

// serveConn echoes every received payload back to the peer until the
// connection ends.
func serveConn(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, conn net.Conn, idleTimeout time.Duration) {
	logger = logger.With("Remote", conn.RemoteAddr().String())
	logger.Info("Connection accepted")
	frw := framereaderwriter.New(ctx, logger, m, conn)
	for {
		if idleTimeout > 0 {
			if err := frw.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
				logger.Error("Failed to set read deadline", "Error", err)
				return
			}
		}
		payload, err := frw.Read()
		if err != nil {
			if errors.Is(err, frame.ErrIncompleteInput) {
				logger.Warn("Connection dropped mid-frame", "Error", err)
			} else {
				logger.Info("Connection finished", "Error", err)
			}
			return
		}
		if err := frw.Write(payload); err != nil {
			logger.Error("Failed to write the echo", "Error", err)
			return
		}
	}
}

func serveMetrics(logger *slog.Logger, address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Metrics endpoint listening", "Address", address)
	if err := http.ListenAndServe(address, mux); err != nil {
		logger.Error("Metrics endpoint failed", "Error", err)
	}
}
