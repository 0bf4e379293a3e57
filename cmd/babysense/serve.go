package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aibabysense/landing/internal/config"
	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/internal/errors"
	"github.com/aibabysense/landing/pkg/assets"
	"github.com/aibabysense/landing/pkg/server"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		port int
		host string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		Long: `Serve the landing page over HTTP with live views over WebSocket.

The server stops gracefully on SIGINT or SIGTERM: live views receive a
close frame, then the HTTP server drains.

Examples:
  babysense serve
  babysense serve --port=9000 --host=0.0.0.0
  LANDING_ASSETS_SOURCE=s3 LANDING_ASSETS_S3_BUCKET=site babysense serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("dev") {
				cfg.Server.DevMode = dev
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Disable caching and enable client debug logging")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := cfg.Log.NewLogger(os.Stderr)
	if path := cfg.Path(); path != "" {
		logger.Info("configuration loaded", "path", path)
	}

	src, err := openAssets(ctx, cfg.Assets, logger)
	if err != nil {
		return err
	}

	srv := server.New(serverConfig(cfg, src, logger))

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return errors.New("E301").WithDetailf("Address %s is not available.", cfg.Addr()).Wrap(err)
	}
	success(os.Stdout, "Serving %s on http://%s", content.Brand, ln.Addr())

	if err := srv.Serve(ctx, ln); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.New("E302").
				WithDetailf("Live views did not close within %s.", cfg.Server.ShutdownTimeout).
				Wrap(err)
		}
		return err
	}
	return nil
}

// serverConfig maps the loaded configuration onto the server.
func serverConfig(cfg *config.Config, src assets.Source, logger *slog.Logger) *server.ServerConfig {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return &server.ServerConfig{
		Address:           cfg.Addr(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		MaxSessions:       cfg.Server.MaxSessions,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		DevMode:           cfg.Server.DevMode,
		SessionConfig: &server.SessionConfig{
			ReadTimeout:       cfg.Session.ReadTimeout,
			WriteTimeout:      cfg.Session.WriteTimeout,
			HeartbeatInterval: cfg.Session.HeartbeatInterval,
			MaxMessageSize:    cfg.Session.MaxMessageSize,
			MaxEventQueue:     cfg.Session.MaxEventQueue,
		},
		RotateInterval:   cfg.UI.RotateInterval,
		RevealMargin:     cfg.UI.RevealMargin,
		Assets:           src,
		AssetCache:       assets.CachePolicy(cfg.Assets.Cache),
		MetricsPath:      metricsPath,
		MetricsNamespace: cfg.Metrics.Namespace,
		MetricsLabels:    cfg.Metrics.Labels,
		Logger:           logger,
	}
}

// openAssets builds the configured asset source and checks that it answers.
func openAssets(ctx context.Context, cfg config.AssetsConfig, logger *slog.Logger) (assets.Source, error) {
	var src assets.Source
	switch cfg.Source {
	case "s3":
		if cfg.S3.Bucket == "" || cfg.S3.Region == "" {
			return nil, errors.New("E202").WithDetailf("bucket %q, region %q", cfg.S3.Bucket, cfg.S3.Region)
		}
		client := assets.NewS3Client(assets.S3Config{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			UsePathStyle:    cfg.S3.UsePathStyle,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		src = assets.NewS3Source(client, cfg.S3.Bucket, cfg.S3.Prefix)
	default:
		info, err := os.Stat(cfg.Dir)
		if err != nil || !info.IsDir() {
			e := errors.New("E201").WithDetailf("%q is not a directory.", cfg.Dir)
			if err != nil {
				e = e.Wrap(err)
			}
			return nil, e
		}
		src = assets.NewDirSource(cfg.Dir)
	}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	obj, err := src.Open(probeCtx, content.LogoPath[1:])
	switch {
	case err == nil:
		obj.Body.Close()
	case stderrors.Is(err, assets.ErrNotFound):
		logger.Warn("logo missing from asset source", "source", fmt.Sprint(src), "name", content.LogoPath)
	default:
		return nil, errors.New("E203").WithDetailf("Probing %v failed.", src).Wrap(err)
	}
	logger.Info("asset source ready", "source", fmt.Sprint(src))
	return src, nil
}
