package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"vendor_verify/internal/config"
	"vendor_verify/internal/domain/service/verification"
	"vendor_verify/internal/infrastructure/gst"
	"vendor_verify/internal/infrastructure/serp"
	"vendor_verify/internal/server"
	"vendor_verify/pkg/application/modules"
	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/httpx"
	"vendor_verify/pkg/logx"
	"vendor_verify/pkg/middlewarex"
	"vendor_verify/pkg/probe"
)

// Run serves the API, probe and metrics listeners until ctx is cancelled or
// one of them fails.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, log)

	handler, err := NewHandler(log, cfg)
	if err != nil {
		return fmt.Errorf("NewHandler: %w", err)
	}

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	probeServer := probe.NewServer(cfg.Probe.ListenAddress, probe.Options{
		Name:    cfg.App.Name,
		Version: cfg.App.Version,
	})

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{Server: probeServer}.Run(ctx, g)
	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)
	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnListen:        probeServer.MarkReady,
	}.Run(ctx, g, httpServer)

	log.Info(
		"application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// NewHandler wires provider clients, the verification service and the HTTP
// routes from cfg.
func NewHandler(log *slog.Logger, cfg config.Config) (http.Handler, error) {
	masker := logx.NewSensitiveDataMasker()

	// 1. Tax registry
	var gstCredential httpx.Credential
	if cfg.GST.Token != "" {
		gstCredential = httpx.BearerToken(cfg.GST.Token)
	}

	gstClient := gst.NewClient(
		httpx.NewClient(
			cfg.GST.Timeout,
			gstCredential,
			httpx.WithProvider(gst.Provider),
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		),
		cfg.GST.URL,
	).WithCache(cfg.GST.CacheTTL)

	// 2. Reputation search
	serpClient, err := serp.NewClient(
		httpx.NewClient(
			cfg.Serp.Timeout,
			httpx.QueryAPIKey{Param: serp.APIKeyParam, Key: cfg.Serp.APIKey},
			httpx.WithProvider(serp.Provider),
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		),
		cfg.Serp.URL,
		cfg.Serp.Engine,
	)
	if err != nil {
		return nil, fmt.Errorf("serp.NewClient: %w", err)
	}

	// 3. Service and routes
	verificationService := verification.NewService(gstClient, serpClient)

	srv := server.NewServer(
		server.NewVendorServer(verificationService, cfg.HTTP.MaxFormMemory),
	)

	return newRouter(log, cfg.HTTP, masker, srv), nil
}

func newRouter(
	log *slog.Logger,
	cfg config.HTTP,
	masker logx.SensitiveDataMaskerInterface,
	srv server.Server,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.CORS(),
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return r
}
