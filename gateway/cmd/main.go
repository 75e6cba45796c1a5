package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/abhishek622/catflix/gateway/internal/controller/gateway"
	authgateway "github.com/abhishek622/catflix/gateway/internal/gateway/authentication/http"
	reviewsgateway "github.com/abhishek622/catflix/gateway/internal/gateway/reviews/http"
	usersgateway "github.com/abhishek622/catflix/gateway/internal/gateway/users/http"
	videosgateway "github.com/abhishek622/catflix/gateway/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/gateway/internal/handler/http"
	"github.com/abhishek622/catflix/internal/bootstrap"
	"github.com/abhishek622/catflix/internal/configutil"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/internal/metrics"
	"github.com/abhishek622/catflix/internal/ratelimit"
	"github.com/abhishek622/catflix/pkg/discovery/consul"
	"github.com/abhishek622/catflix/pkg/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const serviceName = "gateway"

func main() {
	configPath := flag.String("config", "configs/default.yaml", "configuration file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config
	if err := configutil.Load(*configPath, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	cfg.applyDefaults()
	logger.Info("Starting the gateway", zap.Int("port", cfg.API.Port))

	ctx := context.Background()
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init gateway registry", zap.Error(err))
	}

	tracer, closer, err := tracing.NewTracerWithLogger(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer closer.Close()
	opentracing.SetGlobalTracer(tracer)

	scope, metricsHandler, metricsCloser := metrics.New(serviceName)
	defer metricsCloser.Close()

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	ctrl := gateway.New(
		authgateway.New(registry, httpClient, logger, scope),
		usersgateway.New(registry, httpClient, logger, scope),
		videosgateway.New(registry, httpClient, logger, scope),
		reviewsgateway.New(registry, httpClient, logger, scope),
		logger,
		scope,
	)

	limiter := ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Burst)
	router := httputil.NewRouter(logger)
	router.Handle("/metrics", metricsHandler)
	router.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		httphandler.New(ctrl, logger).Register(r)
	})

	svc := &bootstrap.Service{
		Name:     serviceName,
		Host:     cfg.API.Host,
		Port:     cfg.API.Port,
		GRPCPort: cfg.GRPC.Port,
		Handler:  router,
		Registry: registry,
		Limiter:  limiter,
		Logger:   logger,
	}
	if err := svc.Run(ctx); err != nil {
		logger.Fatal("Service stopped", zap.Error(err))
	}
}
