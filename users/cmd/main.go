package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/abhishek622/catflix/internal/bootstrap"
	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/internal/configutil"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/internal/metrics"
	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/internal/ratelimit"
	"github.com/abhishek622/catflix/pkg/discovery/consul"
	"github.com/abhishek622/catflix/pkg/tracing"
	"github.com/abhishek622/catflix/users/internal/controller/users"
	authgateway "github.com/abhishek622/catflix/users/internal/gateway/authentication/http"
	reviewsgateway "github.com/abhishek622/catflix/users/internal/gateway/reviews/http"
	videosgateway "github.com/abhishek622/catflix/users/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/users/internal/handler/http"
	"github.com/abhishek622/catflix/users/internal/repository/memory"
	"github.com/abhishek622/catflix/users/internal/repository/mysql"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const serviceName = "users"

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
	logger.Info("Starting the users service", zap.Int("port", cfg.API.Port))

	ctx := context.Background()
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init users service registry", zap.Error(err))
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
	reviews := reviewsgateway.New(registry, httpClient, logger, scope)
	videos := videosgateway.New(registry, httpClient, logger, scope)
	credentials := authgateway.New(registry, httpClient, logger, scope)
	propagator := cascade.New(logger, scope)

	var ctrl *users.Controller
	if cfg.Database.DSN != "" {
		db, err := mysqlutil.Open(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}
		defer db.Close()
		ctrl = users.New(mysql.New(db), reviews, videos, credentials, propagator, logger)
	} else {
		logger.Warn("No database configured, using memory storage")
		ctrl = users.New(memory.New(), reviews, videos, credentials, propagator, logger)
	}

	router := httputil.NewRouter(logger)
	router.Handle("/metrics", metricsHandler)
	httphandler.New(ctrl, logger).Register(router)

	svc := &bootstrap.Service{
		Name:     serviceName,
		Host:     cfg.API.Host,
		Port:     cfg.API.Port,
		GRPCPort: cfg.GRPC.Port,
		Handler:  router,
		Registry: registry,
		Limiter:  ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Burst),
		Logger:   logger,
	}
	if err := svc.Run(ctx); err != nil {
		logger.Fatal("Service stopped", zap.Error(err))
	}
}
