package main

import (
	"context"
	"flag"

	"github.com/abhishek622/catflix/authentication/internal/controller/authentication"
	httphandler "github.com/abhishek622/catflix/authentication/internal/handler/http"
	"github.com/abhishek622/catflix/authentication/internal/repository/memory"
	"github.com/abhishek622/catflix/authentication/internal/repository/mysql"
	"github.com/abhishek622/catflix/authentication/internal/token"
	"github.com/abhishek622/catflix/internal/bootstrap"
	"github.com/abhishek622/catflix/internal/configutil"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/internal/metrics"
	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/internal/ratelimit"
	"github.com/abhishek622/catflix/pkg/discovery/consul"
	"github.com/abhishek622/catflix/pkg/tracing"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const serviceName = "authentication"

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
	if cfg.Auth.Secret == "" {
		logger.Fatal("Missing auth.secret")
	}
	logger.Info("Starting the authentication service", zap.Int("port", cfg.API.Port))

	ctx := context.Background()
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init authentication service registry", zap.Error(err))
	}

	tracer, closer, err := tracing.NewTracerWithLogger(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer closer.Close()
	opentracing.SetGlobalTracer(tracer)

	scope, metricsHandler, metricsCloser := metrics.New(serviceName)
	defer metricsCloser.Close()

	secret := []byte(cfg.Auth.Secret)
	tokens := token.New(func() []byte { return secret }, cfg.Auth.TokenTTL)
	var ctrl *authentication.Controller
	if cfg.Database.DSN != "" {
		db, err := mysqlutil.Open(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}
		defer db.Close()
		ctrl = authentication.New(mysql.New(db), tokens, cfg.Auth.BcryptCost, logger, scope)
	} else {
		logger.Warn("No database configured, using memory storage")
		ctrl = authentication.New(memory.New(), tokens, cfg.Auth.BcryptCost, logger, scope)
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
