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
	"github.com/abhishek622/catflix/videos/internal/controller/videos"
	reviewsgateway "github.com/abhishek622/catflix/videos/internal/gateway/reviews/http"
	usersgateway "github.com/abhishek622/catflix/videos/internal/gateway/users/http"
	httphandler "github.com/abhishek622/catflix/videos/internal/handler/http"
	"github.com/abhishek622/catflix/videos/internal/repository/memory"
	"github.com/abhishek622/catflix/videos/internal/repository/mysql"
	"github.com/abhishek622/catflix/videos/internal/repository/redis"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const serviceName = "videos"

type videoRepository interface {
	Get(ctx context.Context, hash string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	ListByAuthor(ctx context.Context, author string) ([]model.Video, error)
	Create(ctx context.Context, v *model.Video) error
	Update(ctx context.Context, v *model.Video) error
	Delete(ctx context.Context, hash string) error
	DeleteMany(ctx context.Context, hashes []string) error
}

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
	logger.Info("Starting the videos service", zap.Int("port", cfg.API.Port))

	ctx := context.Background()
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init videos service registry", zap.Error(err))
	}

	tracer, closer, err := tracing.NewTracerWithLogger(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer closer.Close()
	opentracing.SetGlobalTracer(tracer)

	scope, metricsHandler, metricsCloser := metrics.New(serviceName)
	defer metricsCloser.Close()

	var repo videoRepository
	if cfg.Database.DSN != "" {
		db, err := mysqlutil.Open(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}
		defer db.Close()
		repo = mysql.New(db)
	} else {
		logger.Warn("No database configured, using memory storage")
		repo = memory.New()
	}
	if cfg.Redis.Address != "" {
		client, err := redis.Connect(cfg.Redis.Address)
		if err != nil {
			logger.Fatal("Failed to init Redis client", zap.Error(err))
		}
		defer client.Close()
		repo = redis.New(client, repo, cfg.Redis.TTL, logger)
		logger.Info("Caching videos in Redis", zap.String("address", cfg.Redis.Address))
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	ctrl := videos.New(
		repo,
		usersgateway.New(registry, httpClient, logger, scope),
		reviewsgateway.New(registry, httpClient, logger, scope),
		cascade.New(logger, scope),
		logger,
	)

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
