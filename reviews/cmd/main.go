package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/abhishek622/catflix/internal/bootstrap"
	"github.com/abhishek622/catflix/internal/configutil"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/internal/metrics"
	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/internal/ratelimit"
	"github.com/abhishek622/catflix/pkg/discovery/consul"
	"github.com/abhishek622/catflix/pkg/tracing"
	"github.com/abhishek622/catflix/reviews/internal/controller/reviews"
	usersgateway "github.com/abhishek622/catflix/reviews/internal/gateway/users/http"
	videosgateway "github.com/abhishek622/catflix/reviews/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/reviews/internal/handler/http"
	"github.com/abhishek622/catflix/reviews/internal/ingester/kafka"
	"github.com/abhishek622/catflix/reviews/internal/repository/memory"
	"github.com/abhishek622/catflix/reviews/internal/repository/mysql"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const serviceName = "reviews"

type reviewRepository interface {
	Get(ctx context.Context, pseudo, hash string) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error)
	ListByHash(ctx context.Context, hash string) ([]model.Review, error)
	Create(ctx context.Context, r *model.Review) error
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, pseudo, hash string) error
	DeleteByPseudo(ctx context.Context, pseudo string) error
	DeleteByHash(ctx context.Context, hash string) error
}

type reviewIngester interface {
	Ingest(ctx context.Context) (chan model.ReviewEvent, error)
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
	logger.Info("Starting the reviews service", zap.Int("port", cfg.API.Port))

	ctx := context.Background()
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init reviews service registry", zap.Error(err))
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
	users := usersgateway.New(registry, httpClient, logger, scope)
	videos := videosgateway.New(registry, httpClient, logger, scope)

	var ingester reviewIngester
	if cfg.Kafka.Enabled {
		ingester, err = kafka.NewIngester(cfg.Kafka.Address, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Fatal("Failed to init Kafka ingester", zap.Error(err))
		}
	}

	var repo reviewRepository
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
	ctrl := reviews.New(repo, users, videos, ingester, cfg.Best.Limit, logger, scope)

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
	if ingester != nil {
		logger.Info("Ingesting review events from Kafka", zap.String("topic", cfg.Kafka.Topic))
		svc.Workers = append(svc.Workers, ctrl.StartIngestion)
	}
	if err := svc.Run(ctx); err != nil {
		logger.Fatal("Service stopped", zap.Error(err))
	}
}
