package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/application"
	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/infrastructure/messaging"
	infraoracle "github.com/wyfcoding/esgcompliance/internal/esgcompliance/infrastructure/oracle"
	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/infrastructure/persistence/mysql"
	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/interfaces"
	"github.com/wyfcoding/esgcompliance/pkg/cache"
	"github.com/wyfcoding/esgcompliance/pkg/config"
	"github.com/wyfcoding/esgcompliance/pkg/db"
	"github.com/wyfcoding/esgcompliance/pkg/logger"
	"github.com/wyfcoding/esgcompliance/pkg/metrics"
	"github.com/wyfcoding/esgcompliance/pkg/middleware"
	"github.com/wyfcoding/esgcompliance/pkg/mq"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/esgcompliance/config.toml", "path to config file")
	flag.Parse()

	// 1. 配置
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
	}); err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}

	// 3. 指标
	m := metrics.New(cfg.ServiceName)

	// 4. 数据库
	gormDB, err := db.Init(db.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogEnabled:      cfg.Database.LogEnabled,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&mysql.RuleRecord{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// 5. 评分权重（启动期校验，配错直接拒绝启动）
	scoring, err := domain.NewESGScoringWithWeights(
		cfg.Scoring.EnvironmentalWeight,
		cfg.Scoring.SocialWeight,
		cfg.Scoring.GovernanceWeight,
	)
	if err != nil {
		slog.Error("invalid scoring weights", "error", err)
		os.Exit(1)
	}

	// 6. 事件发布
	var publisher domain.EventPublisher = messaging.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			slog.Error("failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = messaging.NewKafkaPublisher(producer)
	}

	// 7. 预言机（可选 Redis 缓存装饰）
	var oracleProvider domain.OracleProvider = domain.NewStaticOracleProvider()
	if cfg.Redis.Host != "" {
		redisCache, err := cache.New(cache.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxPoolSize:  cfg.Redis.MaxPoolSize,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			slog.Warn("redis unavailable, oracle cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			oracleProvider = infraoracle.NewCachedProvider(
				oracleProvider, redisCache, time.Duration(cfg.Oracle.CacheTTL)*time.Second)
		}
	}

	// 8. 依赖注入
	repo := mysql.NewRuleRepository(gormDB)
	appService := application.NewService(repo, scoring, oracleProvider, publisher, m)
	handler := interfaces.NewHTTPHandler(appService)

	// 9. HTTP 服务
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinLogging(), middleware.GinMetrics(m))

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	sys := r.Group("/sys")
	{
		sys.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		sys.GET("/ready", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "READY"}) })
	}
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// 10. gRPC 服务（健康检查 + 反射）
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(middleware.GRPCLogging()))
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)

	// 11. 启动
	g, ctx := errgroup.WithContext(context.Background())

	httpAddr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	httpSrv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	g.Go(func() error {
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			return err
		}
		slog.Info("gRPC server starting", "addr", grpcAddr)
		return grpcSrv.Serve(lis)
	})

	// 12. 优雅关停
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "error", err)
	}
	grpcSrv.GracefulStop()

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
	slog.Info("server stopped")
}
