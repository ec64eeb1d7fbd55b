package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/feed-service/config"
	_ "github.com/d60-Lab/feed-service/docs"
	"github.com/d60-Lab/feed-service/internal/api"
	"github.com/d60-Lab/feed-service/internal/api/handler"
	"github.com/d60-Lab/feed-service/internal/repository"
	"github.com/d60-Lab/feed-service/internal/service"
	"github.com/d60-Lab/feed-service/internal/storage"
	"github.com/d60-Lab/feed-service/pkg/database"
	"github.com/d60-Lab/feed-service/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// @title feed-service API
// @version 1.0
// @description 社交动态服务：注册/登录、动态、评论、点赞、关注
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	db := must(database.InitDB(cfg))

	var store storage.ObjectStore
	if cfg.Storage.Driver == "memory" {
		store = storage.NewMemStore(cfg.Storage.Bucket)
	} else {
		store = must(storage.NewS3Store(context.Background(), cfg))
	}

	userRepo := repository.NewUserRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWT.Secret), cfg.JWT.TTL)
	feedSvc := service.NewFeedService(db, feedRepo, userRepo, store)
	commentSvc := service.NewCommentService(commentRepo, feedRepo, userRepo)
	likeSvc := service.NewLikeService(likeRepo)
	followSvc := service.NewFollowService(followRepo, userRepo)
	mypageSvc := service.NewMypageService(userRepo, feedRepo, commentRepo, followRepo)

	h := handler.New(authSvc, feedSvc, commentSvc, likeSvc, followSvc, mypageSvc)
	router := api.NewRouter(cfg, h, authSvc)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
