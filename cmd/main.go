package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/clubfeed-server/internal/api/http/router"
	"github.com/dtroode/clubfeed-server/internal/config"
	"github.com/dtroode/clubfeed-server/internal/identity"
	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
	"github.com/dtroode/clubfeed-server/internal/repository/postgres"
	"github.com/dtroode/clubfeed-server/internal/server"
	"github.com/dtroode/clubfeed-server/internal/service"
	storage "github.com/dtroode/clubfeed-server/internal/storage/minio"
	"github.com/dtroode/clubfeed-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	if err := userRepo.EnsureRoot(ctx, cfg.Auth.RootEmail, cfg.Auth.RootDisplayName); err != nil {
		logger.Fatal("failed to ensure root user", "error", err)
	}

	postService := service.NewPost(postRepo, logger)
	commentService := service.NewComment(commentRepo, logger)
	roleService := service.NewRole(userRepo, cfg.Auth.RootEmail, logger)

	var resolver model.IdentityResolver
	switch cfg.Auth.Mode {
	case "bearer":
		resolver = identity.NewBearer(token.NewJWT(cfg.JWT.Secret), userRepo)
	default:
		resolver = identity.NewStatic(userRepo, cfg.Auth.RootEmail)
	}

	var media model.Storage
	if cfg.Storage.Enabled {
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to create minio client", "error", err)
		}
		media, err = storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			logger.Fatal("failed to initialize media storage", "error", err)
		}
	}

	r := router.New(postService, commentService, roleService, resolver, media, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
