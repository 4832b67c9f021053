package main

import (
	"context"
	"log"

	"kakao-gateway/config"
	"kakao-gateway/internal/handler"
	"kakao-gateway/internal/kakao"
	"kakao-gateway/internal/server"
	"kakao-gateway/internal/services"
	"kakao-gateway/internal/storage"
	"kakao-gateway/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	s3Client, err := storage.NewClient(context.Background(), storage.S3Config{
		Region:    cfg.AWSRegion,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.AWSAccessKeyID,
		SecretKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	kakaoClient := kakao.NewClient(cfg.KakaoAuthBaseURL, cfg.KakaoAPIBaseURL)

	handlers := &server.Handlers{
		Upload:  handler.NewUploadHandler(services.NewUploadService(s3Client), l),
		Message: handler.NewMessageHandler(services.NewMessageService(kakaoClient), l),
		Auth:    handler.NewAuthHandler(services.NewAuthService(kakaoClient, cfg), l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
