package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/Heman1223/bhuvik-enterprises/internal/api/http"
	"github.com/Heman1223/bhuvik-enterprises/internal/cache"
	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/db"
	"github.com/Heman1223/bhuvik-enterprises/internal/gateway/razorpay"
	"github.com/Heman1223/bhuvik-enterprises/internal/queue/asynqserver"
	qclient "github.com/Heman1223/bhuvik-enterprises/internal/queue/client"
	"github.com/Heman1223/bhuvik-enterprises/internal/repository"
	"github.com/Heman1223/bhuvik-enterprises/internal/server"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"
	"github.com/Heman1223/bhuvik-enterprises/internal/upload"
	"github.com/Heman1223/bhuvik-enterprises/internal/worker"
	"github.com/Heman1223/bhuvik-enterprises/pkg/auth"
	"github.com/Heman1223/bhuvik-enterprises/pkg/email/smtp"
	"github.com/Heman1223/bhuvik-enterprises/pkg/hash"
	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"
	"github.com/Heman1223/bhuvik-enterprises/pkg/otp"
	"github.com/Heman1223/bhuvik-enterprises/pkg/receipt"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	_ = godotenv.Load()
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	logger.Info("starting registration backend", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	// Redis backs the confirmation email queue
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	// A missing gateway secret is a deployment problem; fail here, not on
	// the first payment.
	gateway, err := razorpay.NewClient(cfg.Razorpay)
	if err != nil {
		logger.Error("razorpay client creation failed", zap.Error(err))
		os.Exit(1)
	}

	custodian, err := upload.NewCustodian(cfg.Registration.UploadDir)
	if err != nil {
		logger.Error("upload custodian creation failed", zap.Error(err))
		os.Exit(1)
	}

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation failed", zap.Error(err))
		os.Exit(1)
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Repos:        repos,
		Gateway:      gateway,
		Resumes:      custodian,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Confirmation email worker
	var asynqSrv *asynq.Server
	if cfg.Email.Enabled {
		emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			logger.Error("smtp sender creation failed", zap.Error(err))
			os.Exit(1)
		}

		receipts, err := receipt.NewGenerator()
		if err != nil {
			logger.Warn("receipt generator unavailable, emails go out without receipts", zap.Error(err))
			receipts = nil
		}

		workers := worker.NewWorkers(worker.Deps{
			EmailProvider: emailSender,
			Receipts:      receipts,
			Config:        cfg,
		})

		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg.Cache, workers)
		go func() {
			if err := asynqSrv.Run(mux); err != nil {
				logger.Error("asynq server stopped", zap.Error(err))
			}
		}()

		queueClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer func() {
			if err := queueClient.Close(); err != nil {
				logger.Error("error when closing queue client", zap.Error(err))
			}
		}()
		qclient.SetClient(queueClient)
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	logger.Info("app stopped")
}
