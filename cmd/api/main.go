package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Teckas-Technologies/spring-crud/internal/core/auth"
	"github.com/Teckas-Technologies/spring-crud/internal/core/config"
	"github.com/Teckas-Technologies/spring-crud/internal/core/database"
	"github.com/Teckas-Technologies/spring-crud/internal/core/logger"
	"github.com/Teckas-Technologies/spring-crud/internal/core/server"
	"github.com/Teckas-Technologies/spring-crud/internal/core/session"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/repo"
	"github.com/Teckas-Technologies/spring-crud/internal/service"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/handler"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/router"
	"github.com/Teckas-Technologies/spring-crud/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Entity{}, &domain.Account{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 依赖都在这里显式组装
	accounts := repo.NewAccountRepo(db)
	seedAccount(cfg, accounts, log)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var sessions session.Store
	if cfg.Redis.Addr != "" {
		sessions = session.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Auth.SessionTTLMin)*time.Minute)
		log.Info("session store ready", zap.String("redis", cfg.Redis.Addr))
	} else {
		log.Warn("redis not configured, form login disabled")
	}

	userSvc := service.NewUserService(repo.NewUserRepo(db), log)
	entitySvc := service.NewEntityService(repo.NewEntityRepo(db), cfg.Entity.Types, log)

	r := router.NewAPIEngine(log, router.Deps{
		Users:    handler.NewUserHandler(userSvc, log),
		Entities: handler.NewEntityHandler(entitySvc, log),
		Auth:     handler.NewAuthHandler(accounts, jwter, sessions, log),
		Accounts: accounts,
		JWTer:    jwter,
		Sessions: sessions,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("docs", baseURL+"/docs"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

// seedAccount 账号表为空时写入种子账号，密码只存 bcrypt 哈希
func seedAccount(cfg *config.Config, accounts domain.AccountRepository, l *zap.Logger) {
	if cfg.Auth.SeedUsername == "" || cfg.Auth.SeedPassword == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := accounts.Count(ctx)
	if err != nil {
		l.Fatal("count accounts", zap.Error(err))
	}
	if n > 0 {
		return
	}
	a := &domain.Account{
		Username:     cfg.Auth.SeedUsername,
		PasswordHash: utils.HashPassword(cfg.Auth.SeedPassword),
		Role:         cfg.Auth.SeedRole,
	}
	if err := accounts.Create(ctx, a); err != nil {
		l.Fatal("seed account", zap.Error(err))
	}
	l.Info("seed account created", zap.String("username", a.Username))
}
