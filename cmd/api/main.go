package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/cache"
	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/cabin-scheduler/internal/db"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	infraRepo "github.com/BruksfildServices01/cabin-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/cabin-scheduler/internal/jobs"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	"github.com/BruksfildServices01/cabin-scheduler/internal/mq"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/routes"
	"github.com/BruksfildServices01/cabin-scheduler/internal/scheduler"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

func main() {

	// .env é opcional (dev)
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cabin scheduler", "port", cfg.Server.Port, "timezone", cfg.Server.Timezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ===============================
	// Cache do calendário
	// ===============================
	var calendarCache availability.CalendarCache = availability.NopCache{}
	if cfg.Redis.Addr != "" {
		cli := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cli.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, calendar cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			calendarCache = cache.NewCalendarCache(cli, time.Duration(cfg.Redis.CalendarTTL)*time.Second)
			defer cli.Close()
		}
	}

	// ===============================
	// Notificações (persistidas + AMQP opcional)
	// ===============================
	sinks := []notify.Sink{notify.NewStoreSink(db)}

	var amqpConn *amqp.Connection
	if cfg.AMQP.Enabled {
		amqpConn, err = amqp.Dial(cfg.AMQP.URL)
		if err != nil {
			logger.Error("failed to connect amqp", "error", err)
			os.Exit(1)
		}
		defer amqpConn.Close()

		pubCh, err := amqpConn.Channel()
		if err != nil {
			logger.Error("failed to open amqp channel", "error", err)
			os.Exit(1)
		}
		publisher, err := mq.NewNotificationPublisher(pubCh, cfg.AMQP.Exchange)
		if err != nil {
			logger.Error("failed to declare notification exchange", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, publisher)
	}

	notifier := notify.NewDispatcher(infraRepo.NewUserGormRepository(db), sinks...)
	defer notifier.Close()

	deps := routes.Dependencies{
		DB:       db,
		Config:   cfg,
		Cache:    calendarCache,
		Notifier: notifier,
		Audit:    audit.NewDispatcher(audit.New(db)),
		Clock:    timezone.RealClock{TZ: cfg.Server.Timezone},
	}
	uc := routes.NewUseCases(deps)

	// ===============================
	// Fila de comandos
	// ===============================
	if amqpConn != nil {
		cmdCh, err := amqpConn.Channel()
		if err != nil {
			logger.Error("failed to open amqp command channel", "error", err)
			os.Exit(1)
		}

		router := mq.NewCommandRouter(0)
		router.RegisterCommands(uc.Commands())

		consumer := mq.NewConsumer(cmdCh, cfg.AMQP.CommandQueue, router)
		go func() {
			if err := consumer.Run(ctx); err != nil {
				logger.Error("command consumer stopped", "error", err)
			}
		}()
	}

	// ===============================
	// Cron
	// ===============================
	jobRunner := jobs.NewJobRunner(uc.CompletePastReservations, uc.AlertUpcomingPending)
	sched, err := scheduler.NewScheduler(jobRunner, cfg.Scheduler, timezone.Location(cfg.Server.Timezone))
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}
	sched.Start()

	// ===============================
	// HTTP
	// ===============================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, deps, uc)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	sched.Stop()
}
