package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/booking-service/docs"
	"github.com/SergeyBogomolovv/booking-service/internal/app"
	"github.com/SergeyBogomolovv/booking-service/internal/config"
	"github.com/SergeyBogomolovv/booking-service/internal/handler"
	"github.com/SergeyBogomolovv/booking-service/internal/notify"
	"github.com/SergeyBogomolovv/booking-service/internal/postgres"
	"github.com/SergeyBogomolovv/booking-service/internal/repo"
	"github.com/SergeyBogomolovv/booking-service/internal/service"
	"github.com/SergeyBogomolovv/booking-service/pkg/cache"
	"github.com/SergeyBogomolovv/booking-service/pkg/email"
	"github.com/SergeyBogomolovv/booking-service/pkg/trm"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

// @title                       Booking Service API
// @version                     1.0
// @description                 Marketplace booking core: orders, fees and notifications
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	rates := conf.Rates.Pricing()

	redisOpt := asynq.RedisClientOpt{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	hub := notify.NewHub(logger)
	defer hub.Close()
	emitter := notify.Fanout{hub, notify.NewQueue(asynqClient)}

	var mailer notify.Mailer
	if conf.Email.Region != "" {
		sender, err := email.NewSESSender(ctx, conf.Email.Region, conf.Email.From)
		panicIfErr("failed to init email sender", err)
		mailer = sender
	}
	worker := notify.NewWorker(logger, redisOpt, conf.Redis.WorkerConcurrency, pgRepo, mailer)

	orderService := service.NewOrderService(logger, txManager, pgRepo, orderCache, emitter, rates)
	paymentService := service.NewPaymentService(logger, txManager, pgRepo, orderCache, emitter, rates)
	notificationService := service.NewNotificationService(pgRepo)

	service.RegisterMetrics()
	handler.RegisterMetrics()

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, paymentService)
	httpHandler := handler.NewHTTPHandler(logger, []byte(conf.Auth.JWTSecret), orderService, notificationService, hub)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		orderCache,
		cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity},
		worker,
	)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
