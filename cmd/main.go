package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/storefront-order-service/docs"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/clock"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/events"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Оформление, просмотр и оплата заказов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	docs.SwaggerInfo.Host = conf.HTTP.Host + ":" + conf.HTTP.Port
	handler.RegisterMetrics()

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))

	app := app.New(logger, conf)

	orderCache := newCache(logger, conf, app)
	verifier := newVerifier(logger, conf)

	var publisher service.EventPublisher = events.NopPublisher{}
	if conf.Kafka.Enabled {
		p := events.NewKafkaPublisher(logger, conf.Kafka)
		app.AddClosers(p)
		publisher = p
	}

	checkoutCfg := payment.CheckoutConfig{
		Currency:    conf.Payment.Currency,
		CallbackURL: conf.Payment.CallbackURL,
		ReturnURL:   conf.Payment.ReturnURL,
	}
	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, verifier, publisher, clock.NewSystem(), checkoutCfg)

	app.SetHTTPHandlers(
		handler.NewHTTPHandler(logger, orderService, conf.Payment.Provider),
		handler.NewHealthHandler(logger, orderRepo),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService, conf.Payment.Provider))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.ServerErr():
		logger.Error("http server failed", slog.Any("error", err))
	}
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

type orderCache interface {
	service.Cache
	Start(ctx context.Context) error
}

func newCache(logger *slog.Logger, conf config.Config, a interface{ AddClosers(...app.Closer) }) orderCache {
	if conf.Cache.Driver == "redis" {
		client := redis.NewClient(&redis.Options{Addr: conf.Cache.RedisAddr})
		c := cache.NewRedisCache(logger, client, "storefront", conf.Cache.TTL)
		a.AddClosers(c)
		return c
	}
	return cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
}

// Без секретного ключа платежи не проверяются. Config.Validate запрещает это в production.
func newVerifier(logger *slog.Logger, conf config.Config) service.PaymentVerifier {
	if conf.Payment.SecretKey == "" || conf.Payment.VerifySkip {
		return payment.NewNoopVerifier(logger, conf.Payment.Currency)
	}
	return payment.NewChapaClient(conf.Payment.BaseURL, conf.Payment.SecretKey, conf.Payment.Timeout)
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
