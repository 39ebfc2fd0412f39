package main

import (
	"log"
	"time"

	"stylistapi/config"
	"stylistapi/controllers"
	"stylistapi/services"
	"stylistapi/session"
	"stylistapi/storage"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     "stylistapi@1.0.0",
		Debug:       false,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	store, err := storage.NewStore(cfg.DataDir, cfg.UploadsDir)
	if err != nil {
		log.Fatalf("store: %s", err)
	}

	sess := session.New(store, services.GoogleLLMStylist{}, cfg.GeminiAPIKey)

	e := controllers.SetupServer(sess)
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(cfg.Address))
}
