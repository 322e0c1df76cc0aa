package main

import (
	"context"
	"time"

	"smartcloset/config"
	"smartcloset/controllers"
	"smartcloset/dbhelper"
	"smartcloset/logging"
	"smartcloset/services"
	"smartcloset/session"
	"smartcloset/storage"
	"smartcloset/wardrobe"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func openStore(cfg config.Config) (storage.KeyValue, error) {
	if cfg.StoreEngine == storage.EnginePostgres {
		db, err := dbhelper.SetupDB()
		if err != nil {
			return nil, err
		}
		return storage.NewGormKV(db), nil
	}
	return storage.NewByEngine(cfg.StoreEngine, cfg.StorePath)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logging.Setup(cfg.Env)

	err = sentry.Init(sentry.ClientOptions{
		// An empty DSN disables reporting.
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Env,
		Release:          "smartcloset@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	ctx := context.Background()
	kv, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.StoreEngine).Msg("open session storage")
	}

	sessionStore := session.NewStore(kv, cfg.SessionDelay)
	sessionStore.Load(ctx)

	closet := wardrobe.NewStore()
	if cfg.SeedWardrobe {
		closet = wardrobe.NewSeededStore()
	}

	analysisCache, err := services.NewAnalysisCache(cfg.AnalysisCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis cache")
	}
	if cfg.GoogleAPIKey == "" {
		log.Warn().Msg("GOOGLE_API_KEY is not set, stylist answers will use fallbacks")
	}
	stylist := services.NewStylistGateway(cfg.GoogleAPIKey, services.GoogleGenAIInvoker{APIKey: cfg.GoogleAPIKey}, analysisCache)

	deps := controllers.Dependencies{
		Wardrobe:     closet,
		Inspirations: wardrobe.NewInspirationBoard(),
		Session:      sessionStore,
		Chat:         session.NewChatHistory(kv),
		Stylist:      stylist,
		Weather:      services.NewMockWeather(),
	}
	if cfg.AsyncEnabled() {
		redisOpt := asynq.RedisClientOpt{Addr: cfg.AsyncBrokerAddress}
		asynqClient := asynq.NewClient(redisOpt)
		defer asynqClient.Close()
		asynqInspector := asynq.NewInspector(redisOpt)
		defer asynqInspector.Close()
		deps.Enqueuer = asynqClient
		deps.Inspector = asynqInspector
	} else {
		log.Info().Msg("ASYNC_BROKER_ADDRESS is not set, deferred daily outfits are disabled")
	}

	e := controllers.SetupServer(deps)
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	log.Info().Str("address", cfg.Address).Str("store", cfg.StoreEngine).Msg("starting api")
	if err := e.Start(cfg.Address); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
