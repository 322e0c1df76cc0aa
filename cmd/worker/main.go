package main

import (
	"context"
	"time"

	"smartcloset/config"
	"smartcloset/logging"
	"smartcloset/services"
	"smartcloset/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logging.Setup(cfg.Env)
	if !cfg.AsyncEnabled() {
		log.Fatal().Msg("ASYNC_BROKER_ADDRESS is not set")
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
		Release:     "smartcloset-worker@1.0.0",
	}); err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Flush(2 * time.Second)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.AsyncBrokerAddress},
		asynq.Config{
			Concurrency: cfg.WorkerConcurrency,
			Queues: map[string]int{
				tasks.QueueGenerate: 1,
			},
			BaseContext: func() context.Context {
				return log.Logger.WithContext(context.Background())
			},
		},
	)

	analysisCache, err := services.NewAnalysisCache(cfg.AnalysisCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis cache")
	}
	stylist := services.NewStylistGateway(cfg.GoogleAPIKey, services.GoogleGenAIInvoker{APIKey: cfg.GoogleAPIKey}, analysisCache)

	var notifier services.Notifier
	if cfg.FirebaseEnabled {
		firebaseNotifier, err := services.NewFirebaseNotifier(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("error initializing firebase app")
		}
		notifier = firebaseNotifier
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDailyOutfit, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleDailyOutfitTask(ctx, t, stylist, notifier)
	})

	log.Info().Int("concurrency", cfg.WorkerConcurrency).Msg("starting worker")
	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
}
