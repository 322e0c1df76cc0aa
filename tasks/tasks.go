package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartcloset/models"
	"smartcloset/services"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TypeDailyOutfit = "stylist:daily_outfit"
	QueueGenerate   = "generate"

	ResultRetention = 24 * time.Hour
)

// DailyOutfitPayload carries everything the worker needs, so the worker
// never reads the API process's in-memory wardrobe.
type DailyOutfitPayload struct {
	Closet      []models.ClothingItem  `json:"closet"`
	Weather     models.WeatherSnapshot `json:"weather"`
	Lang        models.Language        `json:"lang"`
	DeviceToken string                 `json:"deviceToken,omitempty"`
}

func NewDailyOutfitTask(payload DailyOutfitPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDailyOutfit, data), nil
}

// DailyOutfitOptions are the enqueue options used for every daily outfit
// task. The result is retained so it can be polled.
func DailyOutfitOptions() []asynq.Option {
	return []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Queue(QueueGenerate),
		asynq.Retention(ResultRetention),
	}
}

func HandleDailyOutfitTask(ctx context.Context, t *asynq.Task, stylist services.StylistProvider, notifier services.Notifier) error {
	var payload DailyOutfitPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode daily outfit payload: %v: %w", err, asynq.SkipRetry)
	}
	if !payload.Lang.Valid() {
		payload.Lang = models.DefaultLanguage
	}
	logger := log.Ctx(ctx).With().Str("task", TypeDailyOutfit).Str("lang", string(payload.Lang)).Logger()
	ctx = logger.WithContext(ctx)

	result := stylist.RecommendDailyOutfit(ctx, payload.Closet, payload.Weather, payload.Lang)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode daily outfit result: %w", err)
	}
	if writer := t.ResultWriter(); writer != nil {
		if _, err := writer.Write(data); err != nil {
			sentry.CaptureException(fmt.Errorf("write daily outfit result for task %s: %w", writer.TaskID(), err))
			return fmt.Errorf("write daily outfit result: %w", err)
		}
	}
	logger.Info().Int("item_count", len(result.ItemIDs)).Msg("daily outfit ready")

	if payload.DeviceToken != "" && notifier != nil {
		err := notifier.Notify(ctx, payload.DeviceToken, services.DailyPushTitle(payload.Lang), pushBody(result.Text), map[string]string{
			"type":    TypeDailyOutfit,
			"itemIds": strings.Join(result.ItemIDs, ","),
		})
		// a failed push must not rerun the recommendation
		if err != nil && !errors.Is(err, services.ErrNoDeviceToken) {
			logger.Error().Err(err).Msg("daily outfit push failed")
			sentry.CaptureException(fmt.Errorf("daily outfit push: %w", err))
		}
	}
	return nil
}

func pushBody(text string) string {
	runes := []rune(text)
	if len(runes) > 120 {
		return string(runes[:120]) + "…"
	}
	return text
}

// DecodeResult reads the stored result of a completed daily outfit task.
func DecodeResult(info *asynq.TaskInfo) (*models.RecommendationResult, error) {
	if info == nil || len(info.Result) == 0 {
		return nil, nil
	}
	var result models.RecommendationResult
	if err := json.Unmarshal(info.Result, &result); err != nil {
		return nil, fmt.Errorf("decode task result: %w", err)
	}
	return &result, nil
}
