package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smartcloset/models"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

var (
	ErrCredentialMissing = errors.New("genai credential missing")
	ErrRemoteCall        = errors.New("genai remote call failed")
	ErrMalformedResponse = errors.New("genai response malformed")
)

// DefaultAskQuery is sent when an image is attached without a question.
const DefaultAskQuery = "What do you think about this?"

type StylistProvider interface {
	AnalyzeImage(ctx context.Context, image []byte, lang models.Language) models.PartialClothingItem
	RecommendDailyOutfit(ctx context.Context, closet []models.ClothingItem, weather models.WeatherSnapshot, lang models.Language) models.RecommendationResult
	AskStylist(ctx context.Context, closet []models.ClothingItem, query string, image []byte, lang models.Language) string
}

// StylistGateway turns wardrobe requests into model calls and validated
// domain values. None of its operations return an error: every failure
// degrades to a localized fallback.
type StylistGateway struct {
	APIKey  string
	Invoker GenAIInvoker
	Cache   *AnalysisCache
}

func NewStylistGateway(apiKey string, invoker GenAIInvoker, cache *AnalysisCache) *StylistGateway {
	return &StylistGateway{
		APIKey:  apiKey,
		Invoker: invoker,
		Cache:   cache,
	}
}

func (g *StylistGateway) credentialCheck() error {
	if strings.TrimSpace(g.APIKey) == "" || g.Invoker == nil {
		return ErrCredentialMissing
	}
	return nil
}

func (g *StylistGateway) invoke(ctx context.Context, op string, req GenerationRequest) (string, error) {
	response, err := g.Invoker.Generate(ctx, req)
	if err != nil {
		wrapped := fmt.Errorf("%w: %s: %v", ErrRemoteCall, op, err)
		sentry.CaptureException(wrapped)
		return "", wrapped
	}
	if response == nil {
		return "", nil
	}
	return response.Response, nil
}

func (g *StylistGateway) AnalyzeImage(ctx context.Context, image []byte, lang models.Language) models.PartialClothingItem {
	logger := log.Ctx(ctx).With().Str("op", "analyze_image").Str("lang", string(lang)).Logger()
	if err := g.credentialCheck(); err != nil {
		logger.Warn().Err(err).Msg("stylist fallback")
		return analysisFallback(msgAnalyzeNoKey, lang)
	}
	if cached, ok := g.Cache.Get(ctx, image, lang); ok {
		logger.Debug().Msg("analysis cache hit")
		return cached
	}

	text, err := g.invoke(ctx, "analyze_image", GenerationRequest{
		Model:  Flash25Image,
		Prompt: analyzePrompt(lang),
		Image:  image,
	})
	if err != nil {
		logger.Error().Err(err).Msg("stylist fallback")
		return analysisFallback(msgAnalyzeFailed, lang)
	}
	result := ParseAnalysis(text)
	if !result.Ok() {
		logger.Error().Err(result.Err).Str("kind", result.Kind.String()).Msg("stylist fallback")
		return analysisFallback(msgAnalyzeFailed, lang)
	}
	g.Cache.Set(ctx, image, lang, result.Value)
	return result.Value
}

func (g *StylistGateway) RecommendDailyOutfit(ctx context.Context, closet []models.ClothingItem, weather models.WeatherSnapshot, lang models.Language) models.RecommendationResult {
	logger := log.Ctx(ctx).With().Str("op", "daily_outfit").Str("lang", string(lang)).Int("closet_size", len(closet)).Logger()
	if err := g.credentialCheck(); err != nil {
		logger.Warn().Err(err).Msg("stylist fallback")
		return models.RecommendationResult{ItemIDs: []string{}, Text: msgDailyNoKey.In(lang)}
	}

	text, err := g.invoke(ctx, "daily_outfit", GenerationRequest{
		Model:  Flash3Preview,
		Prompt: dailyOutfitPrompt(closet, weather, lang),
		Schema: recommendationSchema,
	})
	if err != nil {
		logger.Error().Err(err).Msg("stylist fallback")
		return models.RecommendationResult{ItemIDs: []string{}, Text: msgDailyOffline.In(lang)}
	}
	result := ParseRecommendation(text)
	if !result.Ok() {
		logger.Error().Err(result.Err).Str("kind", result.Kind.String()).Msg("stylist fallback")
		return models.RecommendationResult{ItemIDs: []string{}, Text: msgDailyOffline.In(lang)}
	}

	reasoning := strings.TrimSpace(stripEmphasis(result.Value.Reasoning))
	if reasoning == "" {
		reasoning = msgDailyEmpty.In(lang)
	}
	return models.RecommendationResult{
		ItemIDs: result.Value.ItemIDs,
		Text:    reasoning,
	}
}

func (g *StylistGateway) AskStylist(ctx context.Context, closet []models.ClothingItem, query string, image []byte, lang models.Language) string {
	hasImage := len(image) > 0
	logger := log.Ctx(ctx).With().Str("op", "ask_stylist").Str("lang", string(lang)).Bool("image", hasImage).Logger()
	if err := g.credentialCheck(); err != nil {
		logger.Warn().Err(err).Msg("stylist fallback")
		return msgAskNoKey.In(lang)
	}

	req := GenerationRequest{
		Model:  Flash3Preview,
		Prompt: askStylistPrompt(closet, query, lang),
	}
	emptyReply := msgAskNoIdea
	if hasImage {
		req.Model = Flash25Image
		req.Image = image
		emptyReply = msgAskImageUnclear
	}
	text, err := g.invoke(ctx, "ask_stylist", req)
	if err != nil {
		logger.Error().Err(err).Msg("stylist fallback")
		return msgAskConfused.In(lang)
	}
	if strings.TrimSpace(text) == "" {
		text = emptyReply.In(lang)
	}
	return stripEmphasis(text)
}
