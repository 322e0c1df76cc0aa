package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleImage = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func scenarioCloset() []models.ClothingItem {
	return []models.ClothingItem{
		{ID: "1", Category: models.CategoryTop, Color: "white", Season: models.SeasonAllYear, Description: "white tee", WearCount: 12},
		{ID: "2", Category: models.CategoryBottom, Color: "blue", Season: models.SeasonAllYear, Description: "jeans", WearCount: 25},
	}
}

func scenarioWeather() models.WeatherSnapshot {
	return models.WeatherSnapshot{Temp: 26, Condition: models.WeatherSunny, UVIndex: 6, Precipitation: 20}
}

func TestNoCredentialNeverCallsRemote(t *testing.T) {
	ctx := context.Background()
	for _, key := range []string{"", "   "} {
		gateway := services.NewStylistGateway(key, test.FailIfCalledInvoker{T: t}, nil)

		result := gateway.RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.EN)
		assert.Empty(t, result.ItemIDs)
		assert.NotNil(t, result.ItemIDs)
		assert.Equal(t, "API Key missing. Wear your favorite jeans and a t-shirt!", result.Text)

		result = gateway.RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.ZH)
		assert.Equal(t, "API Key 缺失。建议直接穿你最喜欢的牛仔裤和T恤！", result.Text)

		analysis := gateway.AnalyzeImage(ctx, sampleImage, models.EN)
		assert.Equal(t, models.CategoryTop, analysis.Category)
		assert.Equal(t, "Unknown", analysis.Color)
		assert.Equal(t, models.SeasonAllYear, analysis.Season)
		assert.Equal(t, "AI Analysis unavailable (No API Key)", analysis.Description)

		assert.Equal(t, "API Key 缺失。", gateway.AskStylist(ctx, scenarioCloset(), "hi", nil, models.ZH))
	}
}

func TestDailyOutfitStripsEmphasis(t *testing.T) {
	invoker := test.NewGenAIInvokerMock(`{"itemIds":["1","2"],"reasoning":"Light and breezy *look* for warm weather"}`)
	gateway := services.NewStylistGateway("key", invoker, nil)

	result := gateway.RecommendDailyOutfit(context.Background(), scenarioCloset(), scenarioWeather(), models.EN)
	assert.Equal(t, []string{"1", "2"}, result.ItemIDs)
	assert.Equal(t, "Light and breezy look for warm weather", result.Text)

	req := invoker.LastRequest()
	assert.Equal(t, services.Flash3Preview, req.Model)
	require.NotNil(t, req.Schema)
	assert.Contains(t, req.Prompt, "ID: 1 | white All Year Top (white tee)")
	assert.Contains(t, req.Prompt, "Temp: 26°C, Sunny")
	assert.Contains(t, req.Prompt, "Precipitation Probability: 20%")
	assert.Contains(t, req.Prompt, "Language: English.")
	assert.Empty(t, req.Image)
}

func TestDailyOutfitFallbacks(t *testing.T) {
	ctx := context.Background()

	invoker := test.NewGenAIInvokerMock(`not json at all`)
	result := services.NewStylistGateway("key", invoker, nil).RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.EN)
	assert.Empty(t, result.ItemIDs)
	assert.Equal(t, "Stylist is currently offline.", result.Text)

	invoker = &test.GenAIInvokerMock{Err: errors.New("deadline exceeded")}
	result = services.NewStylistGateway("key", invoker, nil).RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.ZH)
	assert.Empty(t, result.ItemIDs)
	assert.Equal(t, "搭配师目前离线。", result.Text)

	invoker = test.NewGenAIInvokerMock(`{"itemIds":["3"],"reasoning":"***"}`)
	result = services.NewStylistGateway("key", invoker, nil).RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.EN)
	assert.Equal(t, []string{"3"}, result.ItemIDs)
	assert.Equal(t, "Could not generate outfit.", result.Text)

	invoker = test.NewGenAIInvokerMock("")
	result = services.NewStylistGateway("key", invoker, nil).RecommendDailyOutfit(ctx, scenarioCloset(), scenarioWeather(), models.ZH)
	assert.Empty(t, result.ItemIDs)
	assert.Equal(t, "无法生成穿搭建议。", result.Text)
}

func TestDailyOutfitKeepsUnknownIDs(t *testing.T) {
	invoker := test.NewGenAIInvokerMock(`{"itemIds":["1","99"],"reasoning":"ok"}`)
	result := services.NewStylistGateway("key", invoker, nil).RecommendDailyOutfit(context.Background(), scenarioCloset(), scenarioWeather(), models.EN)
	assert.Equal(t, []string{"1", "99"}, result.ItemIDs)
}

func TestAnalyzeImageFencedEqualsBare(t *testing.T) {
	bare := `{"category":"Bottom","color":"蓝色","season":"All Year","description":"直筒牛仔裤","brand":"Levi's","price":299,"material":"Denim"}`
	fenced := "```json\n" + bare + "\n```"

	ctx := context.Background()
	fromBare := services.NewStylistGateway("key", test.NewGenAIInvokerMock(bare), nil).AnalyzeImage(ctx, sampleImage, models.ZH)
	fromFenced := services.NewStylistGateway("key", test.NewGenAIInvokerMock(fenced), nil).AnalyzeImage(ctx, sampleImage, models.ZH)

	assert.Equal(t, fromBare, fromFenced)
	assert.Equal(t, models.CategoryBottom, fromFenced.Category)
	assert.Equal(t, models.SeasonAllYear, fromFenced.Season)
	require.NotNil(t, fromFenced.Price)
	assert.Equal(t, 299.0, *fromFenced.Price)
	require.NotNil(t, fromFenced.Brand)
	assert.Equal(t, "Levi's", *fromFenced.Brand)
}

func TestAnalyzeImageRequestShape(t *testing.T) {
	invoker := test.NewGenAIInvokerMock(`{"category":"Top","color":"white","season":"Summer","description":"tee"}`)
	services.NewStylistGateway("key", invoker, nil).AnalyzeImage(context.Background(), sampleImage, models.EN)

	req := invoker.LastRequest()
	assert.Equal(t, services.Flash25Image, req.Model)
	assert.Equal(t, sampleImage, req.Image)
	assert.Nil(t, req.Schema)
	assert.Contains(t, req.Prompt, "'color' (Use English)")
}

func TestAnalyzeImageInvalidCategoryFallsBack(t *testing.T) {
	invoker := test.NewGenAIInvokerMock(`{"category":"Shirt","color":"white","season":"Summer","description":"tee"}`)
	result := services.NewStylistGateway("key", invoker, nil).AnalyzeImage(context.Background(), sampleImage, models.EN)

	assert.Equal(t, models.PartialClothingItem{
		Category:    models.CategoryTop,
		Color:       "Unknown",
		Season:      models.SeasonAllYear,
		Description: "Failed to analyze image",
	}, result)
}

func TestAnalyzeImageFailures(t *testing.T) {
	ctx := context.Background()
	cases := []*test.GenAIInvokerMock{
		test.NewGenAIInvokerMock(""),
		test.NewGenAIInvokerMock("{broken"),
		test.NewGenAIInvokerMock(`{"category":"Top","color":"white","season":"Monsoon","description":"tee"}`),
		test.NewGenAIInvokerMock(`{"category":"Top","season":"Summer","description":"tee"}`),
		{Err: errors.New("connection reset")},
	}
	for _, invoker := range cases {
		result := services.NewStylistGateway("key", invoker, nil).AnalyzeImage(ctx, sampleImage, models.ZH)
		assert.Equal(t, "图片分析失败", result.Description)
		assert.Equal(t, models.CategoryTop, result.Category)
	}
}

func TestAnalyzeImageCachesSuccessOnly(t *testing.T) {
	cache, err := services.NewAnalysisCache(time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	failing := &test.GenAIInvokerMock{Err: errors.New("offline")}
	services.NewStylistGateway("key", failing, cache).AnalyzeImage(ctx, sampleImage, models.EN)

	invoker := test.NewGenAIInvokerMock(`{"category":"Shoes","color":"white","season":"Spring","description":"sneakers"}`)
	gateway := services.NewStylistGateway("key", invoker, cache)
	first := gateway.AnalyzeImage(ctx, sampleImage, models.EN)
	second := gateway.AnalyzeImage(ctx, sampleImage, models.EN)

	assert.Equal(t, 1, invoker.Calls())
	assert.Equal(t, first, second)
	assert.Equal(t, models.CategoryShoes, second.Category)

	gateway.AnalyzeImage(ctx, sampleImage, models.ZH)
	assert.Equal(t, 2, invoker.Calls())
}

func TestAskStylistModes(t *testing.T) {
	ctx := context.Background()

	invoker := test.NewGenAIInvokerMock("Try the **white tee** with *jeans*")
	reply := services.NewStylistGateway("key", invoker, nil).AskStylist(ctx, scenarioCloset(), "Korean Minimalist", nil, models.EN)
	assert.Equal(t, "Try the white tee with jeans", reply)
	req := invoker.LastRequest()
	assert.Equal(t, services.Flash3Preview, req.Model)
	assert.Empty(t, req.Image)
	assert.Contains(t, req.Prompt, "- white white tee (ID: 1)")
	assert.Contains(t, req.Prompt, `User Query: "Korean Minimalist"`)

	invoker = test.NewGenAIInvokerMock("Nice coat")
	reply = services.NewStylistGateway("key", invoker, nil).AskStylist(ctx, scenarioCloset(), "match?", sampleImage, models.EN)
	assert.Equal(t, "Nice coat", reply)
	assert.Equal(t, services.Flash25Image, invoker.LastRequest().Model)
	assert.Equal(t, sampleImage, invoker.LastRequest().Image)
}

func TestAskStylistFallbacks(t *testing.T) {
	ctx := context.Background()

	reply := services.NewStylistGateway("key", test.NewGenAIInvokerMock(""), nil).AskStylist(ctx, nil, "hi", sampleImage, models.ZH)
	assert.Equal(t, "我看不清这张图，能换一张吗？", reply)

	reply = services.NewStylistGateway("key", test.NewGenAIInvokerMock("  "), nil).AskStylist(ctx, nil, "hi", nil, models.EN)
	assert.Equal(t, "I couldn't think of anything.", reply)

	reply = services.NewStylistGateway("key", &test.GenAIInvokerMock{Err: errors.New("boom")}, nil).AskStylist(ctx, nil, "hi", nil, models.EN)
	assert.Equal(t, "I'm having trouble thinking right now.", reply)
}
