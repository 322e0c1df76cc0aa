package services

import "smartcloset/models"

type localized struct {
	zh string
	en string
}

func (l localized) In(lang models.Language) string {
	if lang == models.EN {
		return l.en
	}
	return l.zh
}

var (
	msgAnalyzeNoKey = localized{
		zh: "API Key 未配置 (AI 分析不可用)",
		en: "AI Analysis unavailable (No API Key)",
	}
	msgAnalyzeFailed = localized{
		zh: "图片分析失败",
		en: "Failed to analyze image",
	}
	msgDailyNoKey = localized{
		zh: "API Key 缺失。建议直接穿你最喜欢的牛仔裤和T恤！",
		en: "API Key missing. Wear your favorite jeans and a t-shirt!",
	}
	msgDailyEmpty = localized{
		zh: "无法生成穿搭建议。",
		en: "Could not generate outfit.",
	}
	msgDailyOffline = localized{
		zh: "搭配师目前离线。",
		en: "Stylist is currently offline.",
	}
	msgAskNoKey = localized{
		zh: "API Key 缺失。",
		en: "API Key missing.",
	}
	msgAskImageUnclear = localized{
		zh: "我看不清这张图，能换一张吗？",
		en: "I can't see the image clearly.",
	}
	msgAskNoIdea = localized{
		zh: "我暂时想不到什么建议。",
		en: "I couldn't think of anything.",
	}
	msgAskConfused = localized{
		zh: "我现在有点混乱，请稍后再试。",
		en: "I'm having trouble thinking right now.",
	}
	msgDailyPushTitle = localized{
		zh: "今日穿搭已就绪",
		en: "Your daily look is ready",
	}
)

// DailyPushTitle is the notification title for a finished deferred
// recommendation.
func DailyPushTitle(lang models.Language) string {
	return msgDailyPushTitle.In(lang)
}

func analysisFallback(description localized, lang models.Language) models.PartialClothingItem {
	return models.PartialClothingItem{
		Category:    models.CategoryTop,
		Color:       "Unknown",
		Season:      models.SeasonAllYear,
		Description: description.In(lang),
	}
}
