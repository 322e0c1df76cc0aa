package languageutil

import (
	"smartcloset/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// MatchLanguage picks the closest supported language for an Accept-Language
// header. Anything unmatched falls back to models.DefaultLanguage.
func MatchLanguage(acceptLanguage string) models.Language {
	if acceptLanguage == "" {
		return models.DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return models.DefaultLanguage
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return models.DefaultLanguage
	}
	if supported[index] == language.English {
		return models.EN
	}
	return models.ZH
}

// Resolve prefers an explicit language code and falls back to the header.
func Resolve(explicit string, acceptLanguage string) models.Language {
	if lang := models.Language(explicit); lang.Valid() {
		return lang
	}
	return MatchLanguage(acceptLanguage)
}

// Fold case-folds text for case-insensitive matching. Casers keep state, so
// each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}
