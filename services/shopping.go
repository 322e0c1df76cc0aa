package services

import (
	"net/url"
	"strings"

	"smartcloset/models"
)

const (
	taobaoSearchURL = "https://s.taobao.com/search?q="
	jdSearchURL     = "https://search.jd.com/Search?keyword="

	defaultShoppingKeyword = "Fashion Item"
	blankShoppingKeyword   = "Style Match"
)

type ShoppingLinks struct {
	Keywords string `json:"keywords"`
	Taobao   string `json:"taobao"`
	JD       string `json:"jd"`
}

var categoryLabels = map[models.Category]localized{
	models.CategoryTop:       {zh: "上装", en: "Top"},
	models.CategoryBottom:    {zh: "下装", en: "Bottom"},
	models.CategoryShoes:     {zh: "鞋履", en: "Shoes"},
	models.CategoryOuterwear: {zh: "外套", en: "Outerwear"},
	models.CategoryAccessory: {zh: "配饰", en: "Accessory"},
	models.CategoryDress:     {zh: "连衣裙", en: "Dress"},
}

func CategoryLabel(category models.Category, lang models.Language) string {
	if label, ok := categoryLabels[category]; ok {
		return label.In(lang)
	}
	return string(category)
}

// ItemShoppingKeywords is "{brand} {color} {description} {category}" with the
// category in the display language.
func ItemShoppingKeywords(item models.ClothingItem, lang models.Language) string {
	brand := ""
	if item.Brand != nil {
		brand = *item.Brand
	}
	keywords := brand + " " + item.Color + " " + item.Description + " " + CategoryLabel(item.Category, lang)
	return strings.TrimSpace(keywords)
}

// ChatShoppingKeywords picks the search phrase for a free-text stylist reply.
func ChatShoppingKeywords(userQuery string) string {
	keyword := userQuery
	if keyword == "" {
		keyword = defaultShoppingKeyword
	}
	if strings.TrimSpace(keyword) == "" {
		keyword = blankShoppingKeyword
	}
	return strings.TrimSpace(keyword)
}

// encodeComponent escapes like a URI component: spaces become %20.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func BuildShoppingLinks(keywords string) ShoppingLinks {
	keywords = strings.TrimSpace(keywords)
	encoded := encodeComponent(keywords)
	return ShoppingLinks{
		Keywords: keywords,
		Taobao:   taobaoSearchURL + encoded,
		JD:       jdSearchURL + encoded,
	}
}
