package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"smartcloset/models"
)

type ParseKind int

const (
	ParseOk ParseKind = iota
	ParseError
	SchemaError
)

func (k ParseKind) String() string {
	switch k {
	case ParseOk:
		return "ok"
	case ParseError:
		return "parse_error"
	case SchemaError:
		return "schema_error"
	default:
		return "unknown"
	}
}

// ParseResult is the outcome of decoding an untrusted model response. Value
// is only meaningful when Kind is ParseOk.
type ParseResult[T any] struct {
	Kind  ParseKind
	Value T
	Err   error
}

func (r ParseResult[T]) Ok() bool {
	return r.Kind == ParseOk
}

func parsed[T any](value T) ParseResult[T] {
	return ParseResult[T]{Kind: ParseOk, Value: value}
}

func parseFailed[T any](err error) ParseResult[T] {
	return ParseResult[T]{Kind: ParseError, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
}

func schemaFailed[T any](format string, args ...any) ParseResult[T] {
	return ParseResult[T]{Kind: SchemaError, Err: fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))}
}

var codeFenceRule = regexp.MustCompile("(?i)```(?:json)?[ \\t]*\\r?\\n?")

func cleanAIResponseText(text string) string {
	return strings.TrimSpace(codeFenceRule.ReplaceAllString(strings.TrimSpace(text), ""))
}

func stripEmphasis(text string) string {
	return strings.ReplaceAll(text, "*", "")
}

type analysisPayload struct {
	Category    *string         `json:"category"`
	Color       *string         `json:"color"`
	Season      *string         `json:"season"`
	Description *string         `json:"description"`
	Brand       *string         `json:"brand"`
	Price       json.RawMessage `json:"price"`
	Material    *string         `json:"material"`
}

// ParseAnalysis decodes an image analysis reply into a PartialClothingItem.
// The four core fields are required and the enums must be in range.
func ParseAnalysis(text string) ParseResult[models.PartialClothingItem] {
	cleaned := cleanAIResponseText(text)
	if cleaned == "" {
		return parseFailed[models.PartialClothingItem](errors.New("empty response"))
	}
	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return parseFailed[models.PartialClothingItem](err)
	}

	for field, value := range map[string]*string{
		"category":    payload.Category,
		"color":       payload.Color,
		"season":      payload.Season,
		"description": payload.Description,
	} {
		if value == nil || strings.TrimSpace(*value) == "" {
			return schemaFailed[models.PartialClothingItem]("missing field %q", field)
		}
	}
	category, ok := models.ParseCategory(strings.TrimSpace(*payload.Category))
	if !ok {
		return schemaFailed[models.PartialClothingItem]("category %q outside the allowed set", *payload.Category)
	}
	season, ok := models.ParseSeason(strings.TrimSpace(*payload.Season))
	if !ok {
		return schemaFailed[models.PartialClothingItem]("season %q outside the allowed set", *payload.Season)
	}

	return parsed(models.PartialClothingItem{
		Category:    category,
		Color:       strings.TrimSpace(*payload.Color),
		Season:      season,
		Description: strings.TrimSpace(*payload.Description),
		Brand:       optionalText(payload.Brand),
		Price:       optionalPrice(payload.Price),
		Material:    optionalText(payload.Material),
	})
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	return StrPointer(strings.TrimSpace(*value))
}

// optionalPrice takes a JSON number or a numeric string. Null, zero,
// non-finite values and anything unreadable mean no price.
func optionalPrice(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var price float64
	if err := json.Unmarshal(raw, &price); err != nil {
		var asText string
		if json.Unmarshal(raw, &asText) != nil {
			return nil
		}
		asText = strings.TrimLeft(strings.TrimSpace(asText), "¥$€£ ")
		asText = strings.ReplaceAll(asText, ",", "")
		parsedPrice, err := strconv.ParseFloat(asText, 64)
		if err != nil {
			return nil
		}
		price = parsedPrice
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil
	}
	return &price
}

type RecommendationPayload struct {
	ItemIDs   []string `json:"itemIds"`
	Reasoning string   `json:"reasoning"`
}

// ParseRecommendation decodes the structured daily outfit reply. An empty
// reply decodes as an empty object.
func ParseRecommendation(text string) ParseResult[RecommendationPayload] {
	cleaned := cleanAIResponseText(text)
	if cleaned == "" {
		cleaned = "{}"
	}
	var payload RecommendationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return parseFailed[RecommendationPayload](err)
	}
	if payload.ItemIDs == nil {
		payload.ItemIDs = []string{}
	}
	for i, id := range payload.ItemIDs {
		if strings.TrimSpace(id) == "" {
			return schemaFailed[RecommendationPayload]("blank item id at %d", i)
		}
	}
	return parsed(payload)
}
