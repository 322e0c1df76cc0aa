package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// LLMModelName is the hosted model a request is routed to.
type LLMModelName int32

const (
	Pro25 LLMModelName = iota
	Flash25
	FlashLite25
	Flash20
	// Flash25Image is the image understanding model. It does not accept a
	// response schema.
	Flash25Image
	Flash3Preview
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite"
	case Flash25Image:
		return "gemini-2.5-flash-image"
	case Flash3Preview:
		return "gemini-3-flash-preview"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.0-flash"
	}
}

type LLMResponse struct {
	Response           string `json:"response"`
	InputTokenCount    int32  `json:"input_token_count"`
	Thoughts           string `json:"thoughts"`
	ThoughtsTokenCount int32  `json:"thoughts_token_count"`
	OutputTokenCount   int32  `json:"output_token_count"`
	TotalTokenCount    int32  `json:"total_token_count"`
	IsTest             bool   `json:"is_test"`
}

// GenerationRequest is one call against the remote model. Image is optional;
// Schema switches the call into structured JSON output.
type GenerationRequest struct {
	Model    LLMModelName
	Prompt   string
	Image    []byte
	MIMEType string
	Schema   *genai.Schema
}

type GenAIInvoker interface {
	Generate(ctx context.Context, req GenerationRequest) (*LLMResponse, error)
}

type GoogleGenAIInvoker struct {
	APIKey string
}

type ResponseWithThoughts struct {
	Thoughts string `json:"thoughts"`
	Text     string `json:"text"`
}

func (g GoogleGenAIInvoker) Generate(ctx context.Context, req GenerationRequest) (*LLMResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}

	var parts []*genai.Part
	if len(req.Image) > 0 {
		data, mimeType := PrepareUploadImage(req.Image, req.MIMEType)
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: mimeType,
				Data:     data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: req.Prompt})

	config := &genai.GenerateContentConfig{
		CandidateCount: 1,
		Temperature:    floatPointer(0.8),
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	}

	result, err := client.Models.GenerateContent(ctx, req.Model.String(), []*genai.Content{{Parts: parts}}, config)
	if err != nil {
		return nil, fmt.Errorf("generate content with %s: %w", req.Model, err)
	}

	var inputTokenCount, thoughtsTokenCount, outputTokenCount, totalTokenCount int32
	if result.UsageMetadata != nil {
		inputTokenCount = result.UsageMetadata.PromptTokenCount
		thoughtsTokenCount = result.UsageMetadata.ThoughtsTokenCount
		outputTokenCount = result.UsageMetadata.CandidatesTokenCount
		totalTokenCount = result.UsageMetadata.TotalTokenCount
		log.Ctx(ctx).Debug().
			Str("model", req.Model.String()).
			Int32("input_tokens", inputTokenCount).
			Int32("output_tokens", outputTokenCount).
			Int32("thoughts_tokens", thoughtsTokenCount).
			Int32("total_tokens", totalTokenCount).
			Msg("genai usage")
	}

	llmResponseText, err := GetFirstCandidateTextWithThoughts(ctx, result)
	if err != nil {
		if result.PromptFeedback != nil {
			return nil, fmt.Errorf("content violation: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
		}
		return nil, err
	}
	return &LLMResponse{
		Response:           llmResponseText.Text,
		Thoughts:           llmResponseText.Thoughts,
		InputTokenCount:    inputTokenCount,
		ThoughtsTokenCount: thoughtsTokenCount,
		OutputTokenCount:   outputTokenCount,
		TotalTokenCount:    totalTokenCount,
	}, nil
}

func GetFirstCandidateTextWithThoughts(ctx context.Context, result *genai.GenerateContentResponse) (*ResponseWithThoughts, error) {
	if result == nil {
		return nil, errors.New("empty genai response")
	}
	var thinkingContent string
	for _, c := range result.Candidates {
		if c == nil {
			continue
		}
		log.Ctx(ctx).Debug().Str("finish_reason", string(c.FinishReason)).Str("finish_message", c.FinishMessage).Msg("genai candidate")
		for _, rating := range c.SafetyRatings {
			if rating.Blocked {
				return nil, fmt.Errorf("content violation: blocked for %s", rating.Category)
			}
		}
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if part.Thought && part.Text != "" {
				thinkingContent = part.Text
			}
		}
	}
	return &ResponseWithThoughts{
		Thoughts: thinkingContent,
		Text:     result.Text(),
	}, nil
}
