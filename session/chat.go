package session

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"

	"smartcloset/models"
	"smartcloset/services"
	"smartcloset/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ChatKey = "sc_lab_messages"

var introMessages = map[models.Language]string{
	models.ZH: "你好！我是你的专属 AI 搭配师。想试试“刘雯同款”还是“韩系简约”？告诉我，我来帮你从衣橱里找灵感！",
	models.EN: "Hi! I'm your AI stylist. Want to try 'Liu Wen style' or 'Korean Minimalist'? Tell me, and I'll search your closet!",
}

func IntroMessage(lang models.Language) models.ChatMessage {
	content, ok := introMessages[lang]
	if !ok {
		content = introMessages[models.DefaultLanguage]
	}
	return models.ChatMessage{
		ID:      models.IntroMessageID,
		Role:    models.RoleAI,
		Content: content,
	}
}

// ChatHistory is the persisted stylist conversation. Appends are serialized
// so concurrent questions land one after another.
type ChatHistory struct {
	mu sync.Mutex
	kv storage.KeyValue
}

func NewChatHistory(kv storage.KeyValue) *ChatHistory {
	return &ChatHistory{kv: kv}
}

func (h *ChatHistory) load(ctx context.Context) []models.ChatMessage {
	raw, err := h.kv.Get(ctx, ChatKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Ctx(ctx).Warn().Err(err).Msg("chat history read failed")
		}
		return nil
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("ignoring unreadable chat history")
		return nil
	}
	return messages
}

func (h *ChatHistory) save(ctx context.Context, messages []models.ChatMessage) {
	data, err := json.Marshal(messages)
	if err != nil {
		reportPersistFailure(ctx, "encode chat history", err)
		return
	}
	if err := h.kv.Set(ctx, ChatKey, string(data)); err != nil {
		reportPersistFailure(ctx, "write chat history", err)
	}
}

// Messages returns the conversation, seeding the intro when it is empty.
func (h *ChatHistory) Messages(ctx context.Context, lang models.Language) []models.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.messagesLocked(ctx, lang)
}

func (h *ChatHistory) messagesLocked(ctx context.Context, lang models.Language) []models.ChatMessage {
	messages := h.load(ctx)
	if len(messages) == 0 {
		messages = []models.ChatMessage{IntroMessage(lang)}
		h.save(ctx, messages)
	}
	return messages
}

// Ask records the user's question, asks the stylist and records the reply.
// A blank query with an image attached becomes services.DefaultAskQuery.
func (h *ChatHistory) Ask(ctx context.Context, stylist services.StylistProvider, closet []models.ClothingItem, query string, image []byte, imageRef *string, lang models.Language) (models.ChatMessage, models.ChatMessage) {
	query = strings.TrimSpace(query)
	if query == "" && len(image) > 0 {
		query = services.DefaultAskQuery
	}
	userMessage := models.ChatMessage{
		ID:      uuid.NewString(),
		Role:    models.RoleUser,
		Content: query,
		Image:   imageRef,
	}

	h.mu.Lock()
	messages := append(h.messagesLocked(ctx, lang), userMessage)
	h.save(ctx, messages)
	h.mu.Unlock()

	reply := models.ChatMessage{
		ID:      uuid.NewString(),
		Role:    models.RoleAI,
		Content: stylist.AskStylist(ctx, closet, query, image, lang),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.save(ctx, append(h.messagesLocked(ctx, lang), reply))
	return userMessage, reply
}

// Clear resets the conversation to the intro message.
func (h *ChatHistory) Clear(ctx context.Context, lang models.Language) []models.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	messages := []models.ChatMessage{IntroMessage(lang)}
	h.save(ctx, messages)
	return messages
}

// PrecedingUserQuery finds the user message right before the AI reply with
// the given content.
func (h *ChatHistory) PrecedingUserQuery(ctx context.Context, content string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	messages := h.load(ctx)
	index := slices.IndexFunc(messages, func(m models.ChatMessage) bool {
		return m.Content == content
	})
	if index > 0 && messages[index-1].Role == models.RoleUser {
		return messages[index-1].Content
	}
	return ""
}
