package start_handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/ar_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// arPayloadPrefix payload глубокой ссылки t.me/<bot>?start=ar_<id> из QR-кода
const arPayloadPrefix = "ar_"

// StartHandler структура для обработки команды /start и кнопки "Home"
type StartHandler struct {
	contentService *contentService.ContentService
	arHandler      *ar_handler.ARHandler
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(contentService *contentService.ContentService, arHandler *ar_handler.ARHandler) *StartHandler {
	return &StartHandler{
		contentService: contentService,
		arHandler:      arHandler,
	}
}

// Handle показывает главный экран или, для payload ar_<id>, сразу AR-экран объекта
func (h *StartHandler) Handle(c telebot.Context) error {
	if siteID, ok := ARPayload(c); ok {
		return h.arHandler.Open(c, siteID)
	}

	// Используем дефолтный контекст
	ctx := context.Background()

	sites, err := h.contentService.GetSites(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}
	questions, err := h.contentService.GetQuestions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get questions: %w", err)
	}

	welcome := h.contentService.MessageOr(ctx, model.WelcomeMessageKey, "Preserving India's Heritage through AR")
	features := h.contentService.MessageOr(ctx, model.FeaturesMessageKey, "Discover India's Treasures")

	text, markup := views.Home(welcome, features, len(sites), len(questions))
	return views.Show(c, text, markup)
}

// ARPayload разбирает payload команды /start вида ar_<id>
func ARPayload(c telebot.Context) (int, bool) {
	if c.Callback() != nil || c.Message() == nil {
		return 0, false
	}
	payload := strings.TrimSpace(c.Message().Payload)
	if !strings.HasPrefix(payload, arPayloadPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(payload, arPayloadPrefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetHandlerFunc возвращает функцию-обработчик для telebot
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
