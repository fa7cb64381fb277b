package profile_handler

import (
	"context"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"gopkg.in/telebot.v4"
)

// ProfileHandler статический профиль. Прогресс нигде не сохраняется
type ProfileHandler struct {
	contentService *contentService.ContentService
}

func NewProfileHandler(contentService *contentService.ContentService) *ProfileHandler {
	return &ProfileHandler{contentService: contentService}
}

func (h *ProfileHandler) Handle(c telebot.Context) error {
	profile, err := h.contentService.GetProfile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	text, markup := views.Profile(*profile)
	return views.Show(c, text, markup)
}

func (h *ProfileHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
