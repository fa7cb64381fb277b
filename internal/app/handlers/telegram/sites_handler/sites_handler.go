package sites_handler

import (
	"context"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"gopkg.in/telebot.v4"
)

// SitesHandler список объектов наследия
type SitesHandler struct {
	contentService *contentService.ContentService
}

func NewSitesHandler(contentService *contentService.ContentService) *SitesHandler {
	return &SitesHandler{contentService: contentService}
}

func (h *SitesHandler) Handle(c telebot.Context) error {
	sites, err := h.contentService.GetSites(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}

	text, markup := views.Sites(sites)
	return views.Show(c, text, markup)
}

func (h *SitesHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
