package site_handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"gopkg.in/telebot.v4"
)

// SiteHandler карточка объекта. Данные кнопки: ID объекта
type SiteHandler struct {
	contentService *contentService.ContentService
}

// NewSiteHandler возвращает структуру обработчика
func NewSiteHandler(contentService *contentService.ContentService) *SiteHandler {
	return &SiteHandler{contentService: contentService}
}

func (h *SiteHandler) Handle(c telebot.Context) error {
	siteID, err := strconv.Atoi(c.Callback().Data)
	if err != nil {
		return fmt.Errorf("invalid site id %q: %w", c.Callback().Data, err)
	}

	site, err := h.contentService.GetSiteByID(context.Background(), siteID)
	if err != nil {
		if errors.Is(err, contentService.ErrSiteNotFound) {
			return views.Notice(c, "This heritage site is not in the catalog.")
		}
		return fmt.Errorf("failed to get site: %w", err)
	}

	text, markup := views.Site(*site)
	return views.Show(c, text, markup)
}

func (h *SiteHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
