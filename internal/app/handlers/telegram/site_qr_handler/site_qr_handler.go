package site_qr_handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/report"
	"gopkg.in/telebot.v4"
)

// SiteQRHandler отправляет QR-код, открывающий AR-экран объекта в боте
type SiteQRHandler struct {
	contentService *contentService.ContentService
	botUsername    string
}

// NewSiteQRHandler возвращает структуру обработчика
func NewSiteQRHandler(contentService *contentService.ContentService, botUsername string) *SiteQRHandler {
	return &SiteQRHandler{
		contentService: contentService,
		botUsername:    botUsername,
	}
}

func (h *SiteQRHandler) Handle(c telebot.Context) error {
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

	link := report.ARDeepLink(h.botUsername, site.ID)
	png, err := report.SiteQR(link)
	if err != nil {
		return err
	}

	return c.Send(&telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(png)),
		Caption: fmt.Sprintf("%s: scan to open the AR view\n%s", site.Name, link),
	})
}

func (h *SiteQRHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
