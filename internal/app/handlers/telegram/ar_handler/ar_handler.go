package ar_handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"gopkg.in/telebot.v4"
)

// Action что делает нажатие на AR-экране
type Action int

const (
	ActionOpen Action = iota
	ActionToggle
	ActionAudio
	ActionInfo
)

// ARHandler обработчик AR-экрана. Камеры и звука нет, переключатели только меняют состояние экрана
type ARHandler struct {
	contentService *contentService.ContentService
	states         *sessions.ARStates
	action         Action
}

// NewARHandler возвращает обработчик для одного действия AR-экрана
func NewARHandler(contentService *contentService.ContentService, states *sessions.ARStates, action Action) *ARHandler {
	return &ARHandler{
		contentService: contentService,
		states:         states,
		action:         action,
	}
}

// Handle обрабатывает /ar и кнопки ar_view, ar_toggle, ar_audio, ar_info
func (h *ARHandler) Handle(c telebot.Context) error {
	userID := c.Sender().ID

	var view model.ARView
	switch h.action {
	case ActionOpen:
		siteID, _ := strconv.Atoi(h.siteData(c))
		return h.Open(c, siteID)
	case ActionToggle:
		view = h.states.Update(userID, func(v *model.ARView) { v.ARMode = !v.ARMode })
	case ActionAudio:
		view = h.states.Update(userID, func(v *model.ARView) { v.Audio = !v.Audio })
	case ActionInfo:
		view = h.states.Update(userID, func(v *model.ARView) { v.ShowInfo = !v.ShowInfo })
	default:
		return fmt.Errorf("unknown ar action %d", h.action)
	}

	return h.show(c, view)
}

// Open открывает AR-экран для объекта. siteID == 0 открывает общий экран без объекта
func (h *ARHandler) Open(c telebot.Context, siteID int) error {
	var site *model.HeritageSite
	if siteID > 0 {
		s, err := h.contentService.GetSiteByID(context.Background(), siteID)
		if err != nil {
			if errors.Is(err, contentService.ErrSiteNotFound) {
				return views.Notice(c, "This heritage site is not in the catalog.")
			}
			return fmt.Errorf("failed to get site: %w", err)
		}
		site = s
	}

	return h.show(c, h.states.Open(c.Sender().ID, site))
}

func (h *ARHandler) show(c telebot.Context, view model.ARView) error {
	instructions := h.contentService.MessageOr(context.Background(), model.ARInstructionsKey, "Point your camera at a flat surface.")
	text, markup := views.AR(view, instructions)
	return views.Show(c, text, markup)
}

// siteData id объекта из кнопки или из аргумента команды /ar
func (h *ARHandler) siteData(c telebot.Context) string {
	if cb := c.Callback(); cb != nil {
		return cb.Data
	}
	if msg := c.Message(); msg != nil {
		return msg.Payload
	}
	return ""
}

// GetHandlerFunc возвращает функцию-обработчик для telebot
func (h *ARHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
