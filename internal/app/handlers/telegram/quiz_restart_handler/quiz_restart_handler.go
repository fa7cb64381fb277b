package quiz_restart_handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"gopkg.in/telebot.v4"
)

// QuizRestartHandler кнопка "Try Again". Если сессия уже вычищена, начинает новую
type QuizRestartHandler struct {
	quizService    *quizService.QuizService
	contentService *contentService.ContentService
}

func NewQuizRestartHandler(quizService *quizService.QuizService, contentService *contentService.ContentService) *QuizRestartHandler {
	return &QuizRestartHandler{
		quizService:    quizService,
		contentService: contentService,
	}
}

func (h *QuizRestartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	key := sessions.TelegramKey(c.Sender().ID)

	err := h.quizService.Reset(key)
	if errors.Is(err, quizService.ErrSessionNotFound) {
		_, err = h.quizService.Start(ctx, key)
	}
	if err != nil {
		return fmt.Errorf("failed to restart quiz: %w", err)
	}

	title := h.contentService.MessageOr(ctx, model.QuizTitleMessageKey, "Heritage Quiz")
	return views.ShowQuiz(c, title, h.quizService, key)
}

func (h *QuizRestartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
