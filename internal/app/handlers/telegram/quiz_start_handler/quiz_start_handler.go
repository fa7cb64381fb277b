package quiz_start_handler

import (
	"context"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"gopkg.in/telebot.v4"
)

// QuizStartHandler начинает новую сессию викторины и показывает первый вопрос
type QuizStartHandler struct {
	quizService    *quizService.QuizService
	contentService *contentService.ContentService
}

// NewQuizStartHandler возвращает структуру обработчика
func NewQuizStartHandler(quizService *quizService.QuizService, contentService *contentService.ContentService) *QuizStartHandler {
	return &QuizStartHandler{
		quizService:    quizService,
		contentService: contentService,
	}
}

// Handle обрабатывает /quiz и кнопку quiz_start
func (h *QuizStartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	key := sessions.TelegramKey(c.Sender().ID)

	if _, err := h.quizService.Start(ctx, key); err != nil {
		return fmt.Errorf("failed to start quiz for user %d: %w", c.Sender().ID, err)
	}

	title := h.contentService.MessageOr(ctx, model.QuizTitleMessageKey, "Heritage Quiz")
	return views.ShowQuiz(c, title, h.quizService, key)
}

// GetHandlerFunc возвращает функцию-обработчик для telebot
func (h *QuizStartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
