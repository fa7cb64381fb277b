package quiz_next_handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"gopkg.in/telebot.v4"
)

// QuizNextHandler кнопка "Next Question" / "View Results"
type QuizNextHandler struct {
	quizService    *quizService.QuizService
	contentService *contentService.ContentService
}

func NewQuizNextHandler(quizService *quizService.QuizService, contentService *contentService.ContentService) *QuizNextHandler {
	return &QuizNextHandler{
		quizService:    quizService,
		contentService: contentService,
	}
}

func (h *QuizNextHandler) Handle(c telebot.Context) error {
	key := sessions.TelegramKey(c.Sender().ID)

	if err := h.quizService.Advance(key); err != nil {
		switch {
		case errors.Is(err, quizService.ErrSessionNotFound):
			return views.Notice(c, views.SessionExpiredNotice)
		case errors.Is(err, quiz.ErrNotAnswered):
			return views.Notice(c, views.ChooseAnswerNotice)
		default:
			return fmt.Errorf("failed to advance quiz: %w", err)
		}
	}

	title := h.contentService.MessageOr(context.Background(), model.QuizTitleMessageKey, "Heritage Quiz")
	return views.ShowQuiz(c, title, h.quizService, key)
}

func (h *QuizNextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
