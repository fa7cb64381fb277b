package quiz_answer_handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"gopkg.in/telebot.v4"
)

type QuizAnswerHandler struct {
	quizService    *quizService.QuizService
	contentService *contentService.ContentService
}

func NewQuizAnswerHandler(quizService *quizService.QuizService, contentService *contentService.ContentService) *QuizAnswerHandler {
	return &QuizAnswerHandler{
		quizService:    quizService,
		contentService: contentService,
	}
}

// ParseAnswerData разбирает данные кнопки ответа: "<индекс вопроса>|<вариант>"
func ParseAnswerData(data string) (questionIndex, option int, err error) {
	parts := strings.Split(strings.TrimSpace(data), "|")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid answer data: %q", data)
	}

	questionIndex, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid question index: %w", err)
	}
	option, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid option index: %w", err)
	}
	return questionIndex, option, nil
}

// Handle принимает ответ. Повторные и устаревшие нажатия получают уведомление, состояние не меняется
func (h *QuizAnswerHandler) Handle(c telebot.Context) error {
	questionIndex, option, err := ParseAnswerData(c.Callback().Data)
	if err != nil {
		return err
	}

	key := sessions.TelegramKey(c.Sender().ID)
	_, err = h.quizService.SubmitAt(key, questionIndex, option)
	switch {
	case err == nil:
	case errors.Is(err, quizService.ErrSessionNotFound):
		return views.Notice(c, views.SessionExpiredNotice)
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		return views.Notice(c, views.AlreadyAnsweredNotice)
	case errors.Is(err, quiz.ErrStaleQuestion), errors.Is(err, quiz.ErrCompleted):
		return views.Notice(c, views.StaleQuestionNotice)
	case errors.Is(err, quiz.ErrInvalidOption):
		return views.Notice(c, "Unknown answer option.")
	default:
		return fmt.Errorf("failed to submit answer: %w", err)
	}

	title := h.contentService.MessageOr(context.Background(), model.QuizTitleMessageKey, "Heritage Quiz")
	return views.ShowQuiz(c, title, h.quizService, key)
}

func (h *QuizAnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
