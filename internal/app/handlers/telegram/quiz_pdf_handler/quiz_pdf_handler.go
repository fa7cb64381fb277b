package quiz_pdf_handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/views"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"github.com/IT-Nick/heritage/report"
	"gopkg.in/telebot.v4"
)

// QuizPDFHandler отправляет итоги викторины PDF-документом
type QuizPDFHandler struct {
	quizService    *quizService.QuizService
	contentService *contentService.ContentService
}

func NewQuizPDFHandler(quizService *quizService.QuizService, contentService *contentService.ContentService) *QuizPDFHandler {
	return &QuizPDFHandler{
		quizService:    quizService,
		contentService: contentService,
	}
}

func (h *QuizPDFHandler) Handle(c telebot.Context) error {
	key := sessions.TelegramKey(c.Sender().ID)

	result, err := h.quizService.BuildReport(key)
	if err != nil {
		switch {
		case errors.Is(err, quizService.ErrSessionNotFound):
			return views.Notice(c, views.SessionExpiredNotice)
		case errors.Is(err, quiz.ErrNotCompleted):
			return views.Notice(c, views.FinishQuizNotice)
		default:
			return fmt.Errorf("failed to build report: %w", err)
		}
	}

	title := h.contentService.MessageOr(context.Background(), model.QuizTitleMessageKey, "Heritage Quiz")

	var buf bytes.Buffer
	if err := report.WriteQuizPDF(&buf, title, result); err != nil {
		return err
	}

	return c.Send(&telebot.Document{
		File:     telebot.FromReader(&buf),
		FileName: report.Filename(fmt.Sprint(c.Sender().ID)),
		MIME:     "application/pdf",
		Caption:  fmt.Sprintf("%s: %d/%d", title, result.Score, result.Total),
	})
}

func (h *QuizPDFHandler) GetHandlerFunc() telebot.HandlerFunc {
	return h.Handle
}
