package api_errors

import (
	"errors"
	"net/http"

	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
)

// Status HTTP-статус для ошибки домена
func Status(err error) int {
	switch {
	case errors.Is(err, quizService.ErrSessionNotFound), errors.Is(err, contentService.ErrSiteNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrCompleted),
		errors.Is(err, quiz.ErrNotAnswered),
		errors.Is(err, quiz.ErrNotCompleted),
		errors.Is(err, quiz.ErrStaleQuestion):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write отправляет ошибку с подходящим статусом
func Write(w http.ResponseWriter, err error) {
	httpError.ErrorResponse(w, Status(err), err.Error())
}
