package views

import (
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/domain/dto"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// Тексты уведомлений викторины
const (
	SessionExpiredNotice  = "Your quiz session has expired. Tap Quiz to start again."
	AlreadyAnsweredNotice = "You've already answered this question."
	StaleQuestionNotice   = "This question is no longer active."
	ChooseAnswerNotice    = "Choose an answer first."
	FinishQuizNotice      = "Finish the quiz to get a report."
)

// QuizReader то, что нужно экрану викторины от QuizService
type QuizReader interface {
	State(key string) (dto.QuizState, error)
	BuildReport(key string) (dto.QuizReport, error)
}

// ShowQuiz показывает текущий вопрос или, если сессия завершена, итоги
func ShowQuiz(c telebot.Context, title string, quiz QuizReader, key string) error {
	state, err := quiz.State(key)
	if err != nil {
		if errors.Is(err, quizService.ErrSessionNotFound) {
			return Notice(c, SessionExpiredNotice)
		}
		return fmt.Errorf("failed to get quiz state: %w", err)
	}

	if !state.Completed {
		text, markup := Question(title, state)
		return Show(c, text, markup)
	}

	report, err := quiz.BuildReport(key)
	if err != nil {
		return fmt.Errorf("failed to build quiz report: %w", err)
	}
	text, markup := Results(report)
	return Show(c, text, markup)
}
