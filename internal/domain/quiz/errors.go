package quiz

import "errors"

// Отказы движка. Ни один из них не меняет состояние сессии:
// интерфейс должен просто не давать повторно нажать кнопку.
var (
	ErrNoQuestions     = errors.New("quiz: no questions")
	ErrInvalidQuestion = errors.New("quiz: invalid question")
	ErrInvalidOption   = errors.New("quiz: option index out of range")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrNotAnswered     = errors.New("quiz: current question not answered yet")
	ErrCompleted       = errors.New("quiz: session already completed")
	ErrNotCompleted    = errors.New("quiz: session not completed")
	ErrStaleQuestion   = errors.New("quiz: answer for a question that is no longer current")
)
