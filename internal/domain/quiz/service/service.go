package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/domain/dto"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"github.com/google/uuid"
)

// ErrSessionNotFound сессии нет: не начиналась или вычищена по простою
var ErrSessionNotFound = errors.New("quiz session not found")

// QuestionSource откуда берутся вопросы для новой сессии
type QuestionSource interface {
	GetQuestions(ctx context.Context) ([]model.Question, error)
}

// QuizService связывает хранилище сессий с вопросами из контента
type QuizService struct {
	questions QuestionSource
	store     *sessions.Store
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(questions QuestionSource, store *sessions.Store) *QuizService {
	return &QuizService{
		questions: questions,
		store:     store,
	}
}

// Start начинает новую сессию под ключом key. Существующая сессия заменяется
func (s *QuizService) Start(ctx context.Context, key string) (*quiz.Engine, error) {
	questions, err := s.questions.GetQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	engine, err := quiz.NewEngine(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz session: %w", err)
	}

	s.store.Put(key, engine)
	return engine, nil
}

// StartAnonymous начинает сессию под новым UUID (для HTTP-клиентов)
func (s *QuizService) StartAnonymous(ctx context.Context) (string, *quiz.Engine, error) {
	key := uuid.NewString()
	engine, err := s.Start(ctx, key)
	if err != nil {
		return "", nil, err
	}
	return key, engine, nil
}

// Get возвращает сессию или ErrSessionNotFound
func (s *QuizService) Get(key string) (*quiz.Engine, error) {
	engine, ok := s.store.Get(key)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return engine, nil
}

// Submit отвечает на текущий вопрос
func (s *QuizService) Submit(key string, option int) (model.AnswerRecord, error) {
	engine, err := s.Get(key)
	if err != nil {
		return model.AnswerRecord{}, err
	}
	return engine.SubmitAnswer(option)
}

// SubmitAt отвечает на вопрос с индексом index, если он все еще текущий
func (s *QuizService) SubmitAt(key string, index, option int) (model.AnswerRecord, error) {
	engine, err := s.Get(key)
	if err != nil {
		return model.AnswerRecord{}, err
	}
	return engine.SubmitAnswerAt(index, option)
}

// Advance переходит к следующему вопросу или к итогам
func (s *QuizService) Advance(key string) error {
	engine, err := s.Get(key)
	if err != nil {
		return err
	}
	return engine.Advance()
}

// Reset начинает ту же викторину заново
func (s *QuizService) Reset(key string) error {
	engine, err := s.Get(key)
	if err != nil {
		return err
	}
	engine.Reset()
	return nil
}

func (s *QuizService) Report(key string) (quiz.Report, error) {
	engine, err := s.Get(key)
	if err != nil {
		return quiz.Report{}, err
	}
	return engine.Report()
}

// Discard удаляет сессию
func (s *QuizService) Discard(key string) {
	s.store.Delete(key)
}

// State текущее состояние сессии в виде DTO
func (s *QuizService) State(key string) (dto.QuizState, error) {
	engine, err := s.Get(key)
	if err != nil {
		return dto.QuizState{}, err
	}
	return StateOf(engine.Snapshot()), nil
}

// BuildReport итог сессии в виде DTO
func (s *QuizService) BuildReport(key string) (dto.QuizReport, error) {
	report, err := s.Report(key)
	if err != nil {
		return dto.QuizReport{}, err
	}
	return ReportOf(report), nil
}

// StateOf переводит снимок движка в DTO. Правильный ответ раскрывается только после ответа
func StateOf(snap quiz.Snapshot) dto.QuizState {
	state := dto.QuizState{
		Index:     snap.Index,
		Total:     snap.Total,
		Answered:  snap.Answered,
		Score:     snap.Score,
		Locked:    snap.Locked,
		Completed: snap.Completed,
	}

	if !snap.Completed {
		state.Question = &dto.QuestionView{
			ID:      snap.Question.ID,
			Number:  snap.Index + 1,
			Text:    snap.Question.Text,
			Options: snap.Question.Options,
		}
	}

	if snap.Last != nil {
		state.Feedback = &dto.Feedback{
			Selected:    snap.Last.Selected,
			Correct:     snap.Last.Correct,
			IsCorrect:   snap.Last.IsCorrect,
			Explanation: snap.Question.Explanation,
		}
	}

	return state
}

// ReportOf переводит итог движка в DTO
func ReportOf(report quiz.Report) dto.QuizReport {
	out := dto.QuizReport{
		Score:      report.Score,
		Total:      report.Total,
		Percentage: report.Percentage,
		Band: dto.BandInfo{
			Name:    report.Band.Name,
			Message: report.Band.Message,
			Emoji:   report.Band.Emoji,
			Color:   report.Band.Color,
		},
		Review: make([]dto.ReviewItem, len(report.Items)),
	}

	for i, item := range report.Items {
		out.Review[i] = dto.ReviewItem{
			Number:         i + 1,
			Question:       item.Question.Text,
			SelectedOption: item.Question.Option(item.Answer.Selected),
			CorrectOption:  item.Question.CorrectOption(),
			IsCorrect:      item.Answer.IsCorrect,
			Explanation:    item.Question.Explanation,
		}
	}

	return out
}
