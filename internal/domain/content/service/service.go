package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/domain/model"
)

// ErrSiteNotFound объект наследия с таким ID отсутствует в каталоге
var ErrSiteNotFound = errors.New("heritage site not found")

// Repository источник статического контента. Реализуется YAMLRepository и PostgresRepository
type Repository interface {
	GetQuestions(ctx context.Context) ([]model.Question, error)
	GetSites(ctx context.Context) ([]model.HeritageSite, error)
	GetSiteByID(ctx context.Context, id int) (*model.HeritageSite, error)
	GetAchievements(ctx context.Context) ([]model.Achievement, error)
	GetProfile(ctx context.Context) (*model.Profile, error)
	GetMessageByKey(ctx context.Context, messageKey string) (string, error)
}

// ContentService содержит логику для работы с контентом приложения
type ContentService struct {
	repo Repository
}

// NewContentService создает новый экземпляр ContentService
func NewContentService(repo Repository) *ContentService {
	return &ContentService{repo: repo}
}

// GetQuestions возвращает вопросы викторины в порядке прохождения
func (s *ContentService) GetQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.repo.GetQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

// GetSites возвращает каталог объектов наследия
func (s *ContentService) GetSites(ctx context.Context) ([]model.HeritageSite, error) {
	sites, err := s.repo.GetSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sites: %w", err)
	}
	return sites, nil
}

// GetSiteByID возвращает объект или ErrSiteNotFound
func (s *ContentService) GetSiteByID(ctx context.Context, id int) (*model.HeritageSite, error) {
	site, err := s.repo.GetSiteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get site %d: %w", id, err)
	}
	if site == nil {
		return nil, fmt.Errorf("site %d: %w", id, ErrSiteNotFound)
	}
	return site, nil
}

// GetProfile возвращает профиль вместе со списком достижений
func (s *ContentService) GetProfile(ctx context.Context) (*model.Profile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	achievements, err := s.repo.GetAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	profile.Achievements = achievements

	return profile, nil
}

// GetMessageByKey возвращает сообщение по ключу
func (s *ContentService) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	message, err := s.repo.GetMessageByKey(ctx, messageKey)
	if err != nil {
		return "", fmt.Errorf("failed to get message by key: %w", err)
	}
	return message, nil
}

// MessageOr возвращает сообщение по ключу, а при ошибке значение по умолчанию.
// Используется экранами, которые не должны падать из-за отсутствующего текста
func (s *ContentService) MessageOr(ctx context.Context, messageKey, fallback string) string {
	message, err := s.repo.GetMessageByKey(ctx, messageKey)
	if err != nil || message == "" {
		return fallback
	}
	return message
}

// UnlockedCount количество открытых достижений
func UnlockedCount(achievements []model.Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
