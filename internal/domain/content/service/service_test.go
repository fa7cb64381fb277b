package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IT-Nick/heritage/internal/domain/model"
)

type fakeRepo struct {
	sites        []model.HeritageSite
	achievements []model.Achievement
	messages     map[string]string
	profileErr   error
}

func (f *fakeRepo) GetQuestions(ctx context.Context) ([]model.Question, error) {
	return nil, nil
}

func (f *fakeRepo) GetSites(ctx context.Context) ([]model.HeritageSite, error) {
	return f.sites, nil
}

func (f *fakeRepo) GetSiteByID(ctx context.Context, id int) (*model.HeritageSite, error) {
	for _, s := range f.sites {
		if s.ID == id {
			site := s
			return &site, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetAchievements(ctx context.Context) ([]model.Achievement, error) {
	return f.achievements, nil
}

func (f *fakeRepo) GetProfile(ctx context.Context) (*model.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &model.Profile{DisplayName: "Heritage Explorer", Level: 2}, nil
}

func (f *fakeRepo) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	text, ok := f.messages[messageKey]
	if !ok {
		return "", errors.New("not found")
	}
	return text, nil
}

func TestGetSiteByID_NotFound(t *testing.T) {
	svc := NewContentService(&fakeRepo{sites: []model.HeritageSite{{ID: 1, Name: "Taj Mahal"}}})

	site, err := svc.GetSiteByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if site.Name != "Taj Mahal" {
		t.Errorf("ожидался Taj Mahal, получено %q", site.Name)
	}

	_, err = svc.GetSiteByID(context.Background(), 42)
	if !errors.Is(err, ErrSiteNotFound) {
		t.Errorf("ожидалась ErrSiteNotFound, получено %v", err)
	}
}

func TestGetProfile_FillsAchievements(t *testing.T) {
	repo := &fakeRepo{achievements: []model.Achievement{
		{ID: 1, Title: "First Visit", Unlocked: true},
		{ID: 2, Title: "AR Explorer"},
	}}
	svc := NewContentService(repo)

	profile, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(profile.Achievements) != 2 {
		t.Fatalf("ожидалось 2 достижения, получено %d", len(profile.Achievements))
	}
	if got := UnlockedCount(profile.Achievements); got != 1 {
		t.Errorf("ожидалось 1 открытое достижение, получено %d", got)
	}
}

func TestGetProfile_Error(t *testing.T) {
	boom := errors.New("boom")
	svc := NewContentService(&fakeRepo{profileErr: boom})

	if _, err := svc.GetProfile(context.Background()); !errors.Is(err, boom) {
		t.Errorf("ожидалась обернутая ошибка репозитория, получено %v", err)
	}
}

func TestMessageOr(t *testing.T) {
	svc := NewContentService(&fakeRepo{messages: map[string]string{model.QuizTitleMessageKey: "Heritage Quiz"}})

	if got := svc.MessageOr(context.Background(), model.QuizTitleMessageKey, "x"); got != "Heritage Quiz" {
		t.Errorf("ожидалось Heritage Quiz, получено %q", got)
	}
	if got := svc.MessageOr(context.Background(), "missing", "fallback"); got != "fallback" {
		t.Errorf("ожидалось fallback, получено %q", got)
	}
}
