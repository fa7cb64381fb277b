package repository

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/IT-Nick/heritage/internal/domain/quiz"
	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var embeddedContent []byte

// Document структура YAML-файла с контентом приложения
type Document struct {
	Messages     map[string]string    `yaml:"messages"`
	Questions    []model.Question     `yaml:"questions"`
	Sites        []model.HeritageSite `yaml:"sites"`
	Profile      model.Profile        `yaml:"profile"`
	Achievements []model.Achievement  `yaml:"achievements"`
}

// YAMLRepository отдает контент, загруженный из YAML один раз при старте
type YAMLRepository struct {
	doc Document
}

// NewEmbeddedRepository контент, вшитый в бинарник
func NewEmbeddedRepository() (*YAMLRepository, error) {
	return ParseYAML(embeddedContent)
}

// NewFileRepository контент из внешнего файла той же структуры
func NewFileRepository(path string) (*YAMLRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML разбирает и проверяет документ с контентом
func ParseYAML(data []byte) (*YAMLRepository, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return &YAMLRepository{doc: doc}, nil
}

func validate(doc Document) error {
	if len(doc.Questions) == 0 {
		return fmt.Errorf("content has no questions")
	}
	questionIDs := make(map[int]bool)
	for i, q := range doc.Questions {
		if err := quiz.ValidateQuestion(q); err != nil {
			return fmt.Errorf("question #%d: %w", i+1, err)
		}
		if questionIDs[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		questionIDs[q.ID] = true
	}

	siteIDs := make(map[int]bool)
	for _, s := range doc.Sites {
		if siteIDs[s.ID] {
			return fmt.Errorf("duplicate site id %d", s.ID)
		}
		siteIDs[s.ID] = true
	}
	return nil
}

func (r *YAMLRepository) GetQuestions(ctx context.Context) ([]model.Question, error) {
	out := make([]model.Question, len(r.doc.Questions))
	for i, q := range r.doc.Questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, nil
}

func (r *YAMLRepository) GetSites(ctx context.Context) ([]model.HeritageSite, error) {
	return append([]model.HeritageSite(nil), r.doc.Sites...), nil
}

// GetSiteByID возвращает nil без ошибки, если объекта нет
func (r *YAMLRepository) GetSiteByID(ctx context.Context, id int) (*model.HeritageSite, error) {
	for _, s := range r.doc.Sites {
		if s.ID == id {
			site := s
			return &site, nil
		}
	}
	return nil, nil
}

func (r *YAMLRepository) GetAchievements(ctx context.Context) ([]model.Achievement, error) {
	return append([]model.Achievement(nil), r.doc.Achievements...), nil
}

func (r *YAMLRepository) GetProfile(ctx context.Context) (*model.Profile, error) {
	p := r.doc.Profile
	return &p, nil
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *YAMLRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	text, ok := r.doc.Messages[messageKey]
	if !ok {
		return "", fmt.Errorf("message with key %s not found", messageKey)
	}
	return text, nil
}
