package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/heritage/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository контент из таблиц PostgreSQL (см. migrations/001_content.sql)
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создает новый экземпляр PostgresRepository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetQuestions получает вопросы викторины в порядке position
func (r *PostgresRepository) GetQuestions(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, `
                SELECT id, COALESCE(site_id, 0), question_text, options, correct_option, explanation
                FROM questions
                ORDER BY position, id
        `)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.SiteID, &q.Text, &q.Options, &q.Correct, &q.Explanation); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return questions, nil
}

const siteColumns = `id, name, location, description, image, year_built, architect, significance, ar_available`

func scanSite(row pgx.Row) (model.HeritageSite, error) {
	var s model.HeritageSite
	err := row.Scan(&s.ID, &s.Name, &s.Location, &s.Description, &s.Image, &s.YearBuilt, &s.Architect, &s.Significance, &s.ARAvailable)
	return s, err
}

// GetSites получает каталог объектов наследия
func (r *PostgresRepository) GetSites(ctx context.Context) ([]model.HeritageSite, error) {
	rows, err := r.db.Query(ctx, "SELECT "+siteColumns+" FROM heritage_sites ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []model.HeritageSite
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in rows: %w", err)
	}

	return sites, nil
}

// GetSiteByID ищет объект по ID
func (r *PostgresRepository) GetSiteByID(ctx context.Context, id int) (*model.HeritageSite, error) {
	site, err := scanSite(r.db.QueryRow(ctx, "SELECT "+siteColumns+" FROM heritage_sites WHERE id=$1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Если объекта нет, возвращаем nil
		}
		return nil, fmt.Errorf("failed to get site by id: %w", err)
	}
	return &site, nil
}

// GetAchievements получает список достижений
func (r *PostgresRepository) GetAchievements(ctx context.Context) ([]model.Achievement, error) {
	rows, err := r.db.Query(ctx, "SELECT id, title, description, unlocked FROM achievements ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Unlocked); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// GetProfile получает единственную строку профиля
func (r *PostgresRepository) GetProfile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRow(ctx, `
                SELECT display_name, level, title,
                       sites_visited, quizzes_completed, ar_experiences, streak_days,
                       language, notifications, audio, offline_mode
                FROM profile
                LIMIT 1
        `).Scan(
		&p.DisplayName, &p.Level, &p.Title,
		&p.Stats.SitesVisited, &p.Stats.QuizzesCompleted, &p.Stats.ARExperiences, &p.Stats.StreakDays,
		&p.Preferences.Language, &p.Preferences.Notifications, &p.Preferences.Audio, &p.Preferences.OfflineMode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *PostgresRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	var messageText string
	err := r.db.QueryRow(ctx, "SELECT message_text FROM messages WHERE message_key=$1", messageKey).
		Scan(&messageText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("message with key %s not found", messageKey)
		}
		return "", fmt.Errorf("failed to get message: %w", err)
	}
	return messageText, nil
}
