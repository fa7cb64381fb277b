package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/heritage/internal/domain/content/repository"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDatabase устанавливает подключение к базе данных
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// InitContent выбирает источник контента. Пул БД возвращается только для source == postgres
func InitContent(ctx context.Context, cfg *config.Config) (contentService.Repository, *pgxpool.Pool, error) {
	const op = "app.InitContent"

	switch cfg.Content.Source {
	case config.ContentPostgres:
		db, err := InitDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepository(db), db, nil
	case config.ContentFile:
		repo, err := repository.NewFileRepository(cfg.Content.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Printf("Content loaded from %s", cfg.Content.Path)
		return repo, nil, nil
	default:
		repo, err := repository.NewEmbeddedRepository()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return repo, nil, nil
	}
}
