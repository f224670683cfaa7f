package upload

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/pkg/dbmetrics"
	"github.com/inkline/studio/pkg/psqlbuilder"
)

const tableUploads = "uploads"

// Repository репозиторий загруженных референсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет метаданные загрузки; ID генерируется вызывающей стороной
func (r *Repository) Create(ctx context.Context, u *domain.Upload) (*domain.Upload, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableUploads).
		Columns("id", "public_id", "url", "content_type", "size_bytes", "original_name").
		Values(u.ID, u.PublicID, u.URL, u.ContentType, u.SizeBytes, u.OriginalName).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// GetByID получает загрузку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "public_id", "url", "content_type", "size_bytes", "original_name", "created_at").
		From(tableUploads).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.Upload
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.PublicID, &u.URL, &u.ContentType, &u.SizeBytes, &u.OriginalName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan upload: %v", ErrExecQuery, err)
	}

	return &u, nil
}
