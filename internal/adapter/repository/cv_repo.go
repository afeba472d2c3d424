package repository

import (
	"context"
	"encoding/json"
	"errors"

	"cv-builder/internal/domain"
	"cv-builder/pkg/apperror"
	"cv-builder/pkg/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

var psqlCV = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CVRepo stores each CV as one JSONB document keyed by (id, owner_id).
type CVRepo struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewCVRepo(pool *pgxpool.Pool, log logger.Logger) *CVRepo {
	return &CVRepo{pool: pool, logger: log}
}

func (r *CVRepo) Create(ctx context.Context, ownerID uuid.UUID, cv *domain.CV) error {
	doc, err := json.Marshal(cv)
	if err != nil {
		return apperror.NewInternal("failed to encode cv", err)
	}
	sql, args, err := insertCV(ownerID, cv, doc).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert cv query", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert cv", err)
	}
	return nil
}

func (r *CVRepo) Get(ctx context.Context, ownerID uuid.UUID, id string) (*domain.CV, error) {
	sql, args, err := selectCV(ownerID, id).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build get cv query", err)
	}
	var doc []byte
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("CV", id)
		}
		return nil, apperror.NewInternal("failed to query cv", err)
	}
	return decodeCV(doc)
}

func (r *CVRepo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.CV, error) {
	sql, args, err := listCVs(ownerID, limit, offset).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list cv query", err)
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query cvs", err)
	}
	defer rows.Close()

	out := []*domain.CV{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, apperror.NewInternal("failed to scan cv", err)
		}
		cv, err := decodeCV(doc)
		if err != nil {
			r.logger.Warn("skipping undecodable cv document", zap.Error(err))
			continue
		}
		out = append(out, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to iterate cvs", err)
	}
	return out, nil
}

func (r *CVRepo) Update(ctx context.Context, ownerID uuid.UUID, cv *domain.CV) error {
	doc, err := json.Marshal(cv)
	if err != nil {
		return apperror.NewInternal("failed to encode cv", err)
	}
	sql, args, err := updateCV(ownerID, cv, doc).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update cv query", err)
	}
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to update cv", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("CV", cv.ID)
	}
	return nil
}

func (r *CVRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	sql, args, err := deleteCV(ownerID, id).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete cv query", err)
	}
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to delete cv", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("CV", id)
	}
	return nil
}

func insertCV(ownerID uuid.UUID, cv *domain.CV, doc []byte) sq.InsertBuilder {
	return psqlCV.Insert("cvs").
		Columns("id", "owner_id", "title", "document", "created_at", "updated_at").
		Values(cv.ID, ownerID, cv.Title, doc, cv.LastUpdated.Time, cv.LastUpdated.Time)
}

func selectCV(ownerID uuid.UUID, id string) sq.SelectBuilder {
	return psqlCV.Select("document").
		From("cvs").
		Where(sq.Eq{"id": id, "owner_id": ownerID.String()})
}

func listCVs(ownerID uuid.UUID, limit, offset int) sq.SelectBuilder {
	return psqlCV.Select("document").
		From("cvs").
		Where(sq.Eq{"owner_id": ownerID.String()}).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

func updateCV(ownerID uuid.UUID, cv *domain.CV, doc []byte) sq.UpdateBuilder {
	return psqlCV.Update("cvs").
		Set("title", cv.Title).
		Set("document", doc).
		Set("updated_at", cv.LastUpdated.Time).
		Where(sq.Eq{"id": cv.ID, "owner_id": ownerID.String()})
}

func deleteCV(ownerID uuid.UUID, id string) sq.DeleteBuilder {
	return psqlCV.Delete("cvs").Where(sq.Eq{"id": id, "owner_id": ownerID.String()})
}

func decodeCV(doc []byte) (*domain.CV, error) {
	var cv domain.CV
	if err := json.Unmarshal(doc, &cv); err != nil {
		return nil, apperror.NewInternal("failed to decode cv document", err)
	}
	return cv.Normalized(), nil
}
