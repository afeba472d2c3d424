package usecase

import (
	"context"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/pkg/apperror"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CVService is the owner-scoped CRUD surface over stored CVs.
type CVService struct {
	repo     domain.CVRepository
	exporter *Exporter
	now      func() time.Time
}

func NewCVService(repo domain.CVRepository, exporter *Exporter) *CVService {
	return &CVService{repo: repo, exporter: exporter, now: time.Now}
}

func (s *CVService) Create(ctx context.Context, owner uuid.UUID, cv *domain.CV) (*domain.CV, error) {
	if cv == nil {
		return nil, apperror.NewInvalidInput("CV data is required", "", nil)
	}
	out := cv.Normalized()
	out.ID = uuid.NewString()
	out.LastUpdated = domain.NewTimestamp(s.now())
	if err := s.repo.Create(ctx, owner, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CVService) Get(ctx context.Context, owner uuid.UUID, id string) (*domain.CV, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewNotFound("CV", id)
	}
	return s.repo.Get(ctx, owner, id)
}

func (s *CVService) List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]*domain.CV, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, owner, limit, offset)
}

// Update replaces the stored CV. The id in the path wins over any id in the
// body.
func (s *CVService) Update(ctx context.Context, owner uuid.UUID, id string, cv *domain.CV) (*domain.CV, error) {
	if cv == nil {
		return nil, apperror.NewInvalidInput("CV data is required", "", nil)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewNotFound("CV", id)
	}
	out := cv.Normalized()
	out.ID = id
	out.LastUpdated = domain.NewTimestamp(s.now())
	if err := s.repo.Update(ctx, owner, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CVService) Delete(ctx context.Context, owner uuid.UUID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewNotFound("CV", id)
	}
	return s.repo.Delete(ctx, owner, id)
}

// Export renders a stored CV.
func (s *CVService) Export(ctx context.Context, owner uuid.UUID, id, layout string, opts *domain.PrintOptions) (*ExportResult, error) {
	cv, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ctx, ExportRequest{CV: cv, Layout: layout, Options: opts})
}
