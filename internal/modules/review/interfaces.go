package review

import (
	"context"

	"assetpipe/internal/domain"
)

type SubmissionRepository interface {
	GetWithFiles(ctx context.Context, id string) (*domain.SubmissionWithFiles, error)
	ListPending(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error)
	UpdateStatusIf(ctx context.Context, id string, from, to domain.SubmissionStatus, reviewedBy string, notes string) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type CompanyRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) error
	Count(ctx context.Context) (int64, error)
}

type LogoRepository interface {
	Create(ctx context.Context, l *domain.Logo) error
	Count(ctx context.Context) (int64, error)
}
