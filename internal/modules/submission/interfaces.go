package submission

import (
	"context"

	"assetpipe/internal/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error
	AddFile(ctx context.Context, f *domain.SubmissionFile) error
	ListByUser(ctx context.Context, userID string) ([]domain.Submission, error)
}
