package review

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"assetpipe/internal/domain"
	"assetpipe/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service runs the submission review pipeline: approval (company
// resolution, per-file migration from the staging bucket to the production
// bucket, status finalization) and rejection.
type Service struct {
	submissions SubmissionRepository
	companies   CompanyRepository
	logos       LogoRepository
	staging     storage.Bucket
	production  storage.Bucket
}

func NewService(
	submissions SubmissionRepository,
	companies CompanyRepository,
	logos LogoRepository,
	staging storage.Bucket,
	production storage.Bucket,
) *Service {
	return &Service{
		submissions: submissions,
		companies:   companies,
		logos:       logos,
		staging:     staging,
		production:  production,
	}
}

// Approve publishes a pending submission. Files are migrated one at a time;
// a file's failure is recorded as a warning and never aborts the rest of
// the batch. The submission is approved as long as at least one file made
// it (or it had none); only a clean sweep of failures leaves it pending.
func (s *Service) Approve(ctx context.Context, submissionID, reviewerID string) (*ApprovalResult, error) {
	sub, err := s.submissions.GetWithFiles(ctx, submissionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	if sub.Status != domain.SubmissionPending {
		return nil, ErrAlreadyProcessed
	}

	company, err := s.resolveCompany(ctx, sub.CompanyName, sub.CompanyDomain)
	if err != nil {
		return nil, err
	}

	var processed, warnings []string
	for _, f := range sub.Files {
		newPath, err := s.migrateFile(ctx, company, f)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		processed = append(processed, newPath)
	}

	if len(sub.Files) > 0 && len(processed) == 0 {
		log.Printf("approval failed submission_id=%s: all %d files failed", sub.ID, len(sub.Files))
		return nil, &TotalFailureError{Warnings: warnings}
	}

	rows, err := s.submissions.UpdateStatusIf(ctx, sub.ID,
		domain.SubmissionPending, domain.SubmissionApproved, reviewerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}
	if rows == 0 {
		// lost a race with another reviewer after migration already ran;
		// the created logos are kept
		return nil, ErrAlreadyProcessed
	}

	return &ApprovalResult{
		CompanyID:      company.ID,
		CompanySlug:    company.Slug,
		ProcessedLogos: len(processed),
		TotalFiles:     len(sub.Files),
		Warnings:       warnings,
	}, nil
}

// resolveCompany finds the company matching the derived slug or creates it.
// An existing company wins as-is: name and domain from later submissions
// are not applied.
func (s *Service) resolveCompany(ctx context.Context, name, companyDomain string) (*domain.Company, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrInvalidCompanyName
	}

	company, err := s.companies.GetBySlug(ctx, slug)
	if err == nil {
		return company, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}

	company = &domain.Company{
		Name:   name,
		Slug:   slug,
		Domain: companyDomain,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if isUniqueViolation(err) {
			// another approval created the slug first; reuse its row
			return s.companies.GetBySlug(ctx, slug)
		}
		return nil, fmt.Errorf("%w: %v", ErrCompanyCreate, err)
	}
	return company, nil
}

// migrateFile moves one staged file into the production bucket and records
// the Logo row. The returned error doubles as the user-visible warning, so
// messages stay short and name the failed step.
func (s *Service) migrateFile(ctx context.Context, company *domain.Company, f domain.SubmissionFile) (string, error) {
	data, err := s.staging.Download(ctx, f.StoragePath)
	if err != nil {
		return "", fmt.Errorf("download failed: %v", err)
	}

	token := strconv.FormatInt(time.Now().UnixNano(), 36)
	newPath := fmt.Sprintf("%s/%s-%s-%s.%s", company.Slug, f.Variant, f.ColorMode, token, f.Format)

	contentType := "image/png"
	if f.Format == domain.FormatSVG {
		contentType = "image/svg+xml"
	}

	if err := s.production.Upload(ctx, newPath, data, contentType); err != nil {
		return "", fmt.Errorf("upload failed: %v", err)
	}

	logo := &domain.Logo{
		CompanyID:   company.ID,
		Format:      f.Format,
		Variant:     f.Variant,
		ColorMode:   f.ColorMode,
		StoragePath: newPath,
		FileSize:    int64(len(data)),
	}
	if err := s.logos.Create(ctx, logo); err != nil {
		// the object is already visible; undo it best-effort
		if rmErr := s.production.Remove(ctx, newPath); rmErr != nil {
			log.Printf("compensating delete failed path=%s err=%v", newPath, rmErr)
		}
		return "", fmt.Errorf("record creation failed: %v", err)
	}

	return newPath, nil
}

// Reject marks a pending submission rejected, keeping the reviewer's notes.
// Staged files stay in place so the submitter's history is preserved.
func (s *Service) Reject(ctx context.Context, submissionID, reviewerID, notes string) error {
	if strings.TrimSpace(notes) == "" {
		return ErrNotesRequired
	}

	sub, err := s.submissions.GetWithFiles(ctx, submissionID)
	if err != nil {
		if isNotFound(err) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if sub.Status != domain.SubmissionPending {
		return ErrAlreadyProcessed
	}

	rows, err := s.submissions.UpdateStatusIf(ctx, sub.ID,
		domain.SubmissionPending, domain.SubmissionRejected, reviewerID, notes)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

// ListPending returns the review queue, oldest first.
func (s *Service) ListPending(ctx context.Context, page, limit int) ([]domain.Submission, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	return s.submissions.ListPending(ctx, offset, limit)
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	companies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, err
	}
	logos, err := s.logos.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.submissions.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalCompanies:     companies,
		TotalLogos:         logos,
		PendingSubmissions: pending,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
