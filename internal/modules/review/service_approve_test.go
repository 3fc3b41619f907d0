package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"assetpipe/internal/domain"

	"gorm.io/gorm"
)

type mockSubmissionRepo struct {
	sub        *domain.SubmissionWithFiles
	getErr     error
	updateRows int64
	updateErr  error

	updatedTo    domain.SubmissionStatus
	updatedBy    string
	updatedNotes string
	updateCalls  int
}

func (m *mockSubmissionRepo) GetWithFiles(ctx context.Context, id string) (*domain.SubmissionWithFiles, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.sub, nil
}

func (m *mockSubmissionRepo) ListPending(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error) {
	return nil, 0, nil
}

func (m *mockSubmissionRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.SubmissionStatus, reviewedBy string, notes string) (int64, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	m.updatedTo = to
	m.updatedBy = reviewedBy
	m.updatedNotes = notes
	return m.updateRows, nil
}

func (m *mockSubmissionRepo) CountPending(ctx context.Context) (int64, error) { return 0, nil }

type mockCompanyRepo struct {
	existing  *domain.Company
	createErr error
	created   *domain.Company
}

func (m *mockCompanyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	if m.existing != nil && m.existing.Slug == slug {
		return m.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = "company-1"
	m.created = c
	return nil
}

func (m *mockCompanyRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockLogoRepo struct {
	createErr error
	failOn    int // 1-based call ordinal to fail, 0 = use createErr for all
	calls     int
	created   []*domain.Logo
}

func (m *mockLogoRepo) Create(ctx context.Context, l *domain.Logo) error {
	m.calls++
	if m.failOn == m.calls || (m.failOn == 0 && m.createErr != nil) {
		if m.createErr != nil {
			return m.createErr
		}
		return errors.New("insert failed")
	}
	l.ID = fmt.Sprintf("logo-%d", m.calls)
	m.created = append(m.created, l)
	return nil
}

func (m *mockLogoRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeBucket struct {
	objects     map[string][]byte
	downloadErr map[string]error
	uploadErr   error
	removeErr   error
	removed     []string
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: map[string][]byte{}, downloadErr: map[string]error{}}
}

func (b *fakeBucket) Download(ctx context.Context, path string) ([]byte, error) {
	if err := b.downloadErr[path]; err != nil {
		return nil, err
	}
	data, ok := b.objects[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (b *fakeBucket) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if b.uploadErr != nil {
		return b.uploadErr
	}
	b.objects[path] = data
	return nil
}

func (b *fakeBucket) Remove(ctx context.Context, path string) error {
	b.removed = append(b.removed, path)
	if b.removeErr != nil {
		return b.removeErr
	}
	delete(b.objects, path)
	return nil
}

func pendingSubmission(files ...domain.SubmissionFile) *domain.SubmissionWithFiles {
	return &domain.SubmissionWithFiles{
		Submission: domain.Submission{
			ID:          "sub-1",
			UserID:      "user-1",
			CompanyName: "Acme, Inc.",
			Status:      domain.SubmissionPending,
		},
		Files: files,
	}
}

func stagedFile(id string, format domain.LogoFormat, variant domain.LogoVariant, mode domain.ColorMode) domain.SubmissionFile {
	return domain.SubmissionFile{
		ID:           id,
		SubmissionID: "sub-1",
		StoragePath:  "sub-1/" + id + "." + string(format),
		Format:       format,
		Variant:      variant,
		ColorMode:    mode,
	}
}

func TestApprove_AllFilesSucceed(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)
	f2 := stagedFile("f2", domain.FormatPNG, domain.VariantIcon, domain.ColorDark)

	subs := &mockSubmissionRepo{sub: pendingSubmission(f1, f2), updateRows: 1}
	companies := &mockCompanyRepo{}
	logos := &mockLogoRepo{}
	staging := newFakeBucket()
	staging.objects[f1.StoragePath] = []byte("<svg/>")
	staging.objects[f2.StoragePath] = []byte("png-bytes")
	production := newFakeBucket()

	svc := NewService(subs, companies, logos, staging, production)

	result, err := svc.Approve(ctx, "sub-1", "admin-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if result.CompanySlug != "acme-inc" {
		t.Fatalf("expected slug acme-inc, got %q", result.CompanySlug)
	}
	if result.ProcessedLogos != 2 || result.TotalFiles != 2 {
		t.Fatalf("expected 2/2 processed, got %d/%d", result.ProcessedLogos, result.TotalFiles)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if len(logos.created) != 2 {
		t.Fatalf("expected 2 logo records, got %d", len(logos.created))
	}
	if len(production.objects) != 2 {
		t.Fatalf("expected 2 production objects, got %d", len(production.objects))
	}
	for path := range production.objects {
		if !strings.HasPrefix(path, "acme-inc/") {
			t.Fatalf("production path %q not scoped under company slug", path)
		}
	}
	if subs.updatedTo != domain.SubmissionApproved {
		t.Fatalf("expected status approved, got %q", subs.updatedTo)
	}
	if subs.updatedBy != "admin-1" {
		t.Fatalf("expected reviewer admin-1, got %q", subs.updatedBy)
	}
	// staging objects are never deleted by approval
	if len(staging.removed) != 0 {
		t.Fatalf("staging objects were removed: %v", staging.removed)
	}
}

func TestApprove_PartialSuccessStillApproves(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)
	f2 := stagedFile("f2", domain.FormatPNG, domain.VariantIcon, domain.ColorDark)
	f3 := stagedFile("f3", domain.FormatPNG, domain.VariantWordmark, domain.ColorLight)

	subs := &mockSubmissionRepo{sub: pendingSubmission(f1, f2, f3), updateRows: 1}
	logos := &mockLogoRepo{}
	staging := newFakeBucket()
	staging.objects[f1.StoragePath] = []byte("<svg/>")
	staging.objects[f3.StoragePath] = []byte("png-bytes")
	staging.downloadErr[f2.StoragePath] = errors.New("connection reset")
	production := newFakeBucket()

	svc := NewService(subs, &mockCompanyRepo{}, logos, staging, production)

	result, err := svc.Approve(ctx, "sub-1", "admin-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if result.ProcessedLogos != 2 || result.TotalFiles != 3 {
		t.Fatalf("expected 2/3 processed, got %d/%d", result.ProcessedLogos, result.TotalFiles)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.HasPrefix(result.Warnings[0], "download failed:") {
		t.Fatalf("unexpected warning %q", result.Warnings[0])
	}
	if subs.updatedTo != domain.SubmissionApproved {
		t.Fatalf("partial success must still approve, status = %q", subs.updatedTo)
	}
	if len(logos.created) != 2 {
		t.Fatalf("expected 2 logo records, got %d", len(logos.created))
	}
}

func TestApprove_AllFilesFailKeepsPending(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)
	f2 := stagedFile("f2", domain.FormatPNG, domain.VariantIcon, domain.ColorDark)

	subs := &mockSubmissionRepo{sub: pendingSubmission(f1, f2), updateRows: 1}
	logos := &mockLogoRepo{}
	staging := newFakeBucket() // nothing staged: every download fails
	production := newFakeBucket()

	svc := NewService(subs, &mockCompanyRepo{}, logos, staging, production)

	_, err := svc.Approve(ctx, "sub-1", "admin-1")

	var totalFailure *TotalFailureError
	if !errors.As(err, &totalFailure) {
		t.Fatalf("expected TotalFailureError, got %v", err)
	}
	if len(totalFailure.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", totalFailure.Warnings)
	}
	if subs.updateCalls != 0 {
		t.Fatalf("status must not change on total failure, got %d update calls", subs.updateCalls)
	}
	if len(logos.created) != 0 {
		t.Fatalf("expected no logo records, got %d", len(logos.created))
	}
}

func TestApprove_ZeroFilesApproves(t *testing.T) {
	ctx := context.Background()

	subs := &mockSubmissionRepo{sub: pendingSubmission(), updateRows: 1}
	companies := &mockCompanyRepo{}

	svc := NewService(subs, companies, &mockLogoRepo{}, newFakeBucket(), newFakeBucket())

	result, err := svc.Approve(ctx, "sub-1", "admin-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.ProcessedLogos != 0 || result.TotalFiles != 0 {
		t.Fatalf("expected 0/0, got %d/%d", result.ProcessedLogos, result.TotalFiles)
	}
	if subs.updatedTo != domain.SubmissionApproved {
		t.Fatalf("expected status approved, got %q", subs.updatedTo)
	}
}

func TestApprove_NotPending(t *testing.T) {
	ctx := context.Background()

	for _, status := range []domain.SubmissionStatus{domain.SubmissionApproved, domain.SubmissionRejected} {
		sub := pendingSubmission()
		sub.Status = status
		subs := &mockSubmissionRepo{sub: sub}
		companies := &mockCompanyRepo{}
		logos := &mockLogoRepo{}

		svc := NewService(subs, companies, logos, newFakeBucket(), newFakeBucket())

		_, err := svc.Approve(ctx, "sub-1", "admin-1")
		if !errors.Is(err, ErrAlreadyProcessed) {
			t.Fatalf("status %s: expected ErrAlreadyProcessed, got %v", status, err)
		}
		if companies.created != nil || len(logos.created) != 0 || subs.updateCalls != 0 {
			t.Fatalf("status %s: precondition failure must not mutate anything", status)
		}
	}
}

func TestApprove_NotFound(t *testing.T) {
	subs := &mockSubmissionRepo{getErr: gorm.ErrRecordNotFound}
	svc := NewService(subs, &mockCompanyRepo{}, &mockLogoRepo{}, newFakeBucket(), newFakeBucket())

	_, err := svc.Approve(context.Background(), "missing", "admin-1")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestApprove_CompensatingDeleteOnRecordFailure(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)
	f2 := stagedFile("f2", domain.FormatPNG, domain.VariantIcon, domain.ColorDark)

	subs := &mockSubmissionRepo{sub: pendingSubmission(f1, f2), updateRows: 1}
	logos := &mockLogoRepo{failOn: 1} // first insert fails, second succeeds
	staging := newFakeBucket()
	staging.objects[f1.StoragePath] = []byte("<svg/>")
	staging.objects[f2.StoragePath] = []byte("png-bytes")
	production := newFakeBucket()

	svc := NewService(subs, &mockCompanyRepo{}, logos, staging, production)

	result, err := svc.Approve(ctx, "sub-1", "admin-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if result.ProcessedLogos != 1 {
		t.Fatalf("expected 1 processed, got %d", result.ProcessedLogos)
	}
	if len(result.Warnings) != 1 || !strings.HasPrefix(result.Warnings[0], "record creation failed:") {
		t.Fatalf("expected record creation warning, got %v", result.Warnings)
	}
	if len(production.removed) != 1 {
		t.Fatalf("expected 1 compensating delete, got %v", production.removed)
	}
	// the orphaned object must be gone, the surviving one kept
	if len(production.objects) != 1 {
		t.Fatalf("expected 1 production object after compensation, got %d", len(production.objects))
	}
}

func TestApprove_CompensatingDeleteFailureNotSurfaced(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)

	subs := &mockSubmissionRepo{sub: pendingSubmission(f1), updateRows: 1}
	logos := &mockLogoRepo{failOn: 1}
	staging := newFakeBucket()
	staging.objects[f1.StoragePath] = []byte("<svg/>")
	production := newFakeBucket()
	production.removeErr = errors.New("remove unavailable")

	svc := NewService(subs, &mockCompanyRepo{}, logos, staging, production)

	_, err := svc.Approve(ctx, "sub-1", "admin-1")

	// only the original insert failure shows up, as a total failure here
	var totalFailure *TotalFailureError
	if !errors.As(err, &totalFailure) {
		t.Fatalf("expected TotalFailureError, got %v", err)
	}
	if len(totalFailure.Warnings) != 1 || !strings.HasPrefix(totalFailure.Warnings[0], "record creation failed:") {
		t.Fatalf("expected only the record creation warning, got %v", totalFailure.Warnings)
	}
}

func TestApprove_ReusesExistingCompanyBySlug(t *testing.T) {
	ctx := context.Background()

	existing := &domain.Company{
		ID:     "company-0",
		Name:   "ACME Incorporated",
		Slug:   "acme-inc",
		Domain: "acme.example",
	}

	sub := pendingSubmission()
	sub.CompanyName = "Acme, Inc."
	sub.CompanyDomain = "other.example"
	subs := &mockSubmissionRepo{sub: sub, updateRows: 1}
	companies := &mockCompanyRepo{existing: existing}

	svc := NewService(subs, companies, &mockLogoRepo{}, newFakeBucket(), newFakeBucket())

	result, err := svc.Approve(ctx, "sub-1", "admin-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.CompanyID != "company-0" {
		t.Fatalf("expected existing company reused, got %q", result.CompanyID)
	}
	if companies.created != nil {
		t.Fatalf("a duplicate company was created: %+v", companies.created)
	}
	// first submission wins: the match is returned untouched
	if existing.Domain != "acme.example" || existing.Name != "ACME Incorporated" {
		t.Fatalf("existing company was mutated: %+v", existing)
	}
}

func TestApprove_CompanyCreateFailureIsFatal(t *testing.T) {
	ctx := context.Background()

	f1 := stagedFile("f1", domain.FormatSVG, domain.VariantPrimary, domain.ColorLight)
	subs := &mockSubmissionRepo{sub: pendingSubmission(f1), updateRows: 1}
	companies := &mockCompanyRepo{createErr: errors.New("insert failed")}
	logos := &mockLogoRepo{}
	staging := newFakeBucket()
	staging.objects[f1.StoragePath] = []byte("<svg/>")

	svc := NewService(subs, companies, logos, staging, newFakeBucket())

	_, err := svc.Approve(ctx, "sub-1", "admin-1")
	if !errors.Is(err, ErrCompanyCreate) {
		t.Fatalf("expected ErrCompanyCreate, got %v", err)
	}
	if len(logos.created) != 0 || subs.updateCalls != 0 {
		t.Fatalf("company failure must abort before migration")
	}
}

func TestApprove_ConditionalUpdateLosesRace(t *testing.T) {
	ctx := context.Background()

	subs := &mockSubmissionRepo{sub: pendingSubmission(), updateRows: 0}
	svc := NewService(subs, &mockCompanyRepo{}, &mockLogoRepo{}, newFakeBucket(), newFakeBucket())

	_, err := svc.Approve(ctx, "sub-1", "admin-1")
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed when 0 rows update, got %v", err)
	}
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	subs := &mockSubmissionRepo{sub: pendingSubmission(), updateRows: 1}
	svc := NewService(subs, &mockCompanyRepo{}, &mockLogoRepo{}, newFakeBucket(), newFakeBucket())

	if err := svc.Reject(ctx, "sub-1", "admin-1", "low quality scan"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if subs.updatedTo != domain.SubmissionRejected {
		t.Fatalf("expected status rejected, got %q", subs.updatedTo)
	}
	if subs.updatedNotes != "low quality scan" {
		t.Fatalf("expected notes stored, got %q", subs.updatedNotes)
	}

	if err := svc.Reject(ctx, "sub-1", "admin-1", "   "); !errors.Is(err, ErrNotesRequired) {
		t.Fatalf("expected ErrNotesRequired, got %v", err)
	}
}
