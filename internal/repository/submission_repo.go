package repository

import (
	"context"
	"time"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

type submissionModel struct {
	ID            string     `gorm:"column:id;primaryKey"`
	UserID        string     `gorm:"column:user_id;index"`
	CompanyName   string     `gorm:"column:company_name"`
	CompanyDomain *string    `gorm:"column:company_domain"`
	Status        string     `gorm:"column:status;index"`
	AdminNotes    *string    `gorm:"column:admin_notes"`
	ReviewedBy    *string    `gorm:"column:reviewed_by"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (submissionModel) TableName() string { return "submissions" }

type submissionFileModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	SubmissionID string    `gorm:"column:submission_id;index"`
	StoragePath  string    `gorm:"column:storage_path"`
	Format       string    `gorm:"column:format"`
	Variant      string    `gorm:"column:variant"`
	ColorMode    string    `gorm:"column:color_mode"`
	FileSize     int64     `gorm:"column:file_size"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (submissionFileModel) TableName() string { return "submission_files" }

func toDomainSubmission(m submissionModel) domain.Submission {
	s := domain.Submission{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		Status:      domain.SubmissionStatus(m.Status),
		ReviewedBy:  m.ReviewedBy,
		ReviewedAt:  m.ReviewedAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.CompanyDomain != nil {
		s.CompanyDomain = *m.CompanyDomain
	}
	if m.AdminNotes != nil {
		s.AdminNotes = *m.AdminNotes
	}
	return s
}

func toDomainSubmissionFile(m submissionFileModel) domain.SubmissionFile {
	return domain.SubmissionFile{
		ID:           m.ID,
		SubmissionID: m.SubmissionID,
		StoragePath:  m.StoragePath,
		Format:       domain.LogoFormat(m.Format),
		Variant:      domain.LogoVariant(m.Variant),
		ColorMode:    domain.ColorMode(m.ColorMode),
		FileSize:     m.FileSize,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = domain.SubmissionPending
	}
	s.CreatedAt = time.Now()

	m := submissionModel{
		ID:          s.ID,
		UserID:      s.UserID,
		CompanyName: s.CompanyName,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
	if s.CompanyDomain != "" {
		m.CompanyDomain = &s.CompanyDomain
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *SubmissionRepository) AddFile(ctx context.Context, f *domain.SubmissionFile) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now()

	m := submissionFileModel{
		ID:           f.ID,
		SubmissionID: f.SubmissionID,
		StoragePath:  f.StoragePath,
		Format:       string(f.Format),
		Variant:      string(f.Variant),
		ColorMode:    string(f.ColorMode),
		FileSize:     f.FileSize,
		CreatedAt:    f.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetWithFiles loads a submission and its files in creation order as one
// explicit joined shape.
func (r *SubmissionRepository) GetWithFiles(ctx context.Context, id string) (*domain.SubmissionWithFiles, error) {
	var m submissionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var fileModels []submissionFileModel
	if err := r.db.WithContext(ctx).
		Where("submission_id = ?", id).
		Order("created_at").
		Find(&fileModels).Error; err != nil {
		return nil, err
	}

	out := &domain.SubmissionWithFiles{
		Submission: toDomainSubmission(m),
		Files:      make([]domain.SubmissionFile, 0, len(fileModels)),
	}
	for _, fm := range fileModels {
		out.Files = append(out.Files, toDomainSubmissionFile(fm))
	}
	return out, nil
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	var models []submissionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	subs := make([]domain.Submission, 0, len(models))
	for _, m := range models {
		subs = append(subs, toDomainSubmission(m))
	}
	return subs, nil
}

func (r *SubmissionRepository) ListPending(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error) {
	q := r.db.WithContext(ctx).Model(&submissionModel{}).Where("status = ?", string(domain.SubmissionPending))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []submissionModel
	if err := q.
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	subs := make([]domain.Submission, 0, len(models))
	for _, m := range models {
		subs = append(subs, toDomainSubmission(m))
	}
	return subs, total, nil
}

func (r *SubmissionRepository) CountPending(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&submissionModel{}).
		Where("status = ?", string(domain.SubmissionPending)).
		Count(&total).Error
	return total, err
}

// UpdateStatusIf performs the conditional status transition and reports how
// many rows changed. Zero rows means the submission was no longer in the
// expected state, so two concurrent reviews cannot both finalize.
func (r *SubmissionRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.SubmissionStatus, reviewedBy string, notes string) (int64, error) {
	now := time.Now()
	updates := map[string]any{
		"status":      string(to),
		"reviewed_by": reviewedBy,
		"reviewed_at": now,
	}
	if notes != "" {
		updates["admin_notes"] = notes
	}

	res := r.db.WithContext(ctx).Model(&submissionModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *SubmissionRepository) DB() *gorm.DB { return r.db }
