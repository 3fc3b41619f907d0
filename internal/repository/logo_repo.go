package repository

import (
	"context"
	"time"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogoRepository struct {
	db *gorm.DB
}

func NewLogoRepository(db *gorm.DB) *LogoRepository {
	return &LogoRepository{db: db}
}

type logoModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	CompanyID   string    `gorm:"column:company_id;index"`
	Format      string    `gorm:"column:format"`
	Variant     string    `gorm:"column:variant"`
	ColorMode   string    `gorm:"column:color_mode"`
	StoragePath string    `gorm:"column:storage_path"`
	FileSize    int64     `gorm:"column:file_size"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (logoModel) TableName() string { return "logos" }

func toDomainLogo(m logoModel) *domain.Logo {
	return &domain.Logo{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Format:      domain.LogoFormat(m.Format),
		Variant:     domain.LogoVariant(m.Variant),
		ColorMode:   domain.ColorMode(m.ColorMode),
		StoragePath: m.StoragePath,
		FileSize:    m.FileSize,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *LogoRepository) Create(ctx context.Context, l *domain.Logo) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()

	m := logoModel{
		ID:          l.ID,
		CompanyID:   l.CompanyID,
		Format:      string(l.Format),
		Variant:     string(l.Variant),
		ColorMode:   string(l.ColorMode),
		StoragePath: l.StoragePath,
		FileSize:    l.FileSize,
		CreatedAt:   l.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListByCompany returns a company's logos, optionally narrowed by format
// and variant.
func (r *LogoRepository) ListByCompany(ctx context.Context, companyID string, format, variant string) ([]domain.Logo, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if format != "" {
		q = q.Where("format = ?", format)
	}
	if variant != "" {
		q = q.Where("variant = ?", variant)
	}

	var models []logoModel
	if err := q.Order("variant").Find(&models).Error; err != nil {
		return nil, err
	}

	logos := make([]domain.Logo, 0, len(models))
	for _, m := range models {
		logos = append(logos, *toDomainLogo(m))
	}
	return logos, nil
}

func (r *LogoRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&logoModel{}).Where("company_id = ?", companyID).Count(&total).Error
	return total, err
}

func (r *LogoRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&logoModel{}).Count(&total).Error
	return total, err
}

func (r *LogoRepository) DB() *gorm.DB { return r.db }
