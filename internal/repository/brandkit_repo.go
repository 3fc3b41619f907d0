package repository

import (
	"context"
	"errors"
	"time"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandKitRepository struct {
	db *gorm.DB
}

func NewBrandKitRepository(db *gorm.DB) *BrandKitRepository {
	return &BrandKitRepository{db: db}
}

type brandKitModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	CompanyID       string    `gorm:"column:company_id;uniqueIndex"`
	PrimaryColor    *string   `gorm:"column:primary_color"`
	SecondaryColors []string  `gorm:"column:secondary_colors;serializer:json"`
	Fonts           []string  `gorm:"column:fonts;serializer:json"`
	GuidelinesURL   *string   `gorm:"column:guidelines_url"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (brandKitModel) TableName() string { return "brand_kits" }

func toDomainBrandKit(m brandKitModel) *domain.BrandKit {
	k := &domain.BrandKit{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		SecondaryColors: m.SecondaryColors,
		Fonts:           m.Fonts,
		CreatedAt:       m.CreatedAt,
	}
	if m.PrimaryColor != nil {
		k.PrimaryColor = *m.PrimaryColor
	}
	if m.GuidelinesURL != nil {
		k.GuidelinesURL = *m.GuidelinesURL
	}
	return k
}

// GetByCompany returns nil without an error when the company has no kit.
func (r *BrandKitRepository) GetByCompany(ctx context.Context, companyID string) (*domain.BrandKit, error) {
	var m brandKitModel
	err := r.db.WithContext(ctx).First(&m, "company_id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBrandKit(m), nil
}

func (r *BrandKitRepository) Create(ctx context.Context, k *domain.BrandKit) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	k.CreatedAt = time.Now()

	m := brandKitModel{
		ID:              k.ID,
		CompanyID:       k.CompanyID,
		SecondaryColors: k.SecondaryColors,
		Fonts:           k.Fonts,
		CreatedAt:       k.CreatedAt,
	}
	if k.PrimaryColor != "" {
		m.PrimaryColor = &k.PrimaryColor
	}
	if k.GuidelinesURL != "" {
		m.GuidelinesURL = &k.GuidelinesURL
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
