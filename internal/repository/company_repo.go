package repository

import (
	"context"
	"strings"
	"time"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type companyModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Domain      *string   `gorm:"column:domain"`
	Description *string   `gorm:"column:description"`
	WebsiteURL  *string   `gorm:"column:website_url"`
	IsVerified  bool      `gorm:"column:is_verified"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (companyModel) TableName() string { return "companies" }

func toDomainCompany(m companyModel) *domain.Company {
	c := &domain.Company{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		IsVerified: m.IsVerified,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Domain != nil {
		c.Domain = *m.Domain
	}
	if m.Description != nil {
		c.Description = *m.Description
	}
	if m.WebsiteURL != nil {
		c.WebsiteURL = *m.WebsiteURL
	}
	return c
}

func toCompanyModel(c *domain.Company) companyModel {
	m := companyModel{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		IsVerified: c.IsVerified,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Domain != "" {
		m.Domain = &c.Domain
	}
	if c.Description != "" {
		m.Description = &c.Description
	}
	if c.WebsiteURL != "" {
		m.WebsiteURL = &c.WebsiteURL
	}
	return m
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	m := toCompanyModel(c)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var m companyModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	var m companyModel
	if err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return toDomainCompany(m), nil
}

// List returns companies ordered by name.
func (r *CompanyRepository) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&companyModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []companyModel
	if err := r.db.WithContext(ctx).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]domain.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, *toDomainCompany(m))
	}
	return companies, total, nil
}

// Search matches name or domain case-insensitively, verified companies first.
func (r *CompanyRepository) Search(ctx context.Context, query string, offset, limit int) ([]domain.Company, int64, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	q := r.db.WithContext(ctx).Model(&companyModel{}).
		Where("LOWER(name) LIKE ? OR LOWER(domain) LIKE ?", pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []companyModel
	if err := q.
		Order("is_verified DESC").
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]domain.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, *toDomainCompany(m))
	}
	return companies, total, nil
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&companyModel{}).Count(&total).Error
	return total, err
}

func (r *CompanyRepository) DB() *gorm.DB { return r.db }
