package catalog

import (
	"context"
	"errors"
	"strings"

	"assetpipe/internal/domain"
	"assetpipe/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrQueryTooShort   = errors.New("search query must be at least 2 characters")
)

// Service serves the read-only public surface: company listings, per-company
// logos and brand kits, and search.
type Service struct {
	companies *repository.CompanyRepository
	logos     *repository.LogoRepository
	brandKits *repository.BrandKitRepository
}

func NewService(
	companies *repository.CompanyRepository,
	logos *repository.LogoRepository,
	brandKits *repository.BrandKitRepository,
) *Service {
	return &Service{companies: companies, logos: logos, brandKits: brandKits}
}

func (s *Service) ListCompanies(ctx context.Context, page, limit int) (*CompanyListResponse, error) {
	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	companies, total, err := s.companies.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &CompanyListResponse{
		Companies:  companies,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s *Service) GetCompany(ctx context.Context, slug string) (*domain.Company, error) {
	company, err := s.companies.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompanyLogos narrows by format and variant when the filters are set.
func (s *Service) GetCompanyLogos(ctx context.Context, slug, format, variant string) (*CompanyLogosResponse, error) {
	company, err := s.GetCompany(ctx, slug)
	if err != nil {
		return nil, err
	}

	logos, err := s.logos.ListByCompany(ctx, company.ID, format, variant)
	if err != nil {
		return nil, err
	}

	return &CompanyLogosResponse{Company: *company, Logos: logos}, nil
}

func (s *Service) GetBrandKit(ctx context.Context, slug string) (*BrandKitResponse, error) {
	company, err := s.GetCompany(ctx, slug)
	if err != nil {
		return nil, err
	}

	kit, err := s.brandKits.GetByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	return &BrandKitResponse{Company: *company, BrandKit: kit}, nil
}

func (s *Service) Search(ctx context.Context, query string, page, limit int) (*SearchResponse, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, ErrQueryTooShort
	}

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	companies, total, err := s.companies.Search(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		Companies:  companies,
		Query:      query,
		Pagination: paginate(page, limit, total),
	}, nil
}

func clampPage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginate(page, limit int, total int64) Pagination {
	return Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: int64(page*limit) < total,
	}
}
