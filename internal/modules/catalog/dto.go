package catalog

import "assetpipe/internal/domain"

type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

type CompanyListResponse struct {
	Companies  []domain.Company `json:"companies"`
	Pagination Pagination       `json:"pagination"`
}

type SearchResponse struct {
	Companies  []domain.Company `json:"companies"`
	Query      string           `json:"query"`
	Pagination Pagination       `json:"pagination"`
}

type CompanyLogosResponse struct {
	Company domain.Company `json:"company"`
	Logos   []domain.Logo  `json:"logos"`
}

type BrandKitResponse struct {
	Company  domain.Company   `json:"company"`
	BrandKit *domain.BrandKit `json:"brand_kit"`
}
