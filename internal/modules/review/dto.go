package review

import "assetpipe/internal/domain"

// ApprovalResult is the payload returned from a successful approval. Field
// names follow the public API contract.
type ApprovalResult struct {
	CompanyID      string   `json:"companyId"`
	CompanySlug    string   `json:"companySlug"`
	ProcessedLogos int      `json:"processedLogos"`
	TotalFiles     int      `json:"totalFiles"`
	Warnings       []string `json:"warnings,omitempty"`
}

type RejectRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type PendingListResponse struct {
	Submissions []domain.Submission `json:"submissions"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

type StatsResponse struct {
	TotalCompanies     int64 `json:"total_companies"`
	TotalLogos         int64 `json:"total_logos"`
	PendingSubmissions int64 `json:"pending_submissions"`
}
