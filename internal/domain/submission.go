package domain

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is a user-proposed company plus a set of staged files waiting
// for review. Born pending by the intake flow; only the review pipeline
// moves it to approved or rejected.
type Submission struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	CompanyName   string           `json:"company_name"`
	CompanyDomain string           `json:"company_domain,omitempty"`
	Status        SubmissionStatus `json:"status"`
	AdminNotes    string           `json:"admin_notes,omitempty"`
	ReviewedBy    *string          `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SubmissionFile is one staged candidate asset. Immutable once created; the
// migrator only reads it.
type SubmissionFile struct {
	ID           string      `json:"id"`
	SubmissionID string      `json:"submission_id"`
	StoragePath  string      `json:"storage_path"`
	Format       LogoFormat  `json:"format"`
	Variant      LogoVariant `json:"variant"`
	ColorMode    ColorMode   `json:"color_mode"`
	FileSize     int64       `json:"file_size,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SubmissionWithFiles is the joined shape the review pipeline works on, so
// the orchestrator never depends on how the rows were fetched.
type SubmissionWithFiles struct {
	Submission
	Files []SubmissionFile `json:"files"`
}
