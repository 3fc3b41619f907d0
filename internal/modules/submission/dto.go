package submission

import "assetpipe/internal/domain"

// FileMeta pairs a staged upload with its variant classification. The
// handler builds one per file from the parallel multipart fields.
type FileMeta struct {
	Variant   domain.LogoVariant
	ColorMode domain.ColorMode
}

type CreateResponse struct {
	Submission domain.Submission       `json:"submission"`
	Files      []domain.SubmissionFile `json:"files"`
}

type ListResponse struct {
	Submissions []domain.Submission `json:"submissions"`
}
