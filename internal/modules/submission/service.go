package submission

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"assetpipe/internal/domain"
	"assetpipe/internal/storage"

	"github.com/google/uuid"
)

const MaxFileSize = 5 * 1024 * 1024 // 5 MB

// Service handles the intake flow: staged files land in the staging bucket
// and a pending Submission row is created for the review queue.
type Service struct {
	repo    SubmissionRepository
	staging storage.Bucket
}

func NewService(repo SubmissionRepository, staging storage.Bucket) *Service {
	return &Service{repo: repo, staging: staging}
}

// Create stages the uploaded files and records a pending submission. The
// order files are added is the order the approval pipeline will later
// migrate them in.
func (s *Service) Create(ctx context.Context, userID, companyName, companyDomain string, headers []*multipart.FileHeader, meta []FileMeta) (*CreateResponse, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, ErrCompanyNameRequired
	}
	if len(headers) == 0 {
		return nil, ErrNoFiles
	}
	if len(headers) != len(meta) {
		return nil, ErrFieldMismatch
	}

	type staged struct {
		data   []byte
		format domain.LogoFormat
	}

	// validate and read everything before any side effect
	files := make([]staged, 0, len(headers))
	for i, fh := range headers {
		data, format, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		if _, ok := domain.ParseLogoVariant(string(meta[i].Variant)); !ok {
			return nil, ErrInvalidVariant
		}
		if _, ok := domain.ParseColorMode(string(meta[i].ColorMode)); !ok {
			return nil, ErrInvalidColorMode
		}
		files = append(files, staged{data: data, format: format})
	}

	sub := &domain.Submission{
		UserID:        userID,
		CompanyName:   strings.TrimSpace(companyName),
		CompanyDomain: strings.TrimSpace(companyDomain),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	out := &CreateResponse{Submission: *sub}
	for i, f := range files {
		file := &domain.SubmissionFile{
			ID:           uuid.NewString(),
			SubmissionID: sub.ID,
			Format:       f.format,
			Variant:      meta[i].Variant,
			ColorMode:    meta[i].ColorMode,
			FileSize:     int64(len(f.data)),
		}
		file.StoragePath = fmt.Sprintf("%s/%s.%s", sub.ID, file.ID, file.Format)

		if err := s.staging.Upload(ctx, file.StoragePath, f.data, contentTypeFor(f.format)); err != nil {
			return nil, fmt.Errorf("failed to stage file: %w", err)
		}
		if err := s.repo.AddFile(ctx, file); err != nil {
			// roll the staged object back so no orphan is left behind
			_ = s.staging.Remove(ctx, file.StoragePath)
			return nil, fmt.Errorf("failed to record file: %w", err)
		}

		out.Files = append(out.Files, *file)
	}

	log.Printf("submission created id=%s user_id=%s files=%d", sub.ID, userID, len(out.Files))
	return out, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	return s.repo.ListByUser(ctx, userID)
}

func readUpload(fh *multipart.FileHeader) ([]byte, domain.LogoFormat, error) {
	if fh.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	format, err := detectFormat(fh.Filename, data)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// detectFormat sniffs the content and cross-checks the extension. SVG has
// no magic bytes, so it is accepted when the sniffer sees XML or plain text
// and the filename says .svg.
func detectFormat(filename string, data []byte) (domain.LogoFormat, error) {
	mime := strings.Split(http.DetectContentType(data), ";")[0]
	ext := strings.ToLower(filename)

	switch {
	case mime == "image/png":
		return domain.FormatPNG, nil
	case strings.HasSuffix(ext, ".svg") && (mime == "text/xml" || mime == "text/plain" || mime == "application/xml"):
		return domain.FormatSVG, nil
	}
	return "", ErrUnsupportedFormat
}

func contentTypeFor(format domain.LogoFormat) string {
	if format == domain.FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}
