package review

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyProcessed   = errors.New("submission already processed")
	ErrInvalidCompanyName = errors.New("company name produces an empty slug")
	ErrCompanyCreate      = errors.New("failed to create company")
	ErrNotesRequired      = errors.New("notes are required")
)

// TotalFailureError is returned when a submission had files and every one of
// them failed to migrate. The submission stays pending so the approval can
// be retried once the underlying problem is fixed.
type TotalFailureError struct {
	Warnings []string
}

func (e *TotalFailureError) Error() string {
	return fmt.Sprintf("failed to process any files (%d warnings)", len(e.Warnings))
}
