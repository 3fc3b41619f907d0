package submission

import "errors"

var (
	ErrCompanyNameRequired = errors.New("company_name is required")
	ErrNoFiles             = errors.New("no files provided")
	ErrFieldMismatch       = errors.New("each file needs a variant and a color_mode")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
	ErrEmptyFile           = errors.New("file is empty")
	ErrUnsupportedFormat   = errors.New("only svg and png files are accepted")
	ErrInvalidVariant      = errors.New("invalid variant")
	ErrInvalidColorMode    = errors.New("invalid color_mode")
)
