package domain

import "time"

type LogoFormat string

const (
	FormatSVG LogoFormat = "svg"
	FormatPNG LogoFormat = "png"
)

type LogoVariant string

const (
	VariantPrimary  LogoVariant = "primary"
	VariantIcon     LogoVariant = "icon"
	VariantWordmark LogoVariant = "wordmark"
	VariantDark     LogoVariant = "dark"
	VariantLight    LogoVariant = "light"
)

type ColorMode string

const (
	ColorLight      ColorMode = "light"
	ColorDark       ColorMode = "dark"
	ColorMonochrome ColorMode = "monochrome"
)

// Company is the canonical published record for a brand. Slug is globally
// unique and derived from the name of the first approved submission.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Domain      string    `json:"domain,omitempty"`
	Description string    `json:"description,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Logo is a publicly retrievable asset. Exactly one row per successfully
// migrated submission file.
type Logo struct {
	ID          string      `json:"id"`
	CompanyID   string      `json:"company_id"`
	Format      LogoFormat  `json:"format"`
	Variant     LogoVariant `json:"variant"`
	ColorMode   ColorMode   `json:"color_mode"`
	StoragePath string      `json:"storage_path"`
	FileSize    int64       `json:"file_size,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type BrandKit struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	PrimaryColor    string    `json:"primary_color,omitempty"`
	SecondaryColors []string  `json:"secondary_colors,omitempty"`
	Fonts           []string  `json:"fonts,omitempty"`
	GuidelinesURL   string    `json:"guidelines_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ParseLogoFormat(s string) (LogoFormat, bool) {
	switch LogoFormat(s) {
	case FormatSVG, FormatPNG:
		return LogoFormat(s), true
	}
	return "", false
}

func ParseLogoVariant(s string) (LogoVariant, bool) {
	switch LogoVariant(s) {
	case VariantPrimary, VariantIcon, VariantWordmark, VariantDark, VariantLight:
		return LogoVariant(s), true
	}
	return "", false
}

func ParseColorMode(s string) (ColorMode, bool) {
	switch ColorMode(s) {
	case ColorLight, ColorDark, ColorMonochrome:
		return ColorMode(s), true
	}
	return "", false
}
