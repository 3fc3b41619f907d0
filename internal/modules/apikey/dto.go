package apikey

import "assetpipe/internal/domain"

type CreateKeyRequest struct {
	Name string `json:"name"`
}

// CreateKeyResponse is the only place the plaintext key ever appears.
type CreateKeyResponse struct {
	Key    string         `json:"key"`
	APIKey *domain.APIKey `json:"api_key"`
}
