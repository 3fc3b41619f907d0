package repository

import (
	"context"
	"time"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type APIKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

type apiKeyModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	UserID       string     `gorm:"column:user_id;index"`
	KeyHash      string     `gorm:"column:key_hash;uniqueIndex"`
	Name         *string    `gorm:"column:name"`
	IsActive     bool       `gorm:"column:is_active"`
	RequestCount int64      `gorm:"column:request_count"`
	LastUsedAt   *time.Time `gorm:"column:last_used_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (apiKeyModel) TableName() string { return "api_keys" }

func toDomainAPIKey(m apiKeyModel) *domain.APIKey {
	k := &domain.APIKey{
		ID:           m.ID,
		UserID:       m.UserID,
		KeyHash:      m.KeyHash,
		IsActive:     m.IsActive,
		RequestCount: m.RequestCount,
		LastUsedAt:   m.LastUsedAt,
		CreatedAt:    m.CreatedAt,
	}
	if m.Name != nil {
		k.Name = *m.Name
	}
	return k
}

func (r *APIKeyRepository) Create(ctx context.Context, k *domain.APIKey) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	k.CreatedAt = time.Now()

	m := apiKeyModel{
		ID:        k.ID,
		UserID:    k.UserID,
		KeyHash:   k.KeyHash,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
	}
	if k.Name != "" {
		m.Name = &k.Name
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *APIKeyRepository) GetByHash(ctx context.Context, keyHash string) (*domain.APIKey, error) {
	var m apiKeyModel
	if err := r.db.WithContext(ctx).First(&m, "key_hash = ?", keyHash).Error; err != nil {
		return nil, err
	}
	return toDomainAPIKey(m), nil
}

func (r *APIKeyRepository) ListByUser(ctx context.Context, userID string) ([]domain.APIKey, error) {
	var models []apiKeyModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	keys := make([]domain.APIKey, 0, len(models))
	for _, m := range models {
		keys = append(keys, *toDomainAPIKey(m))
	}
	return keys, nil
}

func (r *APIKeyRepository) Deactivate(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&apiKeyModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// TouchUsage bumps the request counter and last-used timestamp. Called off
// the request path; the caller only logs a failure.
func (r *APIKeyRepository) TouchUsage(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&apiKeyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"request_count": gorm.Expr("request_count + 1"),
			"last_used_at":  time.Now(),
		}).Error
}
