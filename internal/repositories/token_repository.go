package repositories

import (
	"errors"
	"time"

	"logistik_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("token not found")

type TokenRepository interface {
	Create(token *models.Token) error
	FindByCode(code string) (*models.Token, error)
	// MarkVerified stamps the verification time and replaces the expiry
	// with the shorter post-verification window.
	MarkVerified(id string, verifiedAt, expiresAt time.Time) error
	DeleteByCode(code string) error
}

type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) Create(token *models.Token) error {
	return r.db.Create(token).Error
}

func (r *TokenRepositoryImpl) FindByCode(code string) (*models.Token, error) {
	var token models.Token
	err := r.db.First(&token, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) MarkVerified(id string, verifiedAt, expiresAt time.Time) error {
	result := r.db.Model(&models.Token{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified_at": verifiedAt,
		"expires_at":  expiresAt,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *TokenRepositoryImpl) DeleteByCode(code string) error {
	return r.db.Where("code = ?", code).Delete(&models.Token{}).Error
}
