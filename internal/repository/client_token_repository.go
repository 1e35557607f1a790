package repository

import (
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientTokenRepository interface {
	Save(token *model.ClientToken) error
	FindByClientID(clientID string) (*model.ClientToken, error)
	Delete(clientID string) error
	DeleteExpired(now time.Time) (int64, error)
}

type clientTokenRepository struct {
	db *gorm.DB
}

func NewClientTokenRepository(db *gorm.DB) ClientTokenRepository {
	return &clientTokenRepository{db: db}
}

// Save inserts the token or replaces the one already stored for the client.
func (r *clientTokenRepository) Save(token *model.ClientToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "token", "expires_at", "updated_at"}),
	}).Create(token).Error
}

func (r *clientTokenRepository) FindByClientID(clientID string) (*model.ClientToken, error) {
	var token model.ClientToken
	if err := r.db.Where("client_id = ?", clientID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *clientTokenRepository) Delete(clientID string) error {
	return r.db.Where("client_id = ?", clientID).Delete(&model.ClientToken{}).Error
}

func (r *clientTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at IS NOT NULL AND expires_at <= ?", now).Delete(&model.ClientToken{})
	return res.RowsAffected, res.Error
}
