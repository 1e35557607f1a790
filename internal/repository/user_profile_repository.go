package repository

import (
	"github.com/lshigami/SigmaLearn/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepository interface {
	Upsert(profile *model.UserProfile) error
	FindByExternalID(externalID string) (*model.UserProfile, error)
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Upsert(profile *model.UserProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "name", "profile_image", "synced_at", "updated_at"}),
	}).Create(profile).Error
}

func (r *userProfileRepository) FindByExternalID(externalID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.Where("external_id = ?", externalID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
