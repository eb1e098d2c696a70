package repository

import (
	"pathway_edu_backend/internal/model"

	"gorm.io/gorm"
)

// TouchpointRepository 社交触点的数据访问

type TouchpointRepository struct {
	DB *gorm.DB
}

func NewTouchpointRepository(db *gorm.DB) *TouchpointRepository {
	return &TouchpointRepository{DB: db}
}

func (r *TouchpointRepository) Create(tp *model.SocialTouchpoint) error {
	return r.DB.Create(tp).Error
}

func (r *TouchpointRepository) FindByUserID(userID uint) ([]model.SocialTouchpoint, error) {
	var tps []model.SocialTouchpoint
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&tps).Error
	return tps, err
}

func (r *TouchpointRepository) FindByPlaylistID(playlistID uint) ([]model.SocialTouchpoint, error) {
	var tps []model.SocialTouchpoint
	err := r.DB.Where("playlist_id = ?", playlistID).Order("created_at").Find(&tps).Error
	return tps, err
}
