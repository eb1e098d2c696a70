package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"gorm.io/gorm"
)

// CareerTrackRepository 职业方向的数据访问

type CareerTrackRepository struct {
	DB *gorm.DB
}

func NewCareerTrackRepository(db *gorm.DB) *CareerTrackRepository {
	return &CareerTrackRepository{DB: db}
}

func (r *CareerTrackRepository) FindByID(id uint) (*model.CareerTrack, error) {
	var track model.CareerTrack
	err := r.DB.First(&track, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTrackNotFound
	}
	return &track, err
}

func (r *CareerTrackRepository) FindEnabled() ([]model.CareerTrack, error) {
	var tracks []model.CareerTrack
	err := r.DB.Where("enabled = ?", true).Order("id").Find(&tracks).Error
	return tracks, err
}
