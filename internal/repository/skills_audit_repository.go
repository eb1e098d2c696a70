package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SkillsAuditRepository 技能诊断的数据访问

type SkillsAuditRepository struct {
	DB *gorm.DB
}

func NewSkillsAuditRepository(db *gorm.DB) *SkillsAuditRepository {
	return &SkillsAuditRepository{DB: db}
}

// CreateIfAbsent 依赖 user_id 唯一索引做幂等插入
// 已存在时返回 false，调用方应回读现有记录
func (r *SkillsAuditRepository) CreateIfAbsent(audit *model.SkillsAudit) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(audit)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SkillsAuditRepository) FindByUserID(userID uint) (*model.SkillsAudit, error) {
	var audit model.SkillsAudit
	err := r.DB.Where("user_id = ?", userID).First(&audit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAuditNotFound
	}
	return &audit, err
}
