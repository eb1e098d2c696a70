package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssessmentRepository 结业评估的数据访问

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.DB.First(&assessment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return &assessment, err
}

// FindByIDForUpdate 行锁保证 completedAt 只被写入一次
func (r *AssessmentRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Assessment, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var assessment model.Assessment
	err := q.First(&assessment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return &assessment, err
}

func (r *AssessmentRepository) FindByGoalID(goalID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Where("goal_id = ?", goalID).Order("created_at").Find(&assessments).Error
	return assessments, err
}

// Complete 事务内写回完成态，序列化字段走结构体更新
func (r *AssessmentRepository) Complete(tx *gorm.DB, assessment *model.Assessment) error {
	return tx.Model(assessment).
		Select("score", "feedback", "competency_scores", "next_steps", "status", "completed_at", "updated_at").
		Updates(assessment).Error
}

func (r *AssessmentRepository) UpdateArtifact(id uint, url string, status model.AssessmentStatus) error {
	return r.DB.Model(&model.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"artifact_url": url,
			"status":       status,
		}).Error
}
