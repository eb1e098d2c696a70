package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaylistRepository 学习清单的数据访问

type PlaylistRepository struct {
	DB *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{DB: db}
}

func (r *PlaylistRepository) Create(playlist *model.LearningPlaylist) error {
	return r.DB.Create(playlist).Error
}

func (r *PlaylistRepository) FindByID(id uint) (*model.LearningPlaylist, error) {
	var playlist model.LearningPlaylist
	err := r.DB.First(&playlist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlaylistNotFound
	}
	return &playlist, err
}

// FindByIDForUpdate 事务内取行锁，串行化同一清单上的 advance / 难度调整
// SQLite（测试环境）写事务本身互斥，无需也不支持 FOR UPDATE
func (r *PlaylistRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.LearningPlaylist, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var playlist model.LearningPlaylist
	err := q.First(&playlist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlaylistNotFound
	}
	return &playlist, err
}

func (r *PlaylistRepository) FindByGoalID(goalID uint) (*model.LearningPlaylist, error) {
	var playlist model.LearningPlaylist
	err := r.DB.Where("goal_id = ?", goalID).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlaylistNotFound
	}
	return &playlist, err
}

func (r *PlaylistRepository) FindFirstByUserID(userID uint) (*model.LearningPlaylist, error) {
	var playlist model.LearningPlaylist
	err := r.DB.Where("user_id = ?", userID).Order("created_at").First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlaylistNotFound
	}
	return &playlist, err
}

// ActiveUserIDs 拥有清单的用户列表，预警巡检用
func (r *PlaylistRepository) ActiveUserIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.LearningPlaylist{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

// Save 事务内写回 advance / 难度调整后的状态
// 结构体更新让 items 走 JSON 序列化器
func (r *PlaylistRepository) Save(tx *gorm.DB, playlist *model.LearningPlaylist) error {
	playlist.UpdatedAt = time.Now()
	return tx.Model(playlist).
		Select("current_index", "items", "current_difficulty", "updated_at").
		Updates(playlist).Error
}
