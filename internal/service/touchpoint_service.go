package service

import (
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"

	"go.uber.org/zap"
)

// TouchpointService 在学习路径中插入社交互动节点
type TouchpointService struct {
	TouchpointRepo *repository.TouchpointRepository
	PlaylistRepo   *repository.PlaylistRepository
	Notifier       Notifier
}

func NewTouchpointService(
	touchpointRepo *repository.TouchpointRepository,
	playlistRepo *repository.PlaylistRepository,
	notifier Notifier,
) *TouchpointService {
	return &TouchpointService{
		TouchpointRepo: touchpointRepo,
		PlaylistRepo:   playlistRepo,
		Notifier:       notifier,
	}
}

// 触点文案按类型查表，四种类型各一条
var touchpointTemplates = map[model.TouchpointType]struct {
	Title       string
	Description string
}{
	model.TouchpointDiscussionGroup: {
		Title:       "加入讨论小组",
		Description: "和进度相近的同学一起讨论当前模块",
	},
	model.TouchpointPeerReview: {
		Title:       "互评同学的作业",
		Description: "查看并点评其他学员提交的练习",
	},
	model.TouchpointMentorMatch: {
		Title:       "匹配一位导师",
		Description: "与走完这条路径的导师建立联系",
	},
	model.TouchpointForumQuestion: {
		Title:       "在论坛提一个问题",
		Description: "把疑问发到社区，获得大家的解答",
	},
}

// CreateTouchpoint 校验清单存在后按模板创建 PENDING 触点
// 通知投递由通知协作方负责，这里只发事件
func (s *TouchpointService) CreateTouchpoint(userID, playlistID uint, tpType model.TouchpointType) (*model.SocialTouchpoint, error) {
	playlist, err := s.PlaylistRepo.FindByID(playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.UserID != userID {
		return nil, util.ErrPlaylistNotFound
	}

	template, ok := touchpointTemplates[tpType]
	if !ok {
		return nil, util.ErrInvalidTouchpointType
	}

	touchpoint := &model.SocialTouchpoint{
		UserID:         userID,
		PlaylistID:     playlistID,
		TouchpointType: tpType,
		Title:          template.Title,
		Description:    template.Description,
		Status:         model.TouchpointPending,
	}

	if err := s.TouchpointRepo.Create(touchpoint); err != nil {
		return nil, err
	}

	s.Notifier.TouchpointCreated(touchpoint)
	logger.Log.Info("social touchpoint created",
		zap.Uint("userId", userID),
		zap.Uint("playlistId", playlistID),
		zap.String("type", string(tpType)))

	return touchpoint, nil
}

func (s *TouchpointService) ListTouchpoints(userID uint) ([]model.SocialTouchpoint, error) {
	return s.TouchpointRepo.FindByUserID(userID)
}
