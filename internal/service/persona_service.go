package service

import (
	"errors"
	"fmt"
	"math"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// PersonaService 技能诊断与学习者画像分类
type PersonaService struct {
	AuditRepo *repository.SkillsAuditRepository
	Signals   SkillSignalSource
}

func NewPersonaService(auditRepo *repository.SkillsAuditRepository, signals SkillSignalSource) *PersonaService {
	return &PersonaService{AuditRepo: auditRepo, Signals: signals}
}

// 画像分档阈值：<40 BEGINNER，<70 INTERMEDIATE，其余 ADVANCED
const (
	beginnerCeiling     = 40
	intermediateCeiling = 70
	strengthFloor       = 70
	gapCeiling          = 50
)

var personaRecommendations = map[model.PersonaType][]string{
	model.PersonaBeginner: {
		"从结构化的基础课程开始，打好根基",
		"加入学习小组获取同伴支持",
	},
	model.PersonaIntermediate: {
		"优先补齐知识短板",
		"通过实战项目巩固所学",
	},
	model.PersonaAdvanced: {
		"参与高阶优化挑战",
		"发展领导力，尝试担任导师",
	},
}

// ComputeAudit 执行技能诊断
// 幂等：该用户已有诊断时直接返回，不做任何改写
// skillScores 为空时从注入的信号源取数
func (s *PersonaService) ComputeAudit(userID uint, skillScores map[string]int) (*model.SkillsAudit, error) {
	if existing, err := s.AuditRepo.FindByUserID(userID); err == nil {
		return existing, nil
	} else if !errors.Is(err, util.ErrAuditNotFound) {
		return nil, err
	}

	if skillScores == nil {
		collected, err := s.Signals.SkillScores(userID)
		if err != nil {
			return nil, err
		}
		skillScores = collected
	}
	if len(skillScores) == 0 {
		return nil, util.ErrEmptySkillScores
	}

	overallScore := overallScore(skillScores)
	persona := classifyPersona(overallScore)
	strengths := identifyStrengths(skillScores)
	gaps := identifyGaps(skillScores)

	audit := &model.SkillsAudit{
		UserID:          userID,
		PersonaType:     persona,
		OverallScore:    overallScore,
		SkillScores:     skillScores,
		Strengths:       strengths,
		KnowledgeGaps:   gaps,
		Recommendations: buildRecommendations(persona, gaps),
	}

	inserted, err := s.AuditRepo.CreateIfAbsent(audit)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// 并发触发时落败的一方回读已有记录
		return s.AuditRepo.FindByUserID(userID)
	}

	logger.Log.Info("skills audit created",
		zap.Uint("userId", userID),
		zap.String("persona", string(persona)),
		zap.Int("overallScore", overallScore))

	return audit, nil
}

func (s *PersonaService) GetAudit(userID uint) (*model.SkillsAudit, error) {
	return s.AuditRepo.FindByUserID(userID)
}

func overallScore(skillScores map[string]int) int {
	sum := 0
	for _, score := range skillScores {
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(skillScores))))
}

func classifyPersona(overallScore int) model.PersonaType {
	switch {
	case overallScore < beginnerCeiling:
		return model.PersonaBeginner
	case overallScore < intermediateCeiling:
		return model.PersonaIntermediate
	default:
		return model.PersonaAdvanced
	}
}

// identifyStrengths 得分 >= 70 的技能，按分数从高到低排列
func identifyStrengths(skillScores map[string]int) []string {
	return selectSkills(skillScores, func(score int) bool { return score >= strengthFloor }, true)
}

// identifyGaps 得分 < 50 的技能，最薄弱的排在最前
func identifyGaps(skillScores map[string]int) []string {
	return selectSkills(skillScores, func(score int) bool { return score < gapCeiling }, false)
}

func selectSkills(skillScores map[string]int, keep func(int) bool, descending bool) []string {
	skills := make([]string, 0, len(skillScores))
	for skill, score := range skillScores {
		if keep(score) {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool {
		si, sj := skillScores[skills[i]], skillScores[skills[j]]
		if si != sj {
			if descending {
				return si > sj
			}
			return si < sj
		}
		return skills[i] < skills[j]
	})
	return skills
}

func buildRecommendations(persona model.PersonaType, gaps []string) []string {
	recommendations := append([]string{}, personaRecommendations[persona]...)
	if len(gaps) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("优先学习以下技能: %s", strings.Join(gaps, ", ")))
	}
	return recommendations
}
