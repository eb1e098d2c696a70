package util

import "errors"

// 路径引擎的错误分三类：NotFound / Validation / StateViolation
// 重复触发技能诊断不算错误，由服务层直接返回已有记录

var (
	// NotFound
	ErrAuditNotFound      = errors.New("skills audit not found")
	ErrGoalNotFound       = errors.New("learning goal not found")
	ErrPlaylistNotFound   = errors.New("learning playlist not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAlertNotFound      = errors.New("early alert not found")
	ErrTrackNotFound      = errors.New("career track not found")

	// Validation
	ErrEmptySkillScores       = errors.New("skill scores must not be empty")
	ErrScoreOutOfRange        = errors.New("score must be between 0 and 100")
	ErrInvalidDeadline        = errors.New("deadline must be a future date")
	ErrInvalidTouchpointType  = errors.New("unknown touchpoint type")
	ErrInvalidDifficulty      = errors.New("unknown difficulty level")

	// StateViolation
	ErrPlaylistExhausted      = errors.New("playlist already advanced past its last item")
	ErrPlaylistExists         = errors.New("playlist already exists for this goal")
	ErrAssessmentCompleted    = errors.New("assessment already completed")
	ErrGoalNotActive          = errors.New("goal is no longer active")
	ErrAlertNotActive         = errors.New("alert is not in a transitionable state")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAuditNotFound) ||
		errors.Is(err, ErrGoalNotFound) ||
		errors.Is(err, ErrPlaylistNotFound) ||
		errors.Is(err, ErrAssessmentNotFound) ||
		errors.Is(err, ErrAlertNotFound) ||
		errors.Is(err, ErrTrackNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptySkillScores) ||
		errors.Is(err, ErrScoreOutOfRange) ||
		errors.Is(err, ErrInvalidDeadline) ||
		errors.Is(err, ErrInvalidTouchpointType) ||
		errors.Is(err, ErrInvalidDifficulty)
}

func IsStateViolation(err error) bool {
	return errors.Is(err, ErrPlaylistExhausted) ||
		errors.Is(err, ErrPlaylistExists) ||
		errors.Is(err, ErrAssessmentCompleted) ||
		errors.Is(err, ErrGoalNotActive) ||
		errors.Is(err, ErrAlertNotActive)
}
