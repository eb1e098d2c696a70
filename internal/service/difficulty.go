package service

import "pathway_edu_backend/internal/model"

// 难度阶梯 EASY < MEDIUM < HARD < EXPERT
// 状态机以数据表表达，独立于持久层可测

var DifficultyLadder = []model.DifficultyLevel{
	model.DifficultyEasy,
	model.DifficultyMedium,
	model.DifficultyHard,
	model.DifficultyExpert,
}

type difficultyStep struct {
	Current       model.DifficultyLevel
	PerformedWell bool
}

var difficultyTransitions = map[difficultyStep]model.DifficultyLevel{
	{model.DifficultyEasy, true}:    model.DifficultyMedium,
	{model.DifficultyMedium, true}:  model.DifficultyHard,
	{model.DifficultyHard, true}:    model.DifficultyExpert,
	{model.DifficultyExpert, true}:  model.DifficultyExpert,
	{model.DifficultyEasy, false}:   model.DifficultyEasy,
	{model.DifficultyMedium, false}: model.DifficultyEasy,
	{model.DifficultyHard, false}:   model.DifficultyMedium,
	{model.DifficultyExpert, false}: model.DifficultyHard,
}

// NextDifficulty 单步迁移，两端封顶，未知状态原样返回
func NextDifficulty(current model.DifficultyLevel, performedWell bool) model.DifficultyLevel {
	if next, ok := difficultyTransitions[difficultyStep{current, performedWell}]; ok {
		return next
	}
	return current
}

// InitialDifficulty 由画像决定起始难度，ADVANCED 不会直接从 EXPERT 开始
func InitialDifficulty(persona model.PersonaType) model.DifficultyLevel {
	switch persona {
	case model.PersonaBeginner:
		return model.DifficultyEasy
	case model.PersonaIntermediate:
		return model.DifficultyMedium
	case model.PersonaAdvanced:
		return model.DifficultyHard
	default:
		return model.DifficultyMedium
	}
}
