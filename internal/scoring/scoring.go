// Package scoring 计算简历完整度分数与综合分数
package scoring

import (
	"math"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// 完整度各字段权重，总和为1
const (
	weightName       = 0.10
	weightEmail      = 0.10
	weightPhone      = 0.10
	weightLinkedIn   = 0.05
	weightGitHub     = 0.05
	weightSkills     = 0.20
	weightEducation  = 0.15
	weightProjects   = 0.10
	weightExperience = 0.15
)

// Completeness 按字段是否提取成功加权求和，返回0-100的分数，保留1位小数
func Completeness(profile *types.CandidateProfile) float64 {
	score := 0.0
	if profile.Name != "" {
		score += weightName
	}
	if hasValue(profile.Email) {
		score += weightEmail
	}
	if hasValue(profile.Phone) {
		score += weightPhone
	}
	if hasValue(profile.LinkedIn) {
		score += weightLinkedIn
	}
	if hasValue(profile.GitHub) {
		score += weightGitHub
	}
	if len(profile.Skills) > 0 {
		score += weightSkills
	}
	if len(profile.Education) > 0 {
		score += weightEducation
	}
	if len(profile.Projects) > 0 {
		score += weightProjects
	}
	if len(profile.ExperienceItems) > 0 || profile.TotalExperienceYears > 0 {
		score += weightExperience
	}
	return round1(score * 100)
}

// Overall 综合分数：完整度40%、经验质量35%、领域匹配度25%
// 经验质量分数先换算到百分制再参与加权，结果保留1位小数
func Overall(completeness, experienceScore, matchPercent float64) float64 {
	experiencePercent := experienceScore * 100 / constants.MaxExperienceScore
	return round1(0.40*completeness + 0.35*experiencePercent + 0.25*matchPercent)
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
