package processor

import (
	"context"
	"math"

	"github.com/gofrs/uuid/v5"

	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/scoring"
	"resume-analyzer-go/internal/types"
)

// ResumeAnalyzer 简历分析流水线聚合类
// 组件在启动时装配完成，分析过程只读，可并发处理多个请求
type ResumeAnalyzer struct {
	Components Components
	Settings   Settings
}

// NewResumeAnalyzer 创建简历分析器
func NewResumeAnalyzer(compOpts []ComponentOpt, setOpts ...SettingOpt) *ResumeAnalyzer {
	analyzer := &ResumeAnalyzer{
		Settings: defaultSettings(),
	}
	for _, opt := range compOpts {
		opt(&analyzer.Components)
	}
	for _, opt := range setOpts {
		opt(&analyzer.Settings)
	}
	return analyzer
}

// Analyze 对一份PDF简历执行完整分析
func (a *ResumeAnalyzer) Analyze(ctx context.Context, pdfData []byte) (*types.CandidateProfile, error) {
	analysisID := newAnalysisID()

	text, err := a.Components.PDFExtractor.ExtractFromBytes(ctx, pdfData)
	if err != nil {
		return nil, NewExtractError(analysisID, err.Error())
	}
	if text.Raw == "" {
		return nil, NewEmptyDocumentError(analysisID)
	}

	return a.analyzeText(ctx, analysisID, text)
}

// AnalyzeText 跳过PDF提取，直接分析已有文本，测试与调试用
func (a *ResumeAnalyzer) AnalyzeText(ctx context.Context, text types.ExtractedText) (*types.CandidateProfile, error) {
	return a.analyzeText(ctx, newAnalysisID(), text)
}

func (a *ResumeAnalyzer) analyzeText(ctx context.Context, analysisID string, text types.ExtractedText) (*types.CandidateProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	annotations := a.Components.Annotator.Annotate(text)
	sections := parser.SegmentSections(text.Raw)

	linkedin, github := parser.ExtractLinks(text.Normalized)

	// 正则抽取的技能先过一遍关键词库，只保留已知技能
	rawSkills := parser.ExtractSkills(text.Normalized)
	skills := a.Components.Skills.Filter(rawSkills)

	experienceItems := parser.ExtractExperienceItems(sections[types.SectionExperience])

	profile := &types.CandidateProfile{
		AnalysisID:      analysisID,
		Name:            parser.ExtractName(annotations, text.Raw),
		Email:           parser.ExtractEmail(text.Normalized),
		Phone:           parser.ExtractPhone(text.Normalized),
		LinkedIn:        linkedin,
		GitHub:          github,
		Skills:          skills,
		Education:       parser.ExtractEducation(sections[types.SectionEducation]),
		ExperienceItems: experienceItems,
		Projects:        parser.ExtractProjects(sections[types.SectionProjects]),
	}

	profile.TotalExperienceYears = parser.TotalExperienceYears(text.Raw, a.Settings.Clock)
	profile.ExperienceScore = parser.ScoreExperience(annotations, text.Raw)
	profile.ResumeScore = math.Round(60 + 0.5*float64(len(skills)))

	a.recommend(profile, experienceItems)

	profile.CompletenessScore = scoring.Completeness(profile)
	profile.OverallScore = scoring.Overall(profile.CompletenessScore, profile.ExperienceScore, profile.FieldMatchPercent)

	logger.Debug().
		Str("analysis_id", analysisID).
		Int("skills", len(profile.Skills)).
		Float64("overall", profile.OverallScore).
		Msg("简历分析完成")

	return profile, nil
}

// recommend 填充职业领域、技能、课程与视频推荐
func (a *ResumeAnalyzer) recommend(profile *types.CandidateProfile, experienceItems []string) {
	rng := a.Settings.NewRand()

	best, alternatives := a.Components.Engine.RecommendField(profile.Skills, experienceItems)
	if best == nil {
		profile.RecommendedField = nil
		profile.MatchedSkills = []string{}
		profile.FieldMatchPercent = 0
	} else {
		field := best.Field
		profile.RecommendedField = &field
		profile.MatchedSkills = best.MatchedSkills
		profile.FieldMatchPercent = best.MatchPercent
		profile.RecommendedSkills = a.Components.Engine.RecommendSkills(field, profile.Skills, rng)
		profile.RecommendedCourses = a.Components.Engine.RecommendCourses(field)
	}
	profile.AlternativeFields = alternatives

	// 列表字段保持空数组而不是null
	if profile.RecommendedSkills == nil {
		profile.RecommendedSkills = []string{}
	}
	if profile.RecommendedCourses == nil {
		profile.RecommendedCourses = []string{}
	}
	if profile.AlternativeFields == nil {
		profile.AlternativeFields = []types.FieldMatch{}
	}

	profile.ResumeVideoURL, profile.InterviewVideoURL = a.Components.Engine.RecommendVideos(rng)
}

func newAnalysisID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// 时钟异常时退回V4，分析ID只要求唯一
		id = uuid.Must(uuid.NewV4())
	}
	return id.String()
}
