package recommender

import (
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/types"
)

// Engine 推荐引擎，聚合领域匹配、技能补全、课程和视频推荐
// 初始化后只读，可并发使用；随机源由调用方在每次调用时注入
type Engine struct {
	strategy Strategy
	topN     int
}

// EngineOption Engine的配置选项
type EngineOption func(*Engine)

// WithTopN 配置推荐技能数量与备选领域数量的上限
func WithTopN(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// NewEngine 创建推荐引擎
func NewEngine(strategy Strategy, options ...EngineOption) *Engine {
	e := &Engine{
		strategy: strategy,
		topN:     constants.DefaultTopN,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// RecommendField 返回最匹配的职业领域与备选领域
// 没有任何领域得分时返回 nil 匹配与空备选。
// 备选领域只在模糊策略下给出，精确策略保持单一结果
func (e *Engine) RecommendField(skills, experienceItems []string) (*types.FieldMatch, []types.FieldMatch) {
	ranked := e.strategy.Rank(skills, experienceItems)
	if len(ranked) == 0 {
		return nil, nil
	}

	best := ranked[0]
	if e.strategy.Name() != "fuzzy" {
		return &best, nil
	}

	alternatives := ranked[1:]
	if len(alternatives) > e.topN-1 {
		alternatives = alternatives[:e.topN-1]
	}
	return &best, alternatives
}

// RecommendSkills 推荐候选人尚未掌握的领域技能
// 从领域关键词中剔除已检测到的技能，随机打乱后截取 topN 个并做标题化
func (e *Engine) RecommendSkills(field string, detected []string, rng *rand.Rand) []string {
	keywords := fieldKeywords(field)
	if keywords == nil {
		return nil
	}

	detectedSet := lowerSet(detected)
	var remaining []string
	for _, kw := range keywords {
		if _, ok := detectedSet[kw]; !ok {
			remaining = append(remaining, kw)
		}
	}
	sort.Strings(remaining)
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	if len(remaining) > e.topN {
		remaining = remaining[:e.topN]
	}

	// cases.Title 带内部状态，不能跨goroutine共享，每次调用新建
	titler := cases.Title(language.English)
	out := make([]string, 0, len(remaining))
	for _, skill := range remaining {
		out = append(out, titler.String(skill))
	}
	return out
}

// RecommendCourses 返回领域对应的课程列表，未收录的领域返回空
func (e *Engine) RecommendCourses(field string) []string {
	return fieldCourses[field]
}

// RecommendVideos 随机挑选一条简历视频和一条面试视频
// 面试视频尽量避开与简历视频相同的地址
func (e *Engine) RecommendVideos(rng *rand.Rand) (resumeURL, interviewURL string) {
	if len(resumeVideos) == 0 || len(interviewVideos) == 0 {
		return "", ""
	}
	resumeURL = resumeVideos[rng.Intn(len(resumeVideos))]

	var candidates []string
	for _, v := range interviewVideos {
		if v != resumeURL {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return resumeURL, resumeURL
	}
	return resumeURL, candidates[rng.Intn(len(candidates))]
}

// fieldKeywords 按领域名查关键词表
func fieldKeywords(field string) []string {
	for _, f := range careerFields {
		if strings.EqualFold(f.Name, field) {
			return f.Keywords
		}
	}
	return nil
}
