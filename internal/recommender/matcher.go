package recommender

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-analyzer-go/internal/types"
)

// Strategy 职业领域匹配策略
// Rank 返回得分非零的领域匹配结果，按原始得分从高到低排列，
// 得分相同时保持领域定义顺序。百分比只是得分对关键词总数的折算，
// 不参与排序
type Strategy interface {
	Name() string
	Rank(skills, experienceItems []string) []types.FieldMatch
}

// NewStrategy 按配置名创建匹配策略
func NewStrategy(name string, fuzzyThreshold float64) (Strategy, error) {
	switch name {
	case "", "exact":
		return &ExactStrategy{}, nil
	case "fuzzy":
		if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
			fuzzyThreshold = 0.85
		}
		return &FuzzyStrategy{Threshold: fuzzyThreshold}, nil
	default:
		return nil, fmt.Errorf("未知的匹配策略: %s", name)
	}
}

// ExactStrategy 精确匹配：技能与领域关键词做小写集合交集
type ExactStrategy struct{}

func (s *ExactStrategy) Name() string { return "exact" }

func (s *ExactStrategy) Rank(skills, _ []string) []types.FieldMatch {
	skillSet := lowerSet(skills)

	var scored []scoredMatch
	for _, field := range careerFields {
		var matched []string
		for _, kw := range field.Keywords {
			if _, ok := skillSet[kw]; ok {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		scored = append(scored, scoredMatch{
			score: float64(len(matched)),
			match: types.FieldMatch{
				Field:         field.Name,
				MatchedSkills: matched,
				MatchPercent:  percentOf(float64(len(matched)), len(field.Keywords)),
			},
		})
	}
	return sortedByScore(scored)
}

// FuzzyStrategy 模糊匹配：技能与关键词做归一化编辑距离相似度比较，
// 并在工作经历条目中做关键词子串检索，两部分按 0.7/0.3 加权
type FuzzyStrategy struct {
	Threshold float64
}

func (s *FuzzyStrategy) Name() string { return "fuzzy" }

func (s *FuzzyStrategy) Rank(skills, experienceItems []string) []types.FieldMatch {
	lowerSkills := lowerSlice(skills)
	lowerExperience := lowerSlice(experienceItems)

	var scored []scoredMatch
	for _, field := range careerFields {
		// 每个关键词只计一次，保证得分不超过关键词总数
		skillHits := make(map[string]struct{})
		expHits := make(map[string]struct{})

		for _, kw := range field.Keywords {
			for _, skill := range lowerSkills {
				if similarity(skill, kw) >= s.Threshold {
					skillHits[kw] = struct{}{}
					break
				}
			}
			for _, item := range lowerExperience {
				if strings.Contains(item, kw) {
					expHits[kw] = struct{}{}
					break
				}
			}
		}

		score := 0.7*float64(len(skillHits)) + 0.3*float64(len(expHits))
		if score == 0 {
			continue
		}

		var matched []string
		for _, kw := range field.Keywords {
			_, inSkill := skillHits[kw]
			_, inExp := expHits[kw]
			if inSkill || inExp {
				matched = append(matched, kw)
			}
		}
		scored = append(scored, scoredMatch{
			score: score,
			match: types.FieldMatch{
				Field:         field.Name,
				MatchedSkills: matched,
				MatchPercent:  percentOf(score, len(field.Keywords)),
			},
		})
	}
	return sortedByScore(scored)
}

// percentOf 匹配得分折算为百分比，保留1位小数
func percentOf(score float64, totalKeywords int) float64 {
	if totalKeywords == 0 {
		return 0
	}
	return round1(score / float64(totalKeywords) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// scoredMatch 携带原始得分的领域匹配结果
// 关键词总数因领域而异，百分比排序会让命中少的领域反超，必须按原始得分排
type scoredMatch struct {
	score float64
	match types.FieldMatch
}

// sortedByScore 按原始得分降序稳定排序，平局时保持领域定义顺序
func sortedByScore(scored []scoredMatch) []types.FieldMatch {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	out := make([]types.FieldMatch, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.match)
	}
	return out
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = struct{}{}
	}
	return set
}

func lowerSlice(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(strings.TrimSpace(item)))
	}
	return out
}

// similarity 两个字符串的归一化相似度，1减去编辑距离与较长串长度之比
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein 经典两行滚动数组实现
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
