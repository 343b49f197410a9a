package parser

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/types"
)

// Clock 供"至今"类结束日期取当前时间，测试中可注入固定时钟
type Clock func() time.Time

// monthAlternation 月份名：英文缩写/全称 + 印尼文全称
const monthAlternation = `(?:Jan(?:uary|uari)?|Feb(?:ruary|ruari)?|Mar(?:ch|et)?|Apr(?:il)?|May|Mei|Jun(?:e|i)?|Jul(?:y|i)?|Aug(?:ust)?|Agustus|Sep(?:tember)?|Oct(?:ober)?|Okt(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|Des(?:ember)?)`

var (
	// dateRangePattern "<月> <年>" 到 "<月/年/至今>" 的日期区间
	dateRangePattern = regexp.MustCompile(`(?i)(` + monthAlternation + `\.?\s?\d{4})\s*[-\x{2013}]\s*((?:Present|Now|Sekarang|` + monthAlternation + `\.?\s?\d{4}|\d{4}))`)

	// presentPattern 表示"至今"的词
	presentPattern = regexp.MustCompile(`(?i)present|now|sekarang`)

	// sentenceSplitPattern 朴素的英文分句
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+\s+`)
	// sentenceSplitLoosePattern 把换行也视为句子边界的宽松分句
	sentenceSplitLoosePattern = regexp.MustCompile(`[.!?\n]+`)
)

// indonesianMonths 印尼文月份到英文的翻译，解析前先替换
// 长名在前，避免 "okt" 先于 "oktober" 命中造成残词
var indonesianMonths = []struct{ id, en string }{
	{"januari", "January"}, {"februari", "February"}, {"maret", "March"},
	{"agustus", "August"}, {"oktober", "October"}, {"desember", "December"},
	{"juni", "June"}, {"juli", "July"}, {"mei", "May"},
	{"okt", "Oct"}, {"des", "Dec"},
}

// translateMonths 把日期片段中的印尼月份名换成英文
func translateMonths(s string) string {
	lower := strings.ToLower(s)
	for _, m := range indonesianMonths {
		if idx := strings.Index(lower, m.id); idx >= 0 {
			return s[:idx] + m.en + s[idx+len(m.id):]
		}
	}
	return s
}

// parseFuzzyDate 宽松解析单侧日期，缺失的字段默认取2000年1月
func parseFuzzyDate(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.ReplaceAll(translateMonths(s), ".", ""))

	// 先试显式布局，保证 "Jan 2020" / "2020" 这类最常见形态的确定性
	for _, layout := range []string{"Jan 2006", "January 2006", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() == 0 {
		t = t.AddDate(2000, 0, 0)
	}
	return t, nil
}

// TotalExperienceYears 从原始文本中累计所有日期区间的总经验年数
//
// 每个区间计算起止之间的月份数，单个区间不为负；单个区间解析失败
// 只记日志并跳过，不中断整体计算。结果为月数/12，保留2位小数。
func TotalExperienceYears(raw string, clock Clock) float64 {
	if clock == nil {
		clock = time.Now
	}

	totalMonths := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(raw, -1) {
		startStr, endStr := m[1], m[2]

		start, err := parseFuzzyDate(startStr)
		if err != nil {
			logger.Warn().Err(err).Str("range", startStr+" - "+endStr).Msg("日期区间解析失败，跳过")
			continue
		}

		var end time.Time
		if presentPattern.MatchString(endStr) {
			end = clock()
		} else {
			end, err = parseFuzzyDate(endStr)
			if err != nil {
				logger.Warn().Err(err).Str("range", startStr+" - "+endStr).Msg("日期区间解析失败，跳过")
				continue
			}
		}

		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if months > 0 {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*100) / 100
}

// splitSentences 朴素分句：先按英文句末标点，失败或只有一句时
// 退回把换行也当作边界的宽松切分，仍然没有则把全文视为一句
func splitSentences(text string) []string {
	clean := func(parts []string) []string {
		out := parts[:0]
		for _, p := range parts {
			if strings.TrimSpace(p) != "" {
				out = append(out, p)
			}
		}
		return out
	}

	sentences := clean(sentenceSplitPattern.Split(text, -1))
	if len(sentences) <= 1 {
		sentences = clean(sentenceSplitLoosePattern.Split(text, -1))
	}
	if len(sentences) == 0 {
		sentences = []string{text}
	}
	return sentences
}

// ScoreExperience 基于NER标注密度和行为动词频率计算经验质量分（0-30，保留1位小数）
//
// 各项均设上限：组织(≤3,每个3分)、日期(≤3,每个2分)、地点(≤2,每个2分)、
// 数值实体(≤2,每个2分)、行为动词出现次数(≤5,每次1.5分)，
// 外加句子数量奖励 min(句数/3, 3) 分。
func ScoreExperience(annotations []types.Annotation, raw string) float64 {
	orgs := make(map[string]struct{})
	dates := make(map[string]struct{})
	locations := make(map[string]struct{})
	numerics := 0

	for _, ann := range annotations {
		word := strings.ToLower(ann.Text)
		switch ann.Label {
		case types.LabelOrg:
			orgs[word] = struct{}{}
		case types.LabelDate:
			dates[word] = struct{}{}
		case types.LabelLoc, types.LabelGPE:
			locations[word] = struct{}{}
		case types.LabelMoney, types.LabelPercent, types.LabelCardinal, types.LabelQuantity:
			numerics++
		}
	}

	lower := strings.ToLower(raw)
	verbCount := 0
	for _, verb := range actionVerbs {
		verbCount += strings.Count(lower, verb)
	}

	sentenceBonus := float64(min(len(splitSentences(raw))/3, 3))

	score := float64(min(len(orgs), 3))*3 +
		float64(min(len(dates), 3))*2 +
		float64(min(len(locations), 2))*2 +
		float64(min(numerics, 2))*2 +
		float64(min(verbCount, 5))*1.5 +
		sentenceBonus

	if score > constants.MaxExperienceScore {
		score = constants.MaxExperienceScore
	}
	return math.Round(score*10) / 10
}
