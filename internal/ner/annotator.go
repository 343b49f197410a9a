package ner

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"resume-analyzer-go/internal/types"
)

// ErrModelUnavailable 词表加载失败，标注器无法工作，进程不允许启动
var ErrModelUnavailable = errors.New("NER标注器初始化失败")

// Annotator 基于词表和模式的命名实体标注器
// 进程生命周期内初始化一次，之后只读，可被多个请求并发使用
type Annotator struct {
	lexicon   *Lexicon
	headLines int
}

// Option 标注器的配置选项
type Option func(*Annotator)

// WithHeadLines 配置在文档头部多少行内搜索人名
func WithHeadLines(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.headLines = n
		}
	}
}

// NewAnnotator 创建标注器，lexiconPath为空时使用内置词表
func NewAnnotator(lexiconPath string, options ...Option) (*Annotator, error) {
	lex, err := LoadLexicon(lexiconPath)
	if err != nil {
		return nil, err
	}

	a := &Annotator{
		lexicon:   lex,
		headLines: 10,
	}
	for _, option := range options {
		option(a)
	}
	return a, nil
}

var (
	// capitalizedRun 1-4个首字母大写词组成的连续片段
	capitalizedRun = regexp.MustCompile(`\p{Lu}[\p{L}'&.]*(?:[ ]\p{Lu}[\p{L}'&.]*){0,3}`)

	// nerDatePattern 月份+年份或独立年份
	nerDatePattern = regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Mei|Jun|Jul|Aug|Agu|Sep|Oct|Okt|Nov|Dec|Des)[a-z]*\.?\s?(?:19|20)\d{2}\b|\b(?:19|20)\d{2}\b`)

	// moneyPattern 印尼盾/美元金额
	moneyPattern = regexp.MustCompile(`(?i)(?:Rp\.?\s?|USD\s?|\$\s?)\d[\d.,]*`)

	// percentPattern 百分比
	percentPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?\s?%`)

	// quantityPattern 数字+单位
	quantityPattern = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s?(?:tahun|years?|bulan|months?|orang|users?|juta|ribu|million|thousand)\b`)

	// cardinalPattern 独立数字
	cardinalPattern = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\b`)

	// noisyLine 含数字/@/URL的行不参与人名识别
	noisyLine = regexp.MustCompile(`(?i)\d|@|https?://|www\.|\.com`)
)

// Annotate 对一份文档做一次NER标注，返回按出现位置排序的实体列表
func (a *Annotator) Annotate(text types.ExtractedText) []types.Annotation {
	collector := newSpanCollector()

	// 优先级高的模式先占据区间，后续重叠的标注被丢弃
	collector.addAll(text.Raw, moneyPattern, types.LabelMoney)
	collector.addAll(text.Raw, percentPattern, types.LabelPercent)
	collector.addAll(text.Raw, nerDatePattern, types.LabelDate)

	a.annotateCapitalizedRuns(text, collector)

	collector.addAll(text.Raw, quantityPattern, types.LabelQuantity)
	collector.addAll(text.Raw, cardinalPattern, types.LabelCardinal)

	anns := collector.annotations
	sort.SliceStable(anns, func(i, j int) bool { return anns[i].Start < anns[j].Start })
	return anns
}

// annotateCapitalizedRuns 扫描大写词片段并区分 PERSON/ORG/LOC/GPE
//
// 人名只在文档头部识别：限定前 headLines 行，且在首个章节标题行处截止，
// 含数字/@/URL的行被跳过。组织和地点在全文识别。
func (a *Annotator) annotateCapitalizedRuns(text types.ExtractedText, collector *spanCollector) {
	lines := strings.Split(text.Raw, "\n")
	offset := 0
	inHead := true

	for i, line := range lines {
		if i >= a.headLines {
			inHead = false
		}
		for _, field := range strings.Fields(strings.TrimSpace(line)) {
			if a.lexicon.isHeadingWord(strings.Trim(field, ":")) {
				inHead = false
				break
			}
		}

		for _, loc := range capitalizedRun.FindAllStringIndex(line, -1) {
			phrase := line[loc[0]:loc[1]]
			start := offset + loc[0]
			end := offset + loc[1]

			label, ok := a.classifyRun(phrase, inHead && !noisyLine.MatchString(line))
			if ok {
				collector.add(types.Annotation{Text: phrase, Label: label, Start: start, End: end})
			}
		}

		offset += len(line) + 1 // 换行符
	}
}

// classifyRun 给一个大写词片段定标签
func (a *Annotator) classifyRun(phrase string, personAllowed bool) (types.AnnotationLabel, bool) {
	if a.lexicon.isCity(phrase) {
		return types.LabelLoc, true
	}
	if a.lexicon.isCountry(phrase) {
		return types.LabelGPE, true
	}

	tokens := strings.Fields(phrase)
	for _, tok := range tokens {
		if a.lexicon.isOrgKeyword(tok) {
			return types.LabelOrg, true
		}
	}
	// 末词全大写（如 Corp、ABC 之外的缩写）不影响分类，这里只看词表

	if personAllowed {
		for _, tok := range tokens {
			if a.lexicon.isNameStopword(tok) {
				return "", false
			}
		}
		if len(tokens) >= 2 && len(tokens) <= 4 {
			return types.LabelPerson, true
		}
	}
	return "", false
}

// spanCollector 收集标注并拒绝与已有标注重叠的新标注
type spanCollector struct {
	annotations []types.Annotation
}

func newSpanCollector() *spanCollector {
	return &spanCollector{}
}

func (c *spanCollector) overlaps(start, end int) bool {
	for _, ann := range c.annotations {
		if start < ann.End && end > ann.Start {
			return true
		}
	}
	return false
}

func (c *spanCollector) add(ann types.Annotation) {
	if c.overlaps(ann.Start, ann.End) {
		return
	}
	c.annotations = append(c.annotations, ann)
}

func (c *spanCollector) addAll(text string, pattern *regexp.Regexp, label types.AnnotationLabel) {
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		c.add(types.Annotation{
			Text:  text[loc[0]:loc[1]],
			Label: label,
			Start: loc[0],
			End:   loc[1],
		})
	}
}
