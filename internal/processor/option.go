package processor

import (
	"math/rand"
	"time"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/recommender"
)

// Components 分析流水线依赖的外部组件
type Components struct {
	PDFExtractor PDFExtractor
	Annotator    EntityAnnotator
	Skills       SkillFilter
	Engine       *recommender.Engine
}

// Settings 分析流水线的运行设置
type Settings struct {
	// Clock 取当前时间，"至今"类日期区间依赖它收尾
	Clock parser.Clock
	// NewRand 每次分析创建独立随机源，推荐结果的洗牌与选取依赖它
	NewRand func() *rand.Rand
}

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// WithcompPdfextractor 设置PDF提取器组件
func WithcompPdfextractor(extractor PDFExtractor) ComponentOpt {
	return func(c *Components) {
		c.PDFExtractor = extractor
	}
}

// WithcompAnnotator 设置实体标注器组件
func WithcompAnnotator(annotator EntityAnnotator) ComponentOpt {
	return func(c *Components) {
		c.Annotator = annotator
	}
}

// WithcompSkills 设置技能关键词库组件
func WithcompSkills(skills SkillFilter) ComponentOpt {
	return func(c *Components) {
		c.Skills = skills
	}
}

// WithcompEngine 设置推荐引擎组件
func WithcompEngine(engine *recommender.Engine) ComponentOpt {
	return func(c *Components) {
		c.Engine = engine
	}
}

// WithsetClock 设置时钟，测试中用于冻结"至今"的含义
func WithsetClock(clock parser.Clock) SettingOpt {
	return func(s *Settings) {
		s.Clock = clock
	}
}

// WithsetRandFactory 设置随机源工厂，测试中用于固定种子
func WithsetRandFactory(factory func() *rand.Rand) SettingOpt {
	return func(s *Settings) {
		s.NewRand = factory
	}
}

func defaultSettings() Settings {
	return Settings{
		Clock: time.Now,
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}
