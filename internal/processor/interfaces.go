package processor

import (
	"context"

	"resume-analyzer-go/internal/types"
)

//
// PDF解析相关接口
//

// PDFExtractor PDF提取器接口
type PDFExtractor interface {
	// ExtractFromBytes 从字节数组提取原始文本与规整文本
	ExtractFromBytes(ctx context.Context, data []byte) (types.ExtractedText, error)
}

//
// 实体标注相关接口
//

// EntityAnnotator 命名实体标注器接口
type EntityAnnotator interface {
	Annotate(text types.ExtractedText) []types.Annotation
}

//
// 技能过滤相关接口
//

// SkillFilter 技能关键词库查询接口
type SkillFilter interface {
	// Contains 大小写不敏感的成员查询
	Contains(skill string) bool
	// Filter 返回候选列表中存在于关键词库里的项，保持输入顺序
	Filter(candidates []string) []string
}
