package parser

import (
	"strings"

	"resume-analyzer-go/internal/types"
)

// SegmentSections 按章节标题把原始文本切分为带标签的段落
//
// 维护一个"当前章节"游标，初始为 general。逐行处理：
// 去掉行两端空白后按定义顺序匹配章节标题规则（只在行首，忽略大小写），
// 命中则把游标切到该章节并重置其累积内容（同类标题后出现者覆盖前者），
// 然后把该行（含标题行本身）追加到当前章节。
// 输出为章节键到按换行拼接文本的映射。
func SegmentSections(raw string) map[types.SectionKey]string {
	lines := strings.Split(raw, "\n")

	sections := map[types.SectionKey][]string{
		types.SectionGeneral: {},
	}
	current := types.SectionGeneral

	for _, line := range lines {
		clean := strings.TrimSpace(line)

		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(clean) {
				current = sp.key
				sections[current] = []string{}
				break
			}
		}

		sections[current] = append(sections[current], clean)
	}

	out := make(map[types.SectionKey]string, len(sections))
	for key, sectionLines := range sections {
		out[key] = strings.Join(sectionLines, "\n")
	}
	return out
}
