package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize 把所有连续空白（含换行）替换为单个空格并去除首尾空格
// 归一化会破坏行边界，所以按行处理的逻辑必须使用原始文本
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// TitleCase 把字符串转为每个单词首字母大写的形式
// cases.Caser 不是并发安全的，所以每次调用新建
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// stripBullets 去掉行首的项目符号和两端空白
func stripBullets(line string) string {
	return strings.Trim(line, bulletPrefix)
}

// isTitleCased 判断一行是否为标题式大小写：每个以字母开头的词首字母大写
func isTitleCased(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		r := []rune(f)[0]
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

// dedupeCaseInsensitive 保序去重，忽略大小写
func dedupeCaseInsensitive(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
