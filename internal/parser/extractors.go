package parser

import (
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"resume-analyzer-go/internal/types"
)

// 所有字段提取器都是文档状态（原始文本/归一化文本/NER标注）上的纯函数

// ExtractName 从NER标注中提取候选人姓名
// 优先使用PERSON实体：过滤掉含数字/@/.com 的片段，忽略大小写去重并保持首次出现顺序。
// 没有PERSON实体时回退到原始文本的第一行，但仅当该行不超过5个词时才视为姓名行。
func ExtractName(annotations []types.Annotation, raw string) string {
	var cleaned []string
	for _, ann := range annotations {
		if ann.Label != types.LabelPerson {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(ann.Text, "_", " "))
		if name == "" || nameNoisePattern.MatchString(name) {
			continue
		}
		cleaned = append(cleaned, name)
	}
	cleaned = dedupeCaseInsensitive(cleaned)
	if len(cleaned) > 0 {
		return strings.TrimSpace(strings.Join(cleaned, " "))
	}

	// 回退到简历第一行
	firstLine := strings.TrimSpace(strings.SplitN(strings.TrimSpace(raw), "\n", 2)[0])
	if len(strings.Fields(firstLine)) <= 5 {
		return firstLine
	}
	return ""
}

// ExtractEmail 返回归一化文本中的第一个邮箱，找不到时为nil
func ExtractEmail(normalized string) *string {
	match := emailPattern.FindString(normalized)
	if match == "" {
		return nil
	}
	return &match
}

// ExtractPhone 返回归一化文本中的第一个印尼手机号，去掉所有非数字字符
// 正则命中后交给 phonenumbers 做规范化，库解析失败时退回手工剥离
func ExtractPhone(normalized string) *string {
	match := phonePattern.FindString(normalized)
	if match == "" {
		return nil
	}

	digits := ""
	if num, err := phonenumbers.Parse(match, "ID"); err == nil {
		digits = strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+")
	} else {
		digits = nonDigitPattern.ReplaceAllString(match, "")
	}
	if digits == "" {
		return nil
	}
	return &digits
}

// ExtractLinks 扫描所有URL类token，返回(LinkedIn, GitHub)链接
// 分别取第一个包含 linkedin.com / github.com 的链接，去掉结尾的句点和逗号
func ExtractLinks(normalized string) (linkedin, github *string) {
	for _, link := range linkPattern.FindAllString(normalized, -1) {
		trimmed := strings.Trim(link, ".,")
		if linkedin == nil && strings.Contains(trimmed, "linkedin.com") {
			l := trimmed
			linkedin = &l
		}
		if github == nil && strings.Contains(trimmed, "github.com") {
			g := trimmed
			github = &g
		}
	}
	return linkedin, github
}

// isReasonableSkill 技能片段的长度和内容限制
func isReasonableSkill(skill string) bool {
	if len(skill) <= 2 || len(skill) > 50 {
		return false
	}
	return !strings.ContainsAny(skill, "0123456789")
}

// ExtractSkills 在整个归一化文本中定位技能关键词并解析其后的技能列表
// 标题可能出现在行内，所以扫描全文而不只是技能章节。
// 每个捕获段按换行拆分、剥掉项目符号、再按逗号/竖线/圆点拆分，
// 片段转为标题式大小写，保留长度(2,50]且不含数字的片段。
// 忽略大小写去重后按字典序返回。
func ExtractSkills(normalized string) []string {
	var candidates []string
	for _, m := range skillSectionPattern.FindAllStringSubmatch(normalized, -1) {
		content := m[2]
		for _, line := range strings.Split(content, "\n") {
			line = stripBullets(strings.TrimSpace(line))
			for _, frag := range skillSplitPattern.Split(line, -1) {
				candidates = append(candidates, strings.TrimSpace(frag))
			}
		}
	}

	seen := make(map[string]struct{})
	var skills []string
	for _, c := range candidates {
		if !isReasonableSkill(c) {
			continue
		}
		titled := TitleCase(c)
		key := strings.ToLower(titled)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, titled)
	}
	sort.Strings(skills)
	return skills
}

// ExtractEducation 在教育章节中匹配学历/院校关键词及其后至多80个字符
func ExtractEducation(educationText string) []string {
	matches := degreePattern.FindAllString(educationText, -1)
	for i, m := range matches {
		matches[i] = strings.TrimSpace(m)
	}
	return dedupeCaseInsensitive(matches)
}

// startsWithActionVerb 判断一行是否以行为动词（英/印尼）开头
func startsWithActionVerb(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	first := fields[0]
	for _, verb := range actionVerbs {
		if strings.HasPrefix(first, verb) {
			return true
		}
	}
	return false
}

// ExtractProjects 从项目章节中提取项目条目
// 对每个去掉项目符号后长度大于5的行：
// 命中 "project/proyek/karya: <标题>" 时取标题；
// 以行为动词开头时取整行；标题式大小写或不超过6个词时取整行；否则丢弃。
func ExtractProjects(projectText string) []string {
	var items []string
	for _, line := range strings.Split(projectText, "\n") {
		line = stripBullets(strings.TrimSpace(line))
		if len(line) <= 5 {
			continue
		}

		if m := projectTitlePattern.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		if startsWithActionVerb(line) || isTitleCased(line) || len(strings.Fields(line)) <= 6 {
			items = append(items, line)
		}
	}

	return filterMinLength(dedupeCaseInsensitive(items), 5)
}

// looksLikeJobTitle 2-8个词且前两个词首字母大写
func looksLikeJobTitle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 8 {
		return false
	}
	for _, f := range fields[:2] {
		r := []rune(f)[0]
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

// ExtractExperienceItems 从工作经历章节中提取经历条目
// 优先匹配 "<职位> at/di/@ <公司>" 并捕获职位，否则接受形如职位名的行
func ExtractExperienceItems(experienceText string) []string {
	var items []string
	for _, line := range strings.Split(experienceText, "\n") {
		line = stripBullets(strings.TrimSpace(line))
		if len(line) <= 5 {
			continue
		}

		if m := roleAtCompanyPattern.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		if looksLikeJobTitle(line) {
			items = append(items, line)
		}
	}

	return filterMinLength(dedupeCaseInsensitive(items), 5)
}

// filterMinLength 去掉长度小于min的条目
func filterMinLength(items []string, min int) []string {
	out := items[:0]
	for _, it := range items {
		if len(it) >= min {
			out = append(out, it)
		}
	}
	return out
}
