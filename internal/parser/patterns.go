package parser

import (
	"regexp"

	"resume-analyzer-go/internal/types"
)

// 抽取规则统一定义在这里，每条规则可以被单独测试

// skillSectionKeywords 技能章节关键词（英文+印尼文）
var skillSectionKeywords = []string{
	"skills", "keterampilan", "kemampuan", "proficiencies", "keahlian",
	"kompetensi", "technical skills", "keahlian teknis", "soft skills",
	"keahlian soft", "hard skills", "keahlian hard", "expertise",
	"spesialisasi", "specializations", "skill set", "skillset",
	"capabilities", "kualifikasi",
}

var (
	// emailPattern 标准 local@domain 邮箱
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

	// phonePattern 印尼手机号：+62 后跟3-4位的三组数字，允许空格或连字符分隔
	phonePattern = regexp.MustCompile(`\+62[\s\-]?\d{3,4}[\s\-]?\d{3,4}[\s\-]?\d{3,4}`)

	// linkPattern URL类token：http(s)、www. 前缀或裸 *.com/* 路径
	linkPattern = regexp.MustCompile(`https?://[^\s]+|www\.[^\s]+|[^\s]+\.com/[^\s]+`)

	// skillSectionPattern 技能关键词后跟冒号/空白，捕获到空行或文本结尾
	skillSectionPattern = regexp.MustCompile(`(?is)(` + joinAlternation(skillSectionKeywords) + `)[\s:]*\n?(.*?)(\n\n|\z)`)

	// skillSplitPattern 技能行内的分隔符：逗号、竖线、实心圆点
	skillSplitPattern = regexp.MustCompile(`[,|\x{2022}]`)

	// bulletPrefix 行首的项目符号
	bulletPrefix = "-•–~ \t"

	// degreePattern 学历/院校关键词加之后至多80个非换行字符，到换行或逗号为止
	degreePattern = regexp.MustCompile(`(?i)(SMA|SMK|Sarjana|S1|S2|S3|Bachelor|Master|Doctor|Universitas|Institut|College|Academy|Diploma)[^\n,]{0,80}`)

	// projectTitlePattern "project/proyek/karya: <标题>" 形式的行
	projectTitlePattern = regexp.MustCompile(`(?i)^(?:project|proyek|karya)\s*[:\-]\s*(.+)$`)

	// roleAtCompanyPattern "<职位> at/di/@ <公司>" 形式的行，捕获职位
	roleAtCompanyPattern = regexp.MustCompile(`(?i)^(.{2,60}?)\s+(?:at|di|@)\s+\S.*$`)

	// whitespaceRun 连续空白（含换行）
	whitespaceRun = regexp.MustCompile(`\s+`)

	// nameNoisePattern 人名中不允许出现的内容：数字、@、.com
	nameNoisePattern = regexp.MustCompile(`(?i)\d|@|\.com`)

	// nonDigitPattern 非数字字符，电话号码归一化时剥除
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// sectionPattern 章节标题匹配规则，按定义顺序逐一尝试
type sectionPattern struct {
	key     types.SectionKey
	pattern *regexp.Regexp
}

// sectionPatterns 章节标题的多关键词匹配（英文+印尼文），只在行首匹配
var sectionPatterns = []sectionPattern{
	{types.SectionExperience, regexp.MustCompile(`(?i)^(work experience|pengalaman kerja|pengalaman|riwayat pekerjaan|freelance|internship|magang|career history|experiences|experience|riwayat karir)`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)^(education|pendidikan|academic background|riwayat pendidikan|educational background|academic history|academic qualifications|educations|qualifications|kualifikasi|academic credentials|academic achievements)`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)^(skills|keterampilan|keahlian|kemampuan|proficiencies|technical skills|soft skills|hard skills|expertise|skill set|capabilities)`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)^(projects|portfolio|projek|proyek|project experience|project history|project portfolio|project work|project details|capstones|project contributions|project showcases|project highlights)`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)^(certifications|sertifikat|licenses|lisensi|certificates|professional certifications|professional licenses|professional certificates|professional qualifications|professional accreditations|professional credentials)`)},
}

// actionVerbs 行为动词（英文+印尼文），用于经验打分和项目行识别
var actionVerbs = []string{
	"develop", "manage", "lead", "create", "optimize", "analyze", "design",
	"build", "coordinate", "supervise", "plan", "initiate", "execute",
	"implement", "improve",
	"mengembangkan", "mengelola", "memimpin", "membuat", "merancang",
	"membangun", "mengoptimalkan", "menganalisis", "mengkoordinasi",
	"merencanakan", "melaksanakan", "meningkatkan",
}

// joinAlternation 把关键词列表拼成正则的可选分支
func joinAlternation(keywords []string) string {
	out := ""
	for i, kw := range keywords {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(kw)
	}
	return out
}
