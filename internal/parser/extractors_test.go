package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer-go/internal/types"
)

func TestExtractName_FromAnnotations(t *testing.T) {
	annotations := []types.Annotation{
		{Text: "Budi Santoso", Label: types.LabelPerson},
		{Text: "budi santoso", Label: types.LabelPerson}, // 重复，忽略大小写去重
		{Text: "PT Telkom", Label: types.LabelOrg},       // 非PERSON，忽略
	}

	name := ExtractName(annotations, "some other first line here with many words")
	assert.Equal(t, "Budi Santoso", name)
}

func TestExtractName_SkipsNoisyPersonEntities(t *testing.T) {
	annotations := []types.Annotation{
		{Text: "budi123", Label: types.LabelPerson},
		{Text: "budi@mail.com", Label: types.LabelPerson},
	}

	// 所有PERSON实体都被噪声规则过滤，回退到第一行
	name := ExtractName(annotations, "Siti Rahma\nJakarta")
	assert.Equal(t, "Siti Rahma", name)
}

func TestExtractName_FallbackRespectsWordLimit(t *testing.T) {
	// 第一行不超过5个词时作为姓名
	assert.Equal(t, "Budi Santoso", ExtractName(nil, "Budi Santoso\nJakarta"))

	// 超过5个词的第一行不视为姓名
	assert.Equal(t, "", ExtractName(nil, "this first line has way too many words to be a name"))
}

func TestExtractEmail(t *testing.T) {
	email := ExtractEmail("Contact: budi.santoso@gmail.com Jakarta")
	require.NotNil(t, email)
	assert.Equal(t, "budi.santoso@gmail.com", *email)

	assert.Nil(t, ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	phone := ExtractPhone("Telepon: +62 812-3456-7890 Jakarta")
	require.NotNil(t, phone)
	// 规范化后只剩数字，国家码62开头
	assert.Equal(t, "6281234567890", *phone)

	assert.Nil(t, ExtractPhone("no phone number"))
}

func TestExtractLinks(t *testing.T) {
	text := "Profil: https://linkedin.com/in/budisantoso, https://github.com/budisantoso proyek lain"
	linkedin, github := ExtractLinks(text)

	require.NotNil(t, linkedin)
	require.NotNil(t, github)
	// 结尾的逗号被去掉
	assert.Equal(t, "https://linkedin.com/in/budisantoso", *linkedin)
	assert.Equal(t, "https://github.com/budisantoso", *github)
}

func TestExtractLinks_Missing(t *testing.T) {
	linkedin, github := ExtractLinks("hanya teks biasa tanpa tautan")
	assert.Nil(t, linkedin)
	assert.Nil(t, github)
}

func TestExtractSkills(t *testing.T) {
	normalized := Normalize("Budi Santoso\nKeterampilan: python, sql, machine learning")
	skills := ExtractSkills(normalized)

	// 标题式大小写、忽略大小写去重、字典序
	assert.Equal(t, []string{"Machine Learning", "Python", "Sql"}, skills)
}

func TestExtractSkills_FiltersUnreasonableFragments(t *testing.T) {
	normalized := Normalize("Skills: go, C4, python3, sql, aws")
	skills := ExtractSkills(normalized)

	// "go"太短、含数字的片段被丢弃
	assert.NotContains(t, skills, "Go")
	assert.NotContains(t, skills, "C4")
	assert.NotContains(t, skills, "Python3")
	assert.Contains(t, skills, "Sql")
	assert.Contains(t, skills, "Aws")
}

func TestExtractEducation(t *testing.T) {
	section := "Education\nS1 Teknik Informatika Universitas Indonesia\nSMA Negeri 1 Jakarta"
	entries := ExtractEducation(section)

	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0], "S1 Teknik Informatika")
}

func TestExtractProjects(t *testing.T) {
	section := "Projects\n- Project: Sistem Absensi Online\n- Developed a realtime dashboard for monitoring\nx\n- a"
	projects := ExtractProjects(section)

	assert.Contains(t, projects, "Sistem Absensi Online")
	assert.Contains(t, projects, "Developed a realtime dashboard for monitoring")
	// 过短的行被丢弃
	assert.Len(t, projects, 3)
}

func TestExtractExperienceItems(t *testing.T) {
	section := "Experience\nSoftware Engineer at PT Telkom Indonesia\nData Analyst\nsome lowercase noise line that is long"
	items := ExtractExperienceItems(section)

	// "at"形式捕获职位部分
	assert.Contains(t, items, "Software Engineer")
	// 职位名形式的行整行保留
	assert.Contains(t, items, "Data Analyst")
	// 全小写长句不像职位名
	assert.NotContains(t, items, "some lowercase noise line that is long")
}
