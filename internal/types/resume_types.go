package types

// SectionKey 表示简历章节的键
type SectionKey string

const (
	// SectionGeneral 未归类内容章节（在任何标题出现之前）
	SectionGeneral SectionKey = "general"
	// SectionExperience 工作经历章节
	SectionExperience SectionKey = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionKey = "education"
	// SectionSkills 技能章节
	SectionSkills SectionKey = "skills"
	// SectionProjects 项目经历章节
	SectionProjects SectionKey = "projects"
	// SectionCertifications 证书章节
	SectionCertifications SectionKey = "certifications"
)

// ExtractedText PDF提取后的文本表示
// Raw 保留原始换行，供章节分割和日期范围提取使用
// Normalized 把所有空白压缩为单个空格并去除首尾空格，供正则提取使用
type ExtractedText struct {
	Raw        string
	Normalized string
}

// AnnotationLabel 命名实体标签
type AnnotationLabel string

const (
	LabelPerson   AnnotationLabel = "PERSON"
	LabelOrg      AnnotationLabel = "ORG"
	LabelDate     AnnotationLabel = "DATE"
	LabelLoc      AnnotationLabel = "LOC"
	LabelGPE      AnnotationLabel = "GPE"
	LabelMoney    AnnotationLabel = "MONEY"
	LabelPercent  AnnotationLabel = "PERCENT"
	LabelCardinal AnnotationLabel = "CARDINAL"
	LabelQuantity AnnotationLabel = "QUANTITY"
)

// Annotation NER识别出的一个命名实体，产生后只读
type Annotation struct {
	Text  string          `json:"text"`
	Label AnnotationLabel `json:"label"`
	Start int             `json:"start"`
	End   int             `json:"end"`
}

// FieldMatch 单个职业领域的匹配结果
type FieldMatch struct {
	Field         string   `json:"field"`
	MatchedSkills []string `json:"matched_skills"`
	MatchPercent  float64  `json:"match_percent"`
}

// CandidateProfile 单份简历分析的完整输出记录
// 每次请求创建一份全新实例，请求结束即丢弃，不做并发修改
type CandidateProfile struct {
	AnalysisID string `json:"analysis_id"`

	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`

	Skills          []string `json:"skills"`
	Education       []string `json:"education"`
	ExperienceItems []string `json:"experience_items"`
	Projects        []string `json:"projects"`

	TotalExperienceYears float64 `json:"total_experience_years"`
	ExperienceScore      float64 `json:"experience_score"`
	ResumeScore          float64 `json:"resume_score"`
	CompletenessScore    float64 `json:"completeness_score"`

	RecommendedField  *string      `json:"recommended_field"`
	MatchedSkills     []string     `json:"matched_field_skills"`
	FieldMatchPercent float64      `json:"field_match_percent"`
	AlternativeFields []FieldMatch `json:"alternative_fields"`

	RecommendedSkills  []string `json:"recommended_skills"`
	RecommendedCourses []string `json:"recommended_courses"`
	ResumeVideoURL     string   `json:"resume_video_url"`
	InterviewVideoURL  string   `json:"interview_video_url"`

	OverallScore float64 `json:"overall_score"`
}
