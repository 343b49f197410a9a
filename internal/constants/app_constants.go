package constants

const (
	// 上传表单中简历文件的字段名
	ResumeFormField = "resume"

	// 响应头中携带本次分析UUID的键
	AnalysisIDHeader = "X-Analysis-ID"

	// 经验质量分数上限
	MaxExperienceScore = 30.0
	// 推荐技能数量默认上限
	DefaultTopN = 10
)
