// Package storage 提供技能关键词库的构建与缓存
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-analyzer-go/internal/logger"
)

// ErrNoSkillSource 缓存文件与CSV数据集都不可用
var ErrNoSkillSource = errors.New("技能关键词库不可用")

// skillColumn CSV数据集中技能列的表头名
const skillColumn = "job_skills"

// SkillSet 技能关键词集合，加载完成后只读，可并发查询
type SkillSet struct {
	skills []string
	index  map[string]struct{}
}

// LoadSkillSet 加载技能关键词库
// 优先读取JSON缓存文件；缓存缺失或损坏时从CSV数据集重建并写回缓存。
// 两个来源都不可用时返回 ErrNoSkillSource，调用方应视为致命错误。
func LoadSkillSet(cacheFile, csvPath string) (*SkillSet, error) {
	if skills, err := loadCache(cacheFile); err == nil {
		logger.Info().Str("cache", cacheFile).Int("count", len(skills)).Msg("技能关键词库已从缓存加载")
		return newSkillSet(skills), nil
	}

	skills, err := buildFromCSV(csvPath)
	if err != nil {
		return nil, fmt.Errorf("%w: 缓存 %s 与数据集 %s 均无法加载: %v",
			ErrNoSkillSource, cacheFile, csvPath, err)
	}

	if err := writeCache(cacheFile, skills); err != nil {
		// 缓存写入失败不阻塞启动，下次启动重建即可
		logger.Warn().Err(err).Msg("技能关键词缓存写入失败")
	}
	logger.Info().Str("dataset", csvPath).Int("count", len(skills)).Msg("技能关键词库已从数据集构建")
	return newSkillSet(skills), nil
}

func newSkillSet(skills []string) *SkillSet {
	index := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		index[strings.ToLower(s)] = struct{}{}
	}
	return &SkillSet{skills: skills, index: index}
}

// Contains 大小写不敏感的成员查询
func (s *SkillSet) Contains(skill string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Len 关键词总数
func (s *SkillSet) Len() int {
	return len(s.skills)
}

// All 返回排序后的全部关键词，调用方不得修改
func (s *SkillSet) All() []string {
	return s.skills
}

// Filter 返回候选列表中存在于关键词库里的项，保持输入顺序
func (s *SkillSet) Filter(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func loadCache(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("解析缓存文件: %w", err)
	}
	if len(skills) == 0 {
		return nil, errors.New("缓存文件为空")
	}
	return skills, nil
}

func writeCache(path string, skills []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// buildFromCSV 从数据集CSV构建关键词列表
// 技能列中每个单元格是逗号分隔的技能串，逐项清洗后去重排序
func buildFromCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头: %w", err)
	}
	column := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), skillColumn) {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("CSV缺少 %s 列", skillColumn)
	}

	titler := cases.Title(language.English)
	seen := make(map[string]struct{})
	var skills []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取CSV记录: %w", err)
		}
		if column >= len(record) {
			continue
		}
		for _, raw := range strings.Split(record[column], ",") {
			skill := titler.String(strings.TrimSpace(raw))
			if len(skill) <= 2 || len(skill) > 50 {
				continue
			}
			key := strings.ToLower(skill)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, skill)
		}
	}

	if len(skills) == 0 {
		return nil, errors.New("数据集中没有可用的技能关键词")
	}
	sort.Strings(skills)
	return skills, nil
}
