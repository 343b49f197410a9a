package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// 测试环境下找不到配置文件时返回默认配置
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "exact", cfg.Recommender.Strategy)
	assert.Equal(t, 10, cfg.Recommender.TopN)
	assert.InDelta(t, 0.85, cfg.Recommender.FuzzyThreshold, 0.001)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  address: ":9090"
upload:
  max_file_size_mb: 5
recommender:
  strategy: "fuzzy"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "fuzzy", cfg.Recommender.Strategy)
	// 未设置的字段回落到默认值
	assert.Equal(t, 30, cfg.Upload.RequestTimeoutSeconds)
	assert.Equal(t, "datasets/job_skills.csv", cfg.SkillCache.DatasetCSV)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \":9090\"\n"), 0o644))

	t.Setenv("RESUME_ANALYZER_ADDR", ":7070")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestConfig_DerivedValues(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, int64(10<<20), cfg.MaxFileSizeBytes())
}

func TestCreateSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, CreateSampleConfig(path))

	// 已存在的文件不允许覆盖
	assert.Error(t, CreateSampleConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
}
