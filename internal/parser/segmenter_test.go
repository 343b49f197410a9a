package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-analyzer-go/internal/types"
)

const sampleResume = `Budi Santoso
Jakarta, Indonesia

Work Experience
Software Engineer at Gojek
Jan 2020 - Dec 2022

Education
S1 Teknik Informatika Universitas Indonesia

Keterampilan
Python, SQL, Machine Learning

Projects
- Sistem Absensi Online`

func TestSegmentSections_AssignsLinesToHeadings(t *testing.T) {
	sections := SegmentSections(sampleResume)

	assert.Contains(t, sections[types.SectionGeneral], "Budi Santoso")
	assert.Contains(t, sections[types.SectionExperience], "Software Engineer at Gojek")
	assert.Contains(t, sections[types.SectionEducation], "Universitas Indonesia")
	assert.Contains(t, sections[types.SectionSkills], "Python, SQL, Machine Learning")
	assert.Contains(t, sections[types.SectionProjects], "Sistem Absensi Online")
}

func TestSegmentSections_EveryLineLandsSomewhere(t *testing.T) {
	sections := SegmentSections(sampleResume)

	// 所有行都必须归属某个章节，不允许丢行
	total := 0
	for _, content := range sections {
		total += len(strings.Split(content, "\n"))
	}
	assert.Equal(t, len(strings.Split(sampleResume, "\n")), total)
}

func TestSegmentSections_CarryForward(t *testing.T) {
	raw := "Experience\nline one\nline two\nline three"
	sections := SegmentSections(raw)

	// 没有新标题出现时后续行持续归入当前章节
	assert.Contains(t, sections[types.SectionExperience], "line one")
	assert.Contains(t, sections[types.SectionExperience], "line three")
}

func TestSegmentSections_NoHeadings(t *testing.T) {
	sections := SegmentSections("just some text\nwithout any headings")

	assert.Contains(t, sections[types.SectionGeneral], "just some text")
	_, hasExperience := sections[types.SectionExperience]
	assert.False(t, hasExperience)
}

func TestSegmentSections_IndonesianHeadings(t *testing.T) {
	raw := "Pengalaman Kerja\nBackend Developer di Tokopedia\n\nPendidikan\nS1 Sistem Informasi"
	sections := SegmentSections(raw)

	assert.Contains(t, sections[types.SectionExperience], "Backend Developer di Tokopedia")
	assert.Contains(t, sections[types.SectionEducation], "S1 Sistem Informasi")
}
