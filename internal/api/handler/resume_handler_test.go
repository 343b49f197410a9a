package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/ner"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/processor"
	"resume-analyzer-go/internal/recommender"
	"resume-analyzer-go/internal/types"
)

const handlerSampleResume = `Budi Santoso
Jakarta, Indonesia

Work Experience
Software Engineer at PT Telkom Indonesia
Jan 2020 - Dec 2022

Keterampilan
Python, SQL, Machine Learning`

// stubExtractor 避开真实PDF解析，返回固定文本或固定错误
type stubExtractor struct {
	text types.ExtractedText
	err  error
}

func (s *stubExtractor) ExtractFromBytes(_ context.Context, _ []byte) (types.ExtractedText, error) {
	return s.text, s.err
}

type passAllSkills struct{}

func (passAllSkills) Contains(string) bool       { return true }
func (passAllSkills) Filter(c []string) []string { return c }

func newTestEngine(t *testing.T, extractor processor.PDFExtractor) *server.Hertz {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	annotator, err := ner.NewAnnotator("")
	require.NoError(t, err)

	analyzer := processor.NewResumeAnalyzer([]processor.ComponentOpt{
		processor.WithcompPdfextractor(extractor),
		processor.WithcompAnnotator(annotator),
		processor.WithcompSkills(passAllSkills{}),
		processor.WithcompEngine(recommender.NewEngine(&recommender.ExactStrategy{})),
	})

	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	rg := h.Group("/api/v1")
	rg.POST("/resume/upload", NewResumeHandler(cfg, analyzer).HandleResumeUpload)
	return h
}

func healthyExtractor() *stubExtractor {
	return &stubExtractor{text: types.ExtractedText{
		Raw:        handlerSampleResume,
		Normalized: parser.Normalize(handlerSampleResume),
	}}
}

// createResumeForm 构造multipart表单，fieldName为空时不写入文件
func createResumeForm(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func performUpload(h *server.Hertz, body *bytes.Buffer, contentType string) *ut.ResponseRecorder {
	return ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/upload",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
}

func TestHandleResumeUpload_Success(t *testing.T) {
	h := newTestEngine(t, healthyExtractor())

	body, contentType := createResumeForm(t, constants.ResumeFormField, "resume.pdf", []byte("%PDF-1.4 fake"))
	resp := performUpload(h, body, contentType)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Header().Get(constants.AnalysisIDHeader))
	assert.Contains(t, string(resp.Body.Bytes()), "Budi Santoso")
	assert.Contains(t, string(resp.Body.Bytes()), "analysis_id")
}

func TestHandleResumeUpload_NoFileField(t *testing.T) {
	h := newTestEngine(t, healthyExtractor())

	body, contentType := createResumeForm(t, "", "", nil)
	resp := performUpload(h, body, contentType)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, string(resp.Body.Bytes()))
}

func TestHandleResumeUpload_EmptyFilename(t *testing.T) {
	h := newTestEngine(t, healthyExtractor())

	// CreateFormFile 无法产生空文件名，手工构造 filename="" 的分部
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="resume"; filename=""`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp := performUpload(h, body, writer.FormDataContentType())

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No selected file"}`, string(resp.Body.Bytes()))
}

func TestHandleResumeUpload_WrongExtension(t *testing.T) {
	h := newTestEngine(t, healthyExtractor())

	body, contentType := createResumeForm(t, constants.ResumeFormField, "resume.docx", []byte("doc content"))
	resp := performUpload(h, body, contentType)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Only PDF files are supported"}`, string(resp.Body.Bytes()))
}

func TestHandleResumeUpload_EmptyFile(t *testing.T) {
	h := newTestEngine(t, healthyExtractor())

	body, contentType := createResumeForm(t, constants.ResumeFormField, "resume.pdf", nil)
	resp := performUpload(h, body, contentType)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Uploaded file is empty"}`, string(resp.Body.Bytes()))
}

func TestHandleResumeUpload_FileTooLarge(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Upload.MaxFileSizeMB = 1

	annotator, err := ner.NewAnnotator("")
	require.NoError(t, err)
	analyzer := processor.NewResumeAnalyzer([]processor.ComponentOpt{
		processor.WithcompPdfextractor(healthyExtractor()),
		processor.WithcompAnnotator(annotator),
		processor.WithcompSkills(passAllSkills{}),
		processor.WithcompEngine(recommender.NewEngine(&recommender.ExactStrategy{})),
	})

	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	h.Group("/api/v1").POST("/resume/upload", NewResumeHandler(cfg, analyzer).HandleResumeUpload)

	oversized := bytes.Repeat([]byte("a"), 2<<20)
	body, contentType := createResumeForm(t, constants.ResumeFormField, "resume.pdf", oversized)
	resp := performUpload(h, body, contentType)

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	assert.JSONEq(t, `{"error":"File terlalu besar"}`, string(resp.Body.Bytes()))
}

func TestHandleResumeUpload_PipelineFailure(t *testing.T) {
	h := newTestEngine(t, &stubExtractor{err: errors.New("corrupt container")})

	body, contentType := createResumeForm(t, constants.ResumeFormField, "resume.pdf", []byte("broken"))
	resp := performUpload(h, body, contentType)

	// 内部细节不允许泄露到响应里
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to parse resume"}`, string(resp.Body.Bytes()))
	assert.NotContains(t, string(resp.Body.Bytes()), "corrupt container")
}
