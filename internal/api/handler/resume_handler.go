package handler

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/processor"
)

// ResumeHandler 简历上传与分析处理器
type ResumeHandler struct {
	cfg      *config.Config
	analyzer *processor.ResumeAnalyzer
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(cfg *config.Config, analyzer *processor.ResumeAnalyzer) *ResumeHandler {
	return &ResumeHandler{
		cfg:      cfg,
		analyzer: analyzer,
	}
}

// HandleResumeUpload 处理简历上传请求
// 校验顺序：表单字段 -> 文件名 -> 扩展名 -> 内容非空 -> 大小上限
func (h *ResumeHandler) HandleResumeUpload(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile(constants.ResumeFormField)
	if err != nil {
		// filename="" 的multipart分部会被解析成普通form值而不是文件
		if form, formErr := ctx.MultipartForm(); formErr == nil {
			if _, ok := form.Value[constants.ResumeFormField]; ok {
				ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No selected file"})
				return
			}
		}
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No selected file"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Only PDF files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("打开上传文件失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to parse resume"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("读取上传文件失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to parse resume"})
		return
	}
	if len(fileBytes) == 0 {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Uploaded file is empty"})
		return
	}
	if int64(len(fileBytes)) > h.cfg.MaxFileSizeBytes() {
		ctx.JSON(consts.StatusRequestEntityTooLarge, utils.H{"error": "File terlalu besar"})
		return
	}

	analysisCtx, cancel := context.WithTimeout(c, h.cfg.RequestTimeout())
	defer cancel()

	profile, err := h.analyzer.Analyze(analysisCtx, fileBytes)
	if err != nil {
		// 详细原因只进日志，响应保持统一文案
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("简历分析失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Failed to parse resume"})
		return
	}

	ctx.Header(constants.AnalysisIDHeader, profile.AnalysisID)
	ctx.JSON(consts.StatusOK, profile)
}
