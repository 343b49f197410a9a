package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"resume-analyzer-go/internal/types"
)

// PDFTextExtractor 使用 Eino PDF Parser 提取文本
type PDFTextExtractor struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// PDFOption PDF提取器的配置选项
type PDFOption func(*PDFTextExtractor)

// WithPDFLogger 配置自定义日志记录器
func WithPDFLogger(logger *log.Logger) PDFOption {
	return func(e *PDFTextExtractor) {
		e.logger = logger
	}
}

// NewPDFTextExtractor 初始化 PDF 文本提取器
// 按页切分，逐页文本用换行符拼接，空白页贡献空字符串而不是被跳过
func NewPDFTextExtractor(ctx context.Context, options ...PDFOption) (*PDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF parser: %w", err)
	}

	extractor := &PDFTextExtractor{
		parser: p,
		logger: log.New(os.Stderr, "[PDF解析器] ", log.LstdFlags),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractFromBytes 从PDF字节缓冲中提取文本，返回原始文本与归一化文本
// 字节不是合法的PDF容器时返回错误，由调用方决定如何向上传播
func (e *PDFTextExtractor) ExtractFromBytes(ctx context.Context, data []byte) (types.ExtractedText, error) {
	startTime := time.Now()

	text, err := e.extractFromReader(ctx, bytes.NewReader(data))
	duration := time.Since(startTime)
	if err != nil {
		e.logger.Printf("PDF处理失败: %s (用时 %.2f秒)", err, duration.Seconds())
		return types.ExtractedText{}, err
	}

	e.logger.Printf("PDF处理完成: 提取了 %d 个字符 (用时 %.2f秒)", len(text), duration.Seconds())
	return types.ExtractedText{
		Raw:        text,
		Normalized: Normalize(text),
	}, nil
}

func (e *PDFTextExtractor) extractFromReader(ctx context.Context, reader io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI("resume.pdf"),
	)
	if err != nil {
		return "", fmt.Errorf("PDF parser failed: %w", err)
	}

	// 每个文档对应一页，逐页拼接，空页保留为空字符串
	var buf bytes.Buffer
	for i, doc := range docs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(doc.Content)
	}
	return buf.String(), nil
}
