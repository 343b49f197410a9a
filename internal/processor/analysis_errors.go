package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnreadablePDF = errors.New("提取简历文本失败")
	ErrEmptyDocument = errors.New("简历文本为空")
)

// AnalysisError 包含详细错误信息的自定义错误
type AnalysisError struct {
	AnalysisID string
	Op         string
	BaseErr    error
	Detail     string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, ID:%s): %s", e.BaseErr, e.Op, e.AnalysisID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, ID:%s)", e.BaseErr, e.Op, e.AnalysisID)
}

func (e *AnalysisError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnalysisError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewExtractError(analysisID, detail string) error {
	return &AnalysisError{
		AnalysisID: analysisID,
		Op:         "extract",
		BaseErr:    ErrUnreadablePDF,
		Detail:     detail,
	}
}

func NewEmptyDocumentError(analysisID string) error {
	return &AnalysisError{
		AnalysisID: analysisID,
		Op:         "extract",
		BaseErr:    ErrEmptyDocument,
	}
}
