package events

import (
	"strings"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// 錯誤代碼常量
const (
	ErrCodeUnknownEventKind shared.ErrorCode = "EVENT_KIND_UNKNOWN"
	ErrCodeInvalidHandler   shared.ErrorCode = "EVENT_HANDLER_INVALID"
	ErrCodeDispatchFailed   shared.ErrorCode = "EVENT_DISPATCH_FAILED"
	ErrCodeHandlerPanicked  shared.ErrorCode = "EVENT_HANDLER_PANICKED"
	ErrCodeHandlerNotFound  shared.ErrorCode = "EVENT_HANDLER_NOT_FOUND"
	ErrCodeRetriesExhausted shared.ErrorCode = "EVENT_RETRIES_EXHAUSTED"
)

var (
	// ErrUnknownEventKind 處理器綁定了未登記的事件種類
	ErrUnknownEventKind = &shared.DomainError{
		Code:    ErrCodeUnknownEventKind,
		Message: "未知的事件種類",
	}

	// ErrInvalidHandler 處理器為 nil，或同種事件下名稱重複
	ErrInvalidHandler = &shared.DomainError{
		Code:    ErrCodeInvalidHandler,
		Message: "無效的事件處理器",
	}

	// ErrDispatchFailed 至少一個處理器失敗
	ErrDispatchFailed = &shared.DomainError{
		Code:    ErrCodeDispatchFailed,
		Message: "整合事件派發失敗",
	}

	// ErrHandlerPanicked 處理器發生 panic
	ErrHandlerPanicked = &shared.DomainError{
		Code:    ErrCodeHandlerPanicked,
		Message: "事件處理器異常終止",
	}

	// ErrHandlerNotFound 重試時找不到原處理器
	ErrHandlerNotFound = &shared.DomainError{
		Code:    ErrCodeHandlerNotFound,
		Message: "找不到事件處理器",
	}

	// ErrRetriesExhausted 已用完嘗試次數
	ErrRetriesExhausted = &shared.DomainError{
		Code:    ErrCodeRetriesExhausted,
		Message: "已超過最大嘗試次數",
	}
)

// DispatchError 派發中失敗的處理器調用（逐一列出）
type DispatchError struct {
	Failures []HandlerResult
}

func newDispatchError(results []HandlerResult) error {
	var failures []HandlerResult
	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, r)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &DispatchError{Failures: failures}
}

// Error 實現 error 接口
func (e *DispatchError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Handler+"("+f.EventID()+"): "+f.Err.Error())
	}
	return "[" + string(ErrCodeDispatchFailed) + "] " + ErrDispatchFailed.Message + ": " + strings.Join(parts, "; ")
}

// ErrorCode 實現 shared.CodedError 接口
func (e *DispatchError) ErrorCode() shared.ErrorCode {
	return ErrCodeDispatchFailed
}

// Is 讓 errors.Is(err, ErrDispatchFailed) 成立
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatchFailed
}

// Unwrap 讓 errors.Is / errors.As 可以檢查個別處理器的錯誤
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
