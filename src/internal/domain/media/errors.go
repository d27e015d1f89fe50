package media

import (
	"fmt"
	"strings"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// 錯誤代碼定義
// ===========================

const (
	ErrCodeOversizedFile           shared.ErrorCode = "MEDIA_OVERSIZED_FILE"
	ErrCodeInvalidFileSize         shared.ErrorCode = "MEDIA_FILE_SIZE_INVALID"
	ErrCodeDisallowedMimeType      shared.ErrorCode = "MEDIA_DISALLOWED_MIME_TYPE"
	ErrCodeInvalidMediaName        shared.ErrorCode = "MEDIA_NAME_INVALID"
	ErrCodeInvalidPolicy           shared.ErrorCode = "MEDIA_POLICY_INVALID"
	ErrCodeInvalidStatusTransition shared.ErrorCode = "MEDIA_STATUS_TRANSITION_INVALID"
	ErrCodeCorruptedMedia          shared.ErrorCode = "MEDIA_CORRUPTED"
)

// ===========================
// 預定義錯誤（errors.Is 比對用）
// ===========================

var (
	// ErrOversizedFile 檔案超過大小上限
	ErrOversizedFile = &shared.DomainError{
		Code:    ErrCodeOversizedFile,
		Message: "檔案大小超過上限",
	}

	// ErrInvalidFileSize 檔案大小為負數
	ErrInvalidFileSize = &shared.DomainError{
		Code:    ErrCodeInvalidFileSize,
		Message: "無效的檔案大小",
	}

	// ErrDisallowedMimeType 不允許的 MIME 類型
	ErrDisallowedMimeType = &shared.DomainError{
		Code:    ErrCodeDisallowedMimeType,
		Message: "不允許的檔案類型",
	}

	// ErrInvalidMediaName 檔名為空或只包含路徑
	ErrInvalidMediaName = &shared.DomainError{
		Code:    ErrCodeInvalidMediaName,
		Message: "無效的檔案名稱",
	}

	// ErrInvalidPolicy 媒體策略設定錯誤（上限 <= 0 或沒有允許的類型）
	ErrInvalidPolicy = &shared.DomainError{
		Code:    ErrCodeInvalidPolicy,
		Message: "無效的媒體策略",
	}

	// ErrInvalidMediaStatusTransition 影音處理狀態轉換不合法
	ErrInvalidMediaStatusTransition = &shared.DomainError{
		Code:    ErrCodeInvalidStatusTransition,
		Message: "影音處理狀態轉換不合法",
	}

	// ErrCorruptedMedia 資料庫中的媒體資料不合法
	ErrCorruptedMedia = &shared.DomainError{
		Code:    ErrCodeCorruptedMedia,
		Message: "媒體資料損壞",
	}
)

// ===========================
// 類型化失敗
// ===========================

// OversizedFileError 檔案超過大小上限
type OversizedFileError struct {
	Kind    Kind
	Size    int64
	MaxSize int64
}

// Error 實現 error 接口
func (e *OversizedFileError) Error() string {
	return fmt.Sprintf("[%s] %s: %s 大小 %s MiB，上限 %s MiB",
		ErrCodeOversizedFile, ErrOversizedFile.Message, e.Kind, formatMiB(e.Size), formatMiB(e.MaxSize))
}

// ErrorCode 實現 shared.CodedError 接口
func (e *OversizedFileError) ErrorCode() shared.ErrorCode {
	return ErrCodeOversizedFile
}

// Is 讓 errors.Is(err, ErrOversizedFile) 成立
func (e *OversizedFileError) Is(target error) bool {
	return target == ErrOversizedFile
}

// DisallowedMimeTypeError 不允許的 MIME 類型
type DisallowedMimeTypeError struct {
	Kind     Kind
	MimeType string
	Allowed  []string
}

// Error 實現 error 接口
func (e *DisallowedMimeTypeError) Error() string {
	return fmt.Sprintf("[%s] %s: %s 類型 %q 不在允許清單 [%s]",
		ErrCodeDisallowedMimeType, ErrDisallowedMimeType.Message, e.Kind, e.MimeType, strings.Join(e.Allowed, ", "))
}

// ErrorCode 實現 shared.CodedError 接口
func (e *DisallowedMimeTypeError) ErrorCode() shared.ErrorCode {
	return ErrCodeDisallowedMimeType
}

// Is 讓 errors.Is(err, ErrDisallowedMimeType) 成立
func (e *DisallowedMimeTypeError) Is(target error) bool {
	return target == ErrDisallowedMimeType
}

var bytesPerMiB = decimal.NewFromInt(1 << 20)

// formatMiB 以 MiB 顯示位元組數（兩位小數）
func formatMiB(size int64) string {
	return decimal.NewFromInt(size).Div(bytesPerMiB).StringFixed(2)
}
