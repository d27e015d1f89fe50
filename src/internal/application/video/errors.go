package video

import "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeInvalidMediaField  shared.ErrorCode = "VIDEO_MEDIA_FIELD_INVALID"
	ErrCodeInvalidMediaStatus shared.ErrorCode = "VIDEO_MEDIA_STATUS_INVALID"
)

var (
	// ErrInvalidMediaField 指令中的媒體欄位不存在或不適用
	ErrInvalidMediaField = &shared.DomainError{
		Code:    ErrCodeInvalidMediaField,
		Message: "無效的媒體欄位",
	}

	// ErrInvalidMediaStatus 轉檔回報的狀態不支援
	ErrInvalidMediaStatus = &shared.DomainError{
		Code:    ErrCodeInvalidMediaStatus,
		Message: "無效的轉檔狀態",
	}
)
