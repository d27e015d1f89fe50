package video

import "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeInvalidVideoID     shared.ErrorCode = "VIDEO_ID_INVALID"
	ErrCodeVideoNotFound      shared.ErrorCode = "VIDEO_NOT_FOUND"
	ErrCodeVideoAlreadyExists shared.ErrorCode = "VIDEO_ALREADY_EXISTS"
	ErrCodeCorruptedVideo     shared.ErrorCode = "VIDEO_CORRUPTED"
	ErrCodeInvalidRating      shared.ErrorCode = "VIDEO_RATING_INVALID"
	ErrCodeMediaKindMismatch  shared.ErrorCode = "VIDEO_MEDIA_KIND_MISMATCH"
	ErrCodeMediaNotSet        shared.ErrorCode = "VIDEO_MEDIA_NOT_SET"
	ErrCodeMissingPolicy      shared.ErrorCode = "VIDEO_MEDIA_POLICY_MISSING"
)

var (
	// ErrInvalidVideoID 無效的影片 ID
	ErrInvalidVideoID = &shared.DomainError{
		Code:    ErrCodeInvalidVideoID,
		Message: "無效的影片 ID",
	}

	// ErrVideoNotFound 影片不存在
	ErrVideoNotFound = &shared.DomainError{
		Code:    ErrCodeVideoNotFound,
		Message: "影片不存在",
	}

	// ErrVideoAlreadyExists 影片已存在（主鍵衝突）
	ErrVideoAlreadyExists = &shared.DomainError{
		Code:    ErrCodeVideoAlreadyExists,
		Message: "影片已存在",
	}

	// ErrCorruptedVideo 資料庫中的影片資料違反不變條件
	ErrCorruptedVideo = &shared.DomainError{
		Code:    ErrCodeCorruptedVideo,
		Message: "影片資料損壞",
	}

	// ErrInvalidRating 不支援的分級
	ErrInvalidRating = &shared.DomainError{
		Code:    ErrCodeInvalidRating,
		Message: "無效的影片分級",
	}

	// ErrMediaKindMismatch 媒體種類與目標欄位不符
	ErrMediaKindMismatch = &shared.DomainError{
		Code:    ErrCodeMediaKindMismatch,
		Message: "媒體種類與欄位不符",
	}

	// ErrMediaNotSet 影片尚未設定該影音媒體
	ErrMediaNotSet = &shared.DomainError{
		Code:    ErrCodeMediaNotSet,
		Message: "影片尚未上傳此媒體",
	}

	// ErrMissingPolicy 缺少某種媒體的策略
	ErrMissingPolicy = &shared.DomainError{
		Code:    ErrCodeMissingPolicy,
		Message: "缺少媒體策略",
	}
)
