package category

import "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeInvalidCategoryID     shared.ErrorCode = "CATEGORY_ID_INVALID"
	ErrCodeCategoryNotFound      shared.ErrorCode = "CATEGORY_NOT_FOUND"
	ErrCodeCategoryAlreadyExists shared.ErrorCode = "CATEGORY_ALREADY_EXISTS"
	ErrCodeCorruptedCategory     shared.ErrorCode = "CATEGORY_CORRUPTED"
)

var (
	// ErrInvalidCategoryID 無效的分類 ID
	ErrInvalidCategoryID = &shared.DomainError{
		Code:    ErrCodeInvalidCategoryID,
		Message: "無效的分類 ID",
	}

	// ErrCategoryNotFound 分類不存在
	ErrCategoryNotFound = &shared.DomainError{
		Code:    ErrCodeCategoryNotFound,
		Message: "分類不存在",
	}

	// ErrCategoryAlreadyExists 分類已存在（主鍵衝突）
	ErrCategoryAlreadyExists = &shared.DomainError{
		Code:    ErrCodeCategoryAlreadyExists,
		Message: "分類已存在",
	}

	// ErrCorruptedCategory 資料庫中的分類資料違反不變條件
	ErrCorruptedCategory = &shared.DomainError{
		Code:    ErrCodeCorruptedCategory,
		Message: "分類資料損壞",
	}
)
