package category

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// CategoryMarker 是 CategoryID 的標記類型
type CategoryMarker struct{}

// CategoryID 分類的唯一標識符
type CategoryID = shared.EntityID[CategoryMarker]

// NewCategoryID 生成新的分類 ID（UUID v4）
func NewCategoryID() CategoryID {
	return shared.NewEntityID[CategoryMarker]()
}

// CategoryIDFromString 從字串解析分類 ID（失敗返回 ErrInvalidCategoryID）
func CategoryIDFromString(s string) (CategoryID, error) {
	return shared.EntityIDFromString[CategoryMarker](s, ErrInvalidCategoryID)
}
