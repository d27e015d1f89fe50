package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// VideoMarker 是 VideoID 的標記類型
type VideoMarker struct{}

// VideoID 影片的唯一標識符
type VideoID = shared.EntityID[VideoMarker]

// NewVideoID 生成新的影片 ID（UUID v4）
func NewVideoID() VideoID {
	return shared.NewEntityID[VideoMarker]()
}

// VideoIDFromString 從字串解析影片 ID（失敗返回 ErrInvalidVideoID）
func VideoIDFromString(s string) (VideoID, error) {
	return shared.EntityIDFromString[VideoMarker](s, ErrInvalidVideoID)
}
