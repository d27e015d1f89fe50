package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// VideoRepository 影片倉儲接口
//
// 寫操作 ctx 必須 non-nil（在事務中）；讀操作 ctx 可為 nil。
type VideoRepository interface {
	// Insert 新增影片，主鍵衝突返回 ErrVideoAlreadyExists
	Insert(ctx shared.TransactionContext, video *Video) error

	// Update 更新影片（含媒體與分類），不存在返回 ErrVideoNotFound
	Update(ctx shared.TransactionContext, video *Video) error

	// FindByID 找不到返回 ErrVideoNotFound
	FindByID(ctx shared.TransactionContext, id VideoID) (*Video, error)
}
