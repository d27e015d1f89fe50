package category

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// CategoryRepository 分類倉儲接口
//
// 寫操作 ctx 必須 non-nil（在事務中）；讀操作 ctx 可為 nil。
type CategoryRepository interface {
	// Insert 新增分類，主鍵衝突返回 ErrCategoryAlreadyExists
	Insert(ctx shared.TransactionContext, category *Category) error

	// Update 更新分類，不存在返回 ErrCategoryNotFound
	Update(ctx shared.TransactionContext, category *Category) error

	// FindByID 找不到返回 ErrCategoryNotFound
	FindByID(ctx shared.TransactionContext, id CategoryID) (*Category, error)

	// ExistsByIDs 返回不存在的 ID（全部存在時為空）
	ExistsByIDs(ctx shared.TransactionContext, ids []CategoryID) (missing []CategoryID, err error)
}
