package category

import (
	"errors"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// CategoryRepositoryImpl
// ===========================

// CategoryRepositoryImpl 分類倉儲實現（GORM）
//
// ctx 為 GORM 事務時參與事務，否則使用注入的 db（auto-commit）。
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository 創建分類倉儲
func NewCategoryRepository(db *gorm.DB) category.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// Insert 新增分類
//
// 錯誤處理：
// - 主鍵衝突 → ErrCategoryAlreadyExists
func (r *CategoryRepositoryImpl) Insert(ctx shared.TransactionContext, c *category.Category) error {
	db := persistence.DBFrom(ctx, r.db)

	if err := db.Create(toGORM(c)).Error; err != nil {
		if persistence.IsUniqueConstraintError(err) {
			return category.ErrCategoryAlreadyExists.WithContext(
				"category_id", c.CategoryID().String(),
			)
		}
		return persistence.RepositoryError("insert category", err)
	}
	return nil
}

// Update 更新分類的可變欄位
//
// 錯誤處理：
// - 沒有任何資料列受影響 → ErrCategoryNotFound
func (r *CategoryRepositoryImpl) Update(ctx shared.TransactionContext, c *category.Category) error {
	db := persistence.DBFrom(ctx, r.db)

	m := toGORM(c)
	result := db.Model(&CategoryGORM{}).
		Where("category_id = ?", m.CategoryID).
		Select("name", "description", "is_active", "updated_at").
		Updates(m)
	if result.Error != nil {
		return persistence.RepositoryError("update category", result.Error)
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound.WithContext(
			"category_id", m.CategoryID,
		)
	}
	return nil
}

// FindByID 根據分類 ID 查找
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → ErrCategoryNotFound
func (r *CategoryRepositoryImpl) FindByID(ctx shared.TransactionContext, id category.CategoryID) (*category.Category, error) {
	db := persistence.DBFrom(ctx, r.db)

	var m CategoryGORM
	result := db.Where("category_id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound.WithContext(
				"category_id", id.String(),
			)
		}
		return nil, persistence.RepositoryError("find category", result.Error)
	}

	return m.toDomain()
}

// ExistsByIDs 檢查分類是否存在，返回不存在的 ID（保持輸入順序）
func (r *CategoryRepositoryImpl) ExistsByIDs(ctx shared.TransactionContext, ids []category.CategoryID) ([]category.CategoryID, error) {
	if len(ids) == 0 {
		return []category.CategoryID{}, nil
	}
	db := persistence.DBFrom(ctx, r.db)

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var found []string
	if err := db.Model(&CategoryGORM{}).
		Where("category_id IN ?", raw).
		Pluck("category_id", &found).Error; err != nil {
		return nil, persistence.RepositoryError("check categories", err)
	}

	existing := make(map[string]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	missing := make([]category.CategoryID, 0)
	for _, id := range ids {
		if _, ok := existing[id.String()]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
