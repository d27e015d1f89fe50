package category

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// CategoryGORM 分類資料表模型
//
// 資料庫約束：
// - category_id: 主鍵（UUID）
// - name: 不可為空，最長 255 字元
type CategoryGORM struct {
	CategoryID  string    `gorm:"column:category_id;type:varchar(36);primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (CategoryGORM) TableName() string {
	return "categories"
}

// Migrate 建立或更新分類資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CategoryGORM{})
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合（資料違反不變條件時返回 ErrCorruptedCategory）
func (m *CategoryGORM) toDomain() (*category.Category, error) {
	categoryID, err := category.CategoryIDFromString(m.CategoryID)
	if err != nil {
		return nil, err
	}

	return category.ReconstructCategory(
		categoryID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
	)
}

// toGORM 將 Domain 聚合轉換為 GORM 模型
func toGORM(c *category.Category) *CategoryGORM {
	return &CategoryGORM{
		CategoryID:  c.CategoryID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
