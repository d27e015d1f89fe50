package category

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// Category 聚合根
// ===========================

// Category 影片分類聚合根
//
// 不變條件：
// - name 不可空白，長度 <= 255
// - 命令方法執行對應欄位的驗證，錯誤累積在聚合的 Notification 中，
//   由 Use Case 決定是否中止（不在第一個錯誤時返回）
type Category struct {
	categoryID  CategoryID
	name        string
	description string
	isActive    bool
	createdAt   time.Time

	notification *shared.Notification
	shared.EventRecorder
}

// CreateCategoryProps 建立分類參數
type CreateCategoryProps struct {
	Name        string
	Description string
	IsActive    *bool // nil 表示預設啟用
}

// NewCategory 建立新分類並執行預設驗證組
//
// 總是返回聚合；驗證失敗時 Notification().HasErrors() 為 true。
func NewCategory(props CreateCategoryProps) *Category {
	isActive := true
	if props.IsActive != nil {
		isActive = *props.IsActive
	}

	c := &Category{
		categoryID:   NewCategoryID(),
		name:         props.Name,
		description:  props.Description,
		isActive:     isActive,
		createdAt:    time.Now(),
		notification: shared.NewNotification(),
	}
	c.Validate()
	c.Record(NewCategoryCreatedEvent(c))

	return c
}

// ReconstructCategory 從持久化存儲重建（不發布事件）
func ReconstructCategory(
	categoryID CategoryID,
	name string,
	description string,
	isActive bool,
	createdAt time.Time,
) (*Category, error) {
	if categoryID.IsEmpty() {
		return nil, ErrInvalidCategoryID.WithContext("reason", "invalid category ID in database")
	}

	c := &Category{
		categoryID:   categoryID,
		name:         name,
		description:  description,
		isActive:     isActive,
		createdAt:    createdAt,
		notification: shared.NewNotification(),
	}
	if !c.Validate() {
		return nil, ErrCorruptedCategory.WithContext(
			"category_id", categoryID.String(),
			"errors", c.notification.Errors(),
		)
	}
	return c, nil
}

// ===========================
// 驗證
// ===========================

// Validate 驗證指定欄位（省略時使用預設驗證組），錯誤追加到聚合的 Notification
func (c *Category) Validate(fields ...string) bool {
	return Validator().Validate(c.notification, c, fields)
}

// Notification 返回聚合的錯誤收集器
func (c *Category) Notification() *shared.Notification {
	return c.notification
}

// ValidationError 有錯誤時返回 *shared.EntityValidationError，否則 nil
func (c *Category) ValidationError() error {
	if !c.notification.HasErrors() {
		return nil
	}
	return shared.NewEntityValidationError("Category", c.notification)
}

// ===========================
// 命令方法
// ===========================

// ChangeName 修改名稱（驗證 name 組）
func (c *Category) ChangeName(name string) {
	c.name = name
	c.Validate(FieldName)
	c.Record(NewCategoryUpdatedEvent(c))
}

// ChangeDescription 修改描述
func (c *Category) ChangeDescription(description string) {
	c.description = description
	c.Validate(FieldDescription)
	c.Record(NewCategoryUpdatedEvent(c))
}

// Activate 啟用
func (c *Category) Activate() {
	if c.isActive {
		return
	}
	c.isActive = true
	c.Record(NewCategoryUpdatedEvent(c))
}

// Deactivate 停用
func (c *Category) Deactivate() {
	if !c.isActive {
		return
	}
	c.isActive = false
	c.Record(NewCategoryUpdatedEvent(c))
}

// ===========================
// 查詢方法
// ===========================

// CategoryID 獲取分類 ID
func (c *Category) CategoryID() CategoryID { return c.categoryID }

// Name 獲取名稱
func (c *Category) Name() string { return c.name }

// Description 獲取描述
func (c *Category) Description() string { return c.description }

// IsActive 是否啟用
func (c *Category) IsActive() bool { return c.isActive }

// CreatedAt 獲取創建時間
func (c *Category) CreatedAt() time.Time { return c.createdAt }
