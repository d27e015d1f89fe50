package category

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// CategoryCreatedEvent 分類已建立
//
// 沒有對外的整合事件，Mediator 派發時會被略過。
type CategoryCreatedEvent struct {
	shared.BaseEvent
	name     string
	isActive bool
}

// NewCategoryCreatedEvent 建立分類建立事件
func NewCategoryCreatedEvent(c *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.CategoryCreated, c.categoryID.String()),
		name:      c.name,
		isActive:  c.isActive,
	}
}

// Name 分類名稱
func (e *CategoryCreatedEvent) Name() string { return e.name }

// IsActive 是否啟用
func (e *CategoryCreatedEvent) IsActive() bool { return e.isActive }

// CategoryUpdatedEvent 分類已變更
type CategoryUpdatedEvent struct {
	shared.BaseEvent
	name     string
	isActive bool
}

// NewCategoryUpdatedEvent 建立分類變更事件（記錄變更後的狀態）
func NewCategoryUpdatedEvent(c *Category) *CategoryUpdatedEvent {
	return &CategoryUpdatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.CategoryUpdated, c.categoryID.String()),
		name:      c.name,
		isActive:  c.isActive,
	}
}

// Name 分類名稱
func (e *CategoryUpdatedEvent) Name() string { return e.name }

// IsActive 是否啟用
func (e *CategoryUpdatedEvent) IsActive() bool { return e.isActive }
