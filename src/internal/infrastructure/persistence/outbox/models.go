package outbox

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 投遞狀態
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
	StatusDead      = "dead"
)

// OutboxEntryGORM 提交後發布失敗的整合事件
//
// 每筆對應一次 (事件, 處理器) 的投遞，payload 以 JSON 保存。
type OutboxEntryGORM struct {
	ID         string         `gorm:"column:id;type:varchar(36);primaryKey"`
	EventID    string         `gorm:"column:event_id;type:varchar(36);not null;index"`
	EventName  string         `gorm:"column:event_name;type:varchar(128);not null"`
	Kind       string         `gorm:"column:kind;type:varchar(64);not null"`
	Handler    string         `gorm:"column:handler;type:varchar(128);not null"`
	Payload    datatypes.JSON `gorm:"column:payload"`
	OccurredAt time.Time      `gorm:"column:occurred_at;not null"`
	Attempts   int            `gorm:"column:attempts;not null;default:1"`
	LastError  string         `gorm:"column:last_error;type:text"`
	Status     string         `gorm:"column:status;type:varchar(16);not null;index"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (OutboxEntryGORM) TableName() string {
	return "outbox_entries"
}

// Migrate 建立或更新 outbox 資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OutboxEntryGORM{})
}
