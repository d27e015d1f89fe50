package shared

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// EventKind 領域事件種類（封閉枚舉）
// ===========================

// EventKind 所有領域事件種類
//
// 新增事件必須在此登記，Mediator 以 EventKind 為鍵註冊處理器。
type EventKind int

const (
	EventKindUnknown EventKind = iota
	CategoryCreated
	CategoryUpdated
	VideoCreated
	VideoMediaReplaced
	VideoAudioMediaProcessed
)

var eventKindNames = map[EventKind]string{
	CategoryCreated:          "category.created",
	CategoryUpdated:          "category.updated",
	VideoCreated:             "video.created",
	VideoMediaReplaced:       "video.media_replaced",
	VideoAudioMediaProcessed: "video.audio_media_processed",
}

// String 返回穩定的事件名稱
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid 是否為已登記的事件種類
func (k EventKind) Valid() bool {
	_, ok := eventKindNames[k]
	return ok
}

// ParseEventKind 由事件名稱還原種類，未知名稱返回 EventKindUnknown
func ParseEventKind(name string) EventKind {
	for kind, n := range eventKindNames {
		if n == name {
			return kind
		}
	}
	return EventKindUnknown
}

// AllEventKinds 返回所有已登記的事件種類（依枚舉順序）
func AllEventKinds() []EventKind {
	return []EventKind{
		CategoryCreated,
		CategoryUpdated,
		VideoCreated,
		VideoMediaReplaced,
		VideoAudioMediaProcessed,
	}
}

// ===========================
// DomainEvent / IntegrationEvent
// ===========================

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	Kind() EventKind       // 事件種類
	EventType() string     // 事件名稱（Kind().String()）
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// IntegrationEvent 跨越行程邊界、交給訊息代理的事件
type IntegrationEvent interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
	Payload() any // 必須可被 JSON 序列化
}

// IntegrationEventSource 可轉換為整合事件的領域事件
//
// 返回 false 表示此事件沒有對外的整合事件（1:0）。
type IntegrationEventSource interface {
	ToIntegrationEvent() (IntegrationEvent, bool)
}

// BaseEvent 領域事件共用欄位，具體事件嵌入後只需實作 Kind 以外的業務欄位
type BaseEvent struct {
	eventID     string
	kind        EventKind
	aggregateID string
	occurredAt  time.Time
}

// NewBaseEvent 建立事件基礎資料
func NewBaseEvent(kind EventKind, aggregateID string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New().String(),
		kind:        kind,
		aggregateID: aggregateID,
		occurredAt:  time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e BaseEvent) EventID() string { return e.eventID }

// Kind 實現 DomainEvent 介面
func (e BaseEvent) Kind() EventKind { return e.kind }

// EventType 實現 DomainEvent 介面
func (e BaseEvent) EventType() string { return e.kind.String() }

// OccurredAt 實現 DomainEvent 介面
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 實現 DomainEvent 介面
func (e BaseEvent) AggregateID() string { return e.aggregateID }

// BaseIntegrationEvent 通用整合事件
type BaseIntegrationEvent struct {
	eventID    string
	eventName  string
	occurredAt time.Time
	payload    any
}

// NewIntegrationEvent 由來源領域事件建立整合事件（沿用事件 ID 方便下游去重）
func NewIntegrationEvent(source DomainEvent, eventName string, payload any) *BaseIntegrationEvent {
	return &BaseIntegrationEvent{
		eventID:    source.EventID(),
		eventName:  eventName,
		occurredAt: source.OccurredAt(),
		payload:    payload,
	}
}

// RestoreIntegrationEvent 從重試帳本還原整合事件
func RestoreIntegrationEvent(eventID, eventName string, occurredAt time.Time, payload any) *BaseIntegrationEvent {
	return &BaseIntegrationEvent{
		eventID:    eventID,
		eventName:  eventName,
		occurredAt: occurredAt,
		payload:    payload,
	}
}

// EventID 實現 IntegrationEvent 介面
func (e *BaseIntegrationEvent) EventID() string { return e.eventID }

// EventName 實現 IntegrationEvent 介面
func (e *BaseIntegrationEvent) EventName() string { return e.eventName }

// OccurredAt 實現 IntegrationEvent 介面
func (e *BaseIntegrationEvent) OccurredAt() time.Time { return e.occurredAt }

// Payload 實現 IntegrationEvent 介面
func (e *BaseIntegrationEvent) Payload() any { return e.payload }

// ===========================
// 聚合根事件緩衝
// ===========================

// AggregateRoot 具有待發布事件的聚合根
type AggregateRoot interface {
	PullEvents() []DomainEvent
}

// EventRecorder 可嵌入聚合根的事件緩衝區
//
// 事件依記錄順序保存，PullEvents 取出後清空，避免重複發布。
type EventRecorder struct {
	events []DomainEvent
}

// Record 記錄領域事件（聚合根內部使用）
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (r *EventRecorder) PullEvents() []DomainEvent {
	events := r.events
	r.events = nil
	if events == nil {
		return []DomainEvent{}
	}
	return events
}

// PendingEvents 查看待發布事件（不清空）
func (r *EventRecorder) PendingEvents() []DomainEvent {
	return append([]DomainEvent(nil), r.events...)
}
