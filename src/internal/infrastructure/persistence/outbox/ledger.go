package outbox

import (
	"context"
	"encoding/json"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ===========================
// Ledger 重試帳本（GORM）
// ===========================

// Ledger 以資料表實作 events.RetryLedger
type Ledger struct {
	db *gorm.DB
}

// NewLedger 創建重試帳本
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

var _ events.RetryLedger = (*Ledger)(nil)

// RecordFailure 保存一次失敗的處理器調用
func (l *Ledger) RecordFailure(ctx context.Context, result events.HandlerResult) error {
	payload, err := json.Marshal(result.Event.Payload())
	if err != nil {
		return shared.ErrRepository.WithContext(
			"operation", "marshal outbox payload",
			"event_id", result.EventID(),
			"error", err.Error(),
		)
	}

	entry := &OutboxEntryGORM{
		ID:         uuid.NewString(),
		EventID:    result.EventID(),
		EventName:  result.Event.EventName(),
		Kind:       result.Kind.String(),
		Handler:    result.Handler,
		Payload:    datatypes.JSON(payload),
		OccurredAt: result.Event.OccurredAt(),
		Attempts:   1,
		LastError:  errorText(result.Err),
		Status:     StatusPending,
	}
	if err := l.db.WithContext(ctx).Create(entry).Error; err != nil {
		return persistence.RepositoryError("insert outbox entry", err)
	}
	return nil
}

// Pending 取出最早的待重送項目
func (l *Ledger) Pending(ctx context.Context, limit int) ([]events.PendingDelivery, error) {
	var entries []OutboxEntryGORM
	if err := l.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, persistence.RepositoryError("load pending outbox entries", err)
	}

	out := make([]events.PendingDelivery, 0, len(entries))
	for _, e := range entries {
		out = append(out, events.PendingDelivery{
			ID: e.ID,
			Event: shared.RestoreIntegrationEvent(
				e.EventID,
				e.EventName,
				e.OccurredAt,
				json.RawMessage(e.Payload),
			),
			Kind:     shared.ParseEventKind(e.Kind),
			Handler:  e.Handler,
			Attempts: e.Attempts,
		})
	}
	return out, nil
}

// MarkDelivered 重送成功
func (l *Ledger) MarkDelivered(ctx context.Context, id string) error {
	return l.update(ctx, id, map[string]interface{}{
		"status": StatusDelivered,
	})
}

// MarkRetryFailed 重送失敗，累加嘗試次數
func (l *Ledger) MarkRetryFailed(ctx context.Context, id string, cause error, dead bool) error {
	status := StatusPending
	if dead {
		status = StatusDead
	}
	return l.update(ctx, id, map[string]interface{}{
		"status":     status,
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": errorText(cause),
	})
}

func (l *Ledger) update(ctx context.Context, id string, values map[string]interface{}) error {
	result := l.db.WithContext(ctx).
		Model(&OutboxEntryGORM{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return persistence.RepositoryError("update outbox entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrEntityNotFound.WithContext("outbox_entry_id", id)
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
