package messaging

import (
	"context"
	"sync"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// MemoryBroker 行程內訊息代理（本機開發與測試用）
type MemoryBroker struct {
	mu        sync.Mutex
	published []Envelope
	failWith  error
}

// NewMemoryBroker 創建行程內訊息代理
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{}
}

// PublishEvent 實現 events.MessageBroker
func (b *MemoryBroker) PublishEvent(ctx context.Context, event shared.IntegrationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWith != nil {
		return b.failWith
	}
	b.published = append(b.published, NewEnvelope(event))
	return nil
}

// FailWith 之後的發布都返回 err（nil 恢復正常）
func (b *MemoryBroker) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWith = err
}

// Published 已發布的事件（依發布順序）
func (b *MemoryBroker) Published() []Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Envelope(nil), b.published...)
}
