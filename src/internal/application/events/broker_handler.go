package events

import (
	"context"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// MessageBroker 外部訊息代理（傳輸與重送保證由代理自行負責）
type MessageBroker interface {
	PublishEvent(ctx context.Context, event shared.IntegrationEvent) error
}

// BrokerHandler 把整合事件轉交給訊息代理
//
// 每次調用恰好發出一次 PublishEvent，不重試。
type BrokerHandler struct {
	kind   shared.EventKind
	name   string
	broker MessageBroker
}

// NewBrokerHandler 建立綁定單一事件種類的代理處理器
func NewBrokerHandler(kind shared.EventKind, broker MessageBroker) *BrokerHandler {
	return &BrokerHandler{
		kind:   kind,
		name:   "broker:" + kind.String(),
		broker: broker,
	}
}

// Kind 實現 IntegrationEventHandler
func (h *BrokerHandler) Kind() shared.EventKind { return h.kind }

// Name 實現 IntegrationEventHandler
func (h *BrokerHandler) Name() string { return h.name }

// Handle 實現 IntegrationEventHandler
func (h *BrokerHandler) Handle(ctx context.Context, event shared.IntegrationEvent) error {
	return h.broker.PublishEvent(ctx, event)
}
