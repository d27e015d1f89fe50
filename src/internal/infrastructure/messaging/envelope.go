package messaging

import (
	"encoding/json"
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// Envelope 送往訊息代理的整合事件格式
type Envelope struct {
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewEnvelope 包裝整合事件
func NewEnvelope(event shared.IntegrationEvent) Envelope {
	return Envelope{
		EventID:    event.EventID(),
		EventName:  event.EventName(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    event.Payload(),
	}
}

// Encode 序列化為 JSON
func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}
