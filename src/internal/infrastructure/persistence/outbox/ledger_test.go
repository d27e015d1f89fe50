package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/logger"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
)

type uploadedPayload struct {
	VideoID     string `json:"video_id"`
	MediaType   string `json:"media_type"`
	NewLocation string `json:"new_location"`
}

func newFailure(handler string) events.HandlerResult {
	ev := shared.RestoreIntegrationEvent(
		"evt-1",
		"video.audio_media_uploaded",
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		uploadedPayload{VideoID: "v-1", MediaType: "trailer", NewLocation: "videos/v-1/trailers/a.mp4"},
	)
	return events.HandlerResult{
		Event:   ev,
		Kind:    shared.VideoMediaReplaced,
		Handler: handler,
		Err:     errors.New("broker unavailable"),
	}
}

func newTestLedger(t *testing.T) (*Ledger, func() []OutboxEntryGORM) {
	db := persistence.SetupTestDB(t, &OutboxEntryGORM{})
	all := func() []OutboxEntryGORM {
		var entries []OutboxEntryGORM
		require.NoError(t, db.Order("created_at ASC").Find(&entries).Error)
		return entries
	}
	return NewLedger(db), all
}

func TestLedger_DatabaseErrors_AreRepositoryErrors(t *testing.T) {
	// 沒有遷移資料表，所有操作都會失敗
	ledger := NewLedger(persistence.SetupTestDB(t))
	ctx := context.Background()

	_, err := ledger.Pending(ctx, 10)
	assert.ErrorIs(t, err, shared.ErrRepository)

	err = ledger.RecordFailure(ctx, newFailure("broker:video.media_replaced"))
	assert.ErrorIs(t, err, shared.ErrRepository)

	err = ledger.MarkDelivered(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrRepository)
}

func TestLedger_RecordFailure_ThenPending(t *testing.T) {
	// Arrange
	ledger, all := newTestLedger(t)
	ctx := context.Background()

	// Act
	require.NoError(t, ledger.RecordFailure(ctx, newFailure("broker:video.media_replaced")))
	pending, err := ledger.Pending(ctx, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, pending, 1)
	p := pending[0]
	assert.Equal(t, shared.VideoMediaReplaced, p.Kind)
	assert.Equal(t, "broker:video.media_replaced", p.Handler)
	assert.Equal(t, 1, p.Attempts)
	assert.Equal(t, "evt-1", p.Event.EventID())
	assert.Equal(t, "video.audio_media_uploaded", p.Event.EventName())
	assert.True(t, p.Event.OccurredAt().Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	raw, ok := p.Event.Payload().(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"video_id":"v-1","media_type":"trailer","new_location":"videos/v-1/trailers/a.mp4"}`, string(raw))

	entries := all()
	require.Len(t, entries, 1)
	assert.Equal(t, "broker unavailable", entries[0].LastError)
	assert.Equal(t, StatusPending, entries[0].Status)
}

func TestLedger_MarkDelivered_RemovesFromPending(t *testing.T) {
	ledger, all := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, ledger.RecordFailure(ctx, newFailure("h")))
	pending, err := ledger.Pending(ctx, 10)
	require.NoError(t, err)

	require.NoError(t, ledger.MarkDelivered(ctx, pending[0].ID))

	pending, err = ledger.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, StatusDelivered, all()[0].Status)
}

func TestLedger_MarkRetryFailed_IncrementsAttempts(t *testing.T) {
	ledger, all := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, ledger.RecordFailure(ctx, newFailure("h")))
	pending, _ := ledger.Pending(ctx, 10)
	id := pending[0].ID

	require.NoError(t, ledger.MarkRetryFailed(ctx, id, errors.New("still down"), false))

	pending, err := ledger.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].Attempts)
	assert.Equal(t, "still down", all()[0].LastError)

	require.NoError(t, ledger.MarkRetryFailed(ctx, id, errors.New("gone"), true))

	pending, err = ledger.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, StatusDead, all()[0].Status)
	assert.Equal(t, 3, all()[0].Attempts)
}

func TestLedger_Pending_RespectsLimit(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, ledger.RecordFailure(ctx, newFailure("h")))
	}

	pending, err := ledger.Pending(ctx, 2)

	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestLedger_MarkDelivered_UnknownID(t *testing.T) {
	ledger, _ := newTestLedger(t)

	err := ledger.MarkDelivered(context.Background(), "missing")

	assert.ErrorIs(t, err, shared.ErrEntityNotFound)
}

func TestLedger_WorksWithOutboxRelay(t *testing.T) {
	// Arrange
	ledger, all := newTestLedger(t)
	ctx := context.Background()
	handler := &fakeHandler{}
	mediator := events.NewMediator(0)
	require.NoError(t, mediator.Register(handler))
	require.NoError(t, ledger.RecordFailure(ctx, newFailure(handler.Name())))
	relay := events.NewOutboxRelay(mediator, ledger, logger.NewNop(), events.RelayConfig{MaxAttempts: 3})

	// Act
	stats, err := relay.RunOnce(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, StatusDelivered, all()[0].Status)
	require.Len(t, handler.received, 1)
	assert.Equal(t, "evt-1", handler.received[0].EventID())
}

type fakeHandler struct {
	received []shared.IntegrationEvent
}

func (h *fakeHandler) Kind() shared.EventKind { return shared.VideoMediaReplaced }
func (h *fakeHandler) Name() string           { return "fake" }
func (h *fakeHandler) Handle(_ context.Context, ev shared.IntegrationEvent) error {
	h.received = append(h.received, ev)
	return nil
}
