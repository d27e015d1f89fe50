package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryapp "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/category"
	videoapp "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/video"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/config"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/logger"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/messaging"
)

func newTestApp(t *testing.T) (*App, *messaging.MemoryBroker) {
	t.Helper()
	cfg := config.Default()
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg.Database.MaxOpenConns = 1
	cfg.Database.LogLevel = "silent"
	cfg.Outbox.MaxAttempts = 3
	require.NoError(t, cfg.Validate())

	a, err := New(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	broker, ok := a.Broker.(*messaging.MemoryBroker)
	require.True(t, ok)
	return a, broker
}

func createVideo(t *testing.T, a *App) *videoapp.VideoOutput {
	t.Helper()
	ctx := context.Background()

	cat, err := a.UseCases.CreateCategory.Execute(ctx, categoryapp.CreateCategoryCommand{Name: "Movie"})
	require.NoError(t, err)

	v, err := a.UseCases.CreateVideo.Execute(ctx, videoapp.CreateVideoCommand{
		Title:        "The Movie",
		YearLaunched: 2020,
		Duration:     90,
		Rating:       "12",
		CategoryIDs:  []string{cat.ID},
	})
	require.NoError(t, err)
	return v
}

func replace(t *testing.T, a *App, videoID, field string) *videoapp.ReplaceVideoMediaResult {
	t.Helper()
	res, err := a.UseCases.ReplaceVideoMedia.Execute(context.Background(), videoapp.ReplaceVideoMediaCommand{
		VideoID: videoID,
		Field:   field,
		File:    videoapp.UploadedFile{RawName: field + ".mp4", MimeType: "video/mp4", Size: 1024},
	})
	require.NoError(t, err)
	return res
}

func payloadOf(t *testing.T, env messaging.Envelope) map[string]string {
	t.Helper()
	raw, err := json.Marshal(env.Payload)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestApp_ReplaceTrailer_PublishesAudioMediaUploadedOnce(t *testing.T) {
	// Arrange
	a, broker := newTestApp(t)
	v := createVideo(t, a)
	require.Empty(t, broker.Published(), "video creation has no integration event")

	// Act
	replace(t, a, v.ID, "trailer")

	// Assert
	published := broker.Published()
	require.Len(t, published, 1)
	assert.Equal(t, "video.audio_media_uploaded", published[0].EventName)
	payload := payloadOf(t, published[0])
	assert.Equal(t, v.ID, payload["video_id"])
	assert.Equal(t, "trailer", payload["media_type"])
	assert.Contains(t, payload["new_location"], "videos/"+v.ID)
}

func TestApp_ReplaceBanner_PublishesNothing(t *testing.T) {
	a, broker := newTestApp(t)
	v := createVideo(t, a)

	_, err := a.UseCases.ReplaceVideoMedia.Execute(context.Background(), videoapp.ReplaceVideoMediaCommand{
		VideoID: v.ID,
		Field:   "banner",
		File:    videoapp.UploadedFile{RawName: "banner.png", MimeType: "image/png", Size: 1024},
	})

	require.NoError(t, err)
	assert.Empty(t, broker.Published())
	got, err := a.UseCases.GetVideo.Execute(videoapp.GetVideoQuery{ID: v.ID})
	require.NoError(t, err)
	require.NotNil(t, got.Banner)
	assert.Equal(t, "banner", got.Banner.Kind)
}

func TestApp_BrokerFailure_IsRetriedByRelay(t *testing.T) {
	// Arrange
	a, broker := newTestApp(t)
	v := createVideo(t, a)
	broker.FailWith(errors.New("broker down"))

	// Act: 發布失敗但命令已提交
	replace(t, a, v.ID, "video")
	got, err := a.UseCases.GetVideo.Execute(videoapp.GetVideoQuery{ID: v.ID})
	require.NoError(t, err)
	require.NotNil(t, got.Video, "command must stay committed")
	assert.Empty(t, broker.Published())

	broker.FailWith(nil)
	stats, err := a.Relay.RunOnce(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Delivered)
	published := broker.Published()
	require.Len(t, published, 1)
	assert.Equal(t, "video", payloadOf(t, published[0])["media_type"])

	stats, err = a.Relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Delivered, "delivered entries are not resent")
}

func TestApp_ProcessBothMedias_PublishesVideo(t *testing.T) {
	a, _ := newTestApp(t)
	v := createVideo(t, a)
	replace(t, a, v.ID, "trailer")
	replace(t, a, v.ID, "video")
	ctx := context.Background()

	out, err := a.UseCases.ProcessAudioVideoMedia.Execute(ctx, videoapp.ProcessAudioVideoMediaCommand{
		VideoID: v.ID, Field: "trailer", Status: "completed", EncodedLocation: "encoded/trailer.m3u8",
	})
	require.NoError(t, err)
	assert.False(t, out.IsPublished)

	out, err = a.UseCases.ProcessAudioVideoMedia.Execute(ctx, videoapp.ProcessAudioVideoMediaCommand{
		VideoID: v.ID, Field: "video", Status: "completed", EncodedLocation: "encoded/video.m3u8",
	})
	require.NoError(t, err)
	assert.True(t, out.IsPublished)

	got, err := a.UseCases.GetVideo.Execute(videoapp.GetVideoQuery{ID: v.ID})
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	assert.Equal(t, "completed", got.Trailer.Status)
}

func TestApp_CreateVideo_UnknownCategory_NotPersisted(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.UseCases.CreateVideo.Execute(context.Background(), videoapp.CreateVideoCommand{
		Title:        "The Movie",
		YearLaunched: 2020,
		Duration:     90,
		Rating:       "L",
		CategoryIDs:  []string{"6f1f6c1e-0f5c-4c38-9f44-2f8a3b7b2b11"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Category Not Found using ID 6f1f6c1e-0f5c-4c38-9f44-2f8a3b7b2b11")
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	a, _ := newTestApp(t)

	for _, table := range []string{"categories", "videos", "outbox_entries"} {
		assert.True(t, a.DB.Migrator().HasTable(table), table)
	}
}
