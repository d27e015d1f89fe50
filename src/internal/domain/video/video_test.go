package video

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// 測試輔助
// ===========================

func validProps() CreateVideoProps {
	return CreateVideoProps{
		Title:        "The Movie",
		Description:  "desc",
		YearLaunched: 2020,
		Duration:     90,
		Rating:       Rating12,
		CategoryIDs:  []category.CategoryID{category.NewCategoryID()},
	}
}

func newFactory(t *testing.T) *MediaFactory {
	t.Helper()
	f, err := NewMediaFactory(media.DefaultPolicies())
	require.NoError(t, err)
	return f
}

func newTrailerMedia(t *testing.T, f *MediaFactory, v *Video) media.AudioVideoMedia {
	t.Helper()
	result, err := f.Trailer(media.FileInput{RawName: "trailer.mp4", MimeType: "video/mp4", Size: 1024}, v.VideoID())
	require.NoError(t, err)
	require.True(t, result.IsOk())
	return result.Value()
}

func newVideoMedia(t *testing.T, f *MediaFactory, v *Video) media.AudioVideoMedia {
	t.Helper()
	result, err := f.VideoMedia(media.FileInput{RawName: "video.mp4", MimeType: "video/mp4", Size: 1024}, v.VideoID())
	require.NoError(t, err)
	require.True(t, result.IsOk())
	return result.Value()
}

// ===========================
// Video Aggregate Tests
// ===========================

func TestNewVideo_ValidInput_Success(t *testing.T) {
	v := NewVideo(validProps())

	require.NotNil(t, v)
	assert.False(t, v.VideoID().IsEmpty())
	assert.Equal(t, "The Movie", v.Title())
	assert.Equal(t, Rating12, v.Rating())
	assert.False(t, v.IsPublished())
	assert.Len(t, v.CategoryIDs(), 1)
	assert.NoError(t, v.ValidationError())

	events := v.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, shared.VideoCreated, events[0].Kind())
}

func TestNewVideo_MultipleInvalidFields_AllReported(t *testing.T) {
	// Arrange
	props := validProps()
	props.Title = strings.Repeat("t", 256)
	props.YearLaunched = 1800
	props.Duration = 0
	props.CategoryIDs = nil

	// Act
	v := NewVideo(props)

	// Assert
	n := v.Notification()
	assert.Equal(t,
		[]string{FieldCategoriesID, FieldDuration, FieldTitle, FieldYearLaunched},
		n.Fields(),
	)
	for _, field := range n.Fields() {
		assert.Len(t, n.FieldErrors(field), 1, field)
	}

	var validationErr *shared.EntityValidationError
	require.True(t, errors.As(v.ValidationError(), &validationErr))
	assert.Equal(t, 4, validationErr.FieldCount())
}

func TestNewVideo_DuplicateCategoryIDs_AreDeduped(t *testing.T) {
	id := category.NewCategoryID()
	props := validProps()
	props.CategoryIDs = []category.CategoryID{id, id}

	v := NewVideo(props)

	assert.Len(t, v.CategoryIDs(), 1)
}

func TestVideo_ChangeTitle_ValidatesTitleGroupOnly(t *testing.T) {
	v := NewVideo(validProps())

	v.ChangeTitle("")

	assert.Equal(t, []string{FieldTitle}, v.Notification().Fields())
}

func TestVideo_SyncCategoryIDs_Empty_ReportsError(t *testing.T) {
	v := NewVideo(validProps())

	v.SyncCategoryIDs(nil)

	assert.True(t, v.Notification().HasFieldErrors(FieldCategoriesID))
}

func TestNewRating(t *testing.T) {
	for _, r := range AllRatings() {
		got, err := NewRating(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := NewRating("21")
	assert.True(t, errors.Is(err, ErrInvalidRating))
}

// ===========================
// 媒體工廠
// ===========================

func TestMediaFactory_Thumbnail_Oversized(t *testing.T) {
	f := newFactory(t)
	id := NewVideoID()

	result, err := f.Thumbnail(media.FileInput{
		RawName:  "thumb.png",
		MimeType: "image/png",
		Size:     2*media.MiB + 1,
	}, id)

	require.NoError(t, err)
	require.True(t, result.IsFail())
	var oversized *media.OversizedFileError
	require.True(t, errors.As(result.Failure(), &oversized))
	assert.Equal(t, int64(2*media.MiB+1), oversized.Size)
	assert.Equal(t, int64(2*media.MiB), oversized.MaxSize)
}

func TestMediaFactory_Thumbnail_DisallowedMimeType(t *testing.T) {
	f := newFactory(t)

	result, err := f.Thumbnail(media.FileInput{RawName: "thumb.gif", MimeType: "image/gif", Size: 10}, NewVideoID())

	require.NoError(t, err)
	require.True(t, result.IsFail())
	var disallowed *media.DisallowedMimeTypeError
	require.True(t, errors.As(result.Failure(), &disallowed))
	assert.Equal(t, "image/gif", disallowed.MimeType)
	assert.ElementsMatch(t, []string{"image/jpeg", "image/png"}, disallowed.Allowed)
}

func TestMediaFactory_ThumbnailHalf_Valid(t *testing.T) {
	f := newFactory(t)
	id := NewVideoID()

	result, err := f.ThumbnailHalf(media.FileInput{RawName: "half.jpg", MimeType: "image/jpeg", Size: 10}, id)

	require.NoError(t, err)
	require.True(t, result.IsOk())
	m := result.Value()
	assert.True(t, strings.HasPrefix(m.Name(), id.String()))
	assert.Equal(t, "videos/"+id.String()+"/images", m.Location())
	assert.Equal(t, media.KindThumbnailHalf, m.Kind())
}

func TestNewMediaFactory_MissingPolicy(t *testing.T) {
	policies := media.DefaultPolicies()
	delete(policies, media.KindBanner)

	_, err := NewMediaFactory(policies)

	assert.True(t, errors.Is(err, ErrMissingPolicy))
}

// ===========================
// 媒體替換與事件
// ===========================

func TestVideo_ReplaceThumbnail_NoIntegrationEvent(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	v.PullEvents()
	result, _ := f.Thumbnail(media.FileInput{RawName: "a.png", MimeType: "image/png", Size: 1}, v.VideoID())

	require.NoError(t, v.ReplaceThumbnail(result.Value()))

	assert.True(t, v.Thumbnail().Equals(result.Value()))
	events := v.PullEvents()
	require.Len(t, events, 1)
	replaced := events[0].(*VideoMediaReplacedEvent)
	_, ok := replaced.ToIntegrationEvent()
	assert.False(t, ok, "image replacements have no integration event")
}

func TestVideo_ReplaceTrailer_MapsToAudioMediaUploaded(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	v.PullEvents()
	trailer := newTrailerMedia(t, f, v)

	require.NoError(t, v.ReplaceTrailer(trailer))

	events := v.PullEvents()
	require.Len(t, events, 1)
	source, ok := events[0].(shared.IntegrationEventSource)
	require.True(t, ok)
	integration, ok := source.ToIntegrationEvent()
	require.True(t, ok)
	assert.Equal(t, AudioMediaUploadedEventName, integration.EventName())
	assert.Equal(t, events[0].EventID(), integration.EventID())
	assert.Equal(t, AudioMediaUploadedPayload{
		VideoID:     v.VideoID().String(),
		MediaType:   "trailer",
		NewLocation: trailer.RawURL(),
	}, integration.Payload())
}

func TestVideo_ReplaceMedia_KindMismatch(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	banner, _ := f.Banner(media.FileInput{RawName: "b.png", MimeType: "image/png", Size: 1}, v.VideoID())

	err := v.ReplaceThumbnail(banner.Value())

	assert.True(t, errors.Is(err, ErrMediaKindMismatch))
	assert.True(t, v.Thumbnail().IsZero())
}

func TestVideo_ReplaceImage_DispatchesByKind(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	banner, _ := f.Banner(media.FileInput{RawName: "b.png", MimeType: "image/png", Size: 1}, v.VideoID())

	require.NoError(t, v.ReplaceImage(banner.Value()))

	assert.True(t, v.Banner().Equals(banner.Value()))
}

func TestVideo_ProcessAudioVideo_PublishesWhenBothCompleted(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	require.NoError(t, v.ReplaceTrailer(newTrailerMedia(t, f, v)))
	require.NoError(t, v.ReplaceVideo(newVideoMedia(t, f, v)))
	v.PullEvents()

	require.NoError(t, v.CompleteAudioVideoMedia(media.KindTrailer, "encoded/trailer"))
	assert.False(t, v.IsPublished())

	require.NoError(t, v.StartAudioVideoMediaProcessing(media.KindVideo))
	require.NoError(t, v.CompleteAudioVideoMedia(media.KindVideo, "encoded/video"))
	assert.True(t, v.IsPublished())

	events := v.PullEvents()
	require.Len(t, events, 2)
	processed := events[1].(*VideoAudioMediaProcessedEvent)
	assert.Equal(t, media.StatusCompleted, processed.Status())
	assert.Equal(t, "encoded/video", processed.EncodedLocation())
}

func TestVideo_ReplaceTrailer_UnpublishesVideo(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	require.NoError(t, v.ReplaceTrailer(newTrailerMedia(t, f, v)))
	require.NoError(t, v.ReplaceVideo(newVideoMedia(t, f, v)))
	require.NoError(t, v.CompleteAudioVideoMedia(media.KindTrailer, "e/t"))
	require.NoError(t, v.CompleteAudioVideoMedia(media.KindVideo, "e/v"))
	require.True(t, v.IsPublished())

	require.NoError(t, v.ReplaceTrailer(newTrailerMedia(t, f, v)))

	assert.False(t, v.IsPublished())
}

func TestVideo_FailAudioVideoMedia_NotSet(t *testing.T) {
	v := NewVideo(validProps())

	err := v.FailAudioVideoMedia(media.KindTrailer)

	assert.True(t, errors.Is(err, ErrMediaNotSet))
}

func TestVideo_FailAudioVideoMedia_ThenCompleteRejected(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	require.NoError(t, v.ReplaceVideo(newVideoMedia(t, f, v)))

	require.NoError(t, v.FailAudioVideoMedia(media.KindVideo))
	err := v.CompleteAudioVideoMedia(media.KindVideo, "e/v")

	assert.True(t, errors.Is(err, media.ErrInvalidMediaStatusTransition))
	assert.Equal(t, media.StatusFailed, v.VideoMedia().Status())
}

// ===========================
// 重建
// ===========================

func TestReconstructVideo_RoundTripsSnapshot(t *testing.T) {
	f := newFactory(t)
	v := NewVideo(validProps())
	require.NoError(t, v.ReplaceTrailer(newTrailerMedia(t, f, v)))
	snapshot := v.Snapshot()

	restored, err := ReconstructVideo(snapshot)

	require.NoError(t, err)
	assert.Equal(t, snapshot, restored.Snapshot())
	assert.Empty(t, restored.PullEvents())
}

func TestReconstructVideo_InvalidRating(t *testing.T) {
	s := NewVideo(validProps()).Snapshot()
	s.Rating = "99"

	_, err := ReconstructVideo(s)

	assert.True(t, errors.Is(err, ErrCorruptedVideo))
}

func TestReconstructVideo_NoCategories(t *testing.T) {
	s := NewVideo(validProps()).Snapshot()
	s.CategoryIDs = nil
	s.CreatedAt = time.Now()

	_, err := ReconstructVideo(s)

	assert.True(t, errors.Is(err, ErrCorruptedVideo))
}
