package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// AudioMediaUploadedEventName 通知轉檔服務的整合事件名稱
const AudioMediaUploadedEventName = "video.audio_media_uploaded"

// ===========================
// VideoCreatedEvent
// ===========================

// VideoCreatedEvent 影片已建立（沒有整合事件）
type VideoCreatedEvent struct {
	shared.BaseEvent
	title       string
	categoryIDs []category.CategoryID
}

// NewVideoCreatedEvent 建立影片建立事件
func NewVideoCreatedEvent(v *Video) *VideoCreatedEvent {
	return &VideoCreatedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.VideoCreated, v.videoID.String()),
		title:       v.title,
		categoryIDs: v.CategoryIDs(),
	}
}

// Title 影片標題
func (e *VideoCreatedEvent) Title() string { return e.title }

// CategoryIDs 分類 ID
func (e *VideoCreatedEvent) CategoryIDs() []category.CategoryID {
	return append([]category.CategoryID(nil), e.categoryIDs...)
}

// ===========================
// VideoMediaReplacedEvent
// ===========================

// VideoMediaReplacedEvent 影片的某個媒體被替換
//
// 只有 trailer / video 會轉換成 video.audio_media_uploaded 整合事件。
type VideoMediaReplacedEvent struct {
	shared.BaseEvent
	mediaKind   media.Kind
	newLocation string
}

// NewVideoMediaReplacedEvent 建立媒體替換事件
func NewVideoMediaReplacedEvent(videoID VideoID, kind media.Kind, newLocation string) *VideoMediaReplacedEvent {
	return &VideoMediaReplacedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.VideoMediaReplaced, videoID.String()),
		mediaKind:   kind,
		newLocation: newLocation,
	}
}

// MediaKind 被替換的媒體種類
func (e *VideoMediaReplacedEvent) MediaKind() media.Kind { return e.mediaKind }

// NewLocation 新檔案的相對路徑
func (e *VideoMediaReplacedEvent) NewLocation() string { return e.newLocation }

// AudioMediaUploadedPayload 整合事件載荷
type AudioMediaUploadedPayload struct {
	VideoID     string `json:"video_id"`
	MediaType   string `json:"media_type"`
	NewLocation string `json:"new_location"`
}

// ToIntegrationEvent 實現 shared.IntegrationEventSource
func (e *VideoMediaReplacedEvent) ToIntegrationEvent() (shared.IntegrationEvent, bool) {
	if !e.mediaKind.IsAudioVideo() {
		return nil, false
	}
	return shared.NewIntegrationEvent(e, AudioMediaUploadedEventName, AudioMediaUploadedPayload{
		VideoID:     e.AggregateID(),
		MediaType:   string(e.mediaKind),
		NewLocation: e.newLocation,
	}), true
}

// ===========================
// VideoAudioMediaProcessedEvent
// ===========================

// VideoAudioMediaProcessedEvent 轉檔結果已套用（沒有整合事件）
type VideoAudioMediaProcessedEvent struct {
	shared.BaseEvent
	mediaKind       media.Kind
	status          media.Status
	encodedLocation string
}

// NewVideoAudioMediaProcessedEvent 建立轉檔結果事件
func NewVideoAudioMediaProcessedEvent(
	videoID VideoID,
	kind media.Kind,
	status media.Status,
	encodedLocation string,
) *VideoAudioMediaProcessedEvent {
	return &VideoAudioMediaProcessedEvent{
		BaseEvent:       shared.NewBaseEvent(shared.VideoAudioMediaProcessed, videoID.String()),
		mediaKind:       kind,
		status:          status,
		encodedLocation: encodedLocation,
	}
}

// MediaKind 媒體種類
func (e *VideoAudioMediaProcessedEvent) MediaKind() media.Kind { return e.mediaKind }

// Status 轉檔後狀態
func (e *VideoAudioMediaProcessedEvent) Status() media.Status { return e.status }

// EncodedLocation 轉檔後位置
func (e *VideoAudioMediaProcessedEvent) EncodedLocation() string { return e.encodedLocation }
