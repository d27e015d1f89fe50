package video

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// Video 聚合根
// ===========================

// Video 影片聚合根
//
// 不變條件：
// - title 不可空白，長度 <= 255
// - year_launched >= 1900，duration >= 1
// - 至少屬於一個分類
// - 只有 trailer 與 video 都轉檔完成後才會標記為已發布
type Video struct {
	videoID      VideoID
	title        string
	description  string
	yearLaunched int
	duration     int
	rating       Rating
	isOpened     bool
	isPublished  bool

	banner        media.ImageMedia
	thumbnail     media.ImageMedia
	thumbnailHalf media.ImageMedia
	trailer       media.AudioVideoMedia
	video         media.AudioVideoMedia

	categoryIDs []category.CategoryID
	createdAt   time.Time

	notification *shared.Notification
	shared.EventRecorder
}

// CreateVideoProps 建立影片參數
type CreateVideoProps struct {
	Title        string
	Description  string
	YearLaunched int
	Duration     int
	Rating       Rating
	IsOpened     bool
	CategoryIDs  []category.CategoryID
}

// NewVideo 建立新影片並執行預設驗證組
//
// 總是返回聚合；驗證失敗時 Notification().HasErrors() 為 true。
// 媒體由 Replace* 方法另外設定。
func NewVideo(props CreateVideoProps) *Video {
	v := &Video{
		videoID:      NewVideoID(),
		title:        props.Title,
		description:  props.Description,
		yearLaunched: props.YearLaunched,
		duration:     props.Duration,
		rating:       props.Rating,
		isOpened:     props.IsOpened,
		categoryIDs:  dedupCategoryIDs(props.CategoryIDs),
		createdAt:    time.Now(),
		notification: shared.NewNotification(),
	}
	v.Validate()
	v.Record(NewVideoCreatedEvent(v))

	return v
}

// Snapshot 影片完整狀態（持久化重建用）
type Snapshot struct {
	VideoID       VideoID
	Title         string
	Description   string
	YearLaunched  int
	Duration      int
	Rating        Rating
	IsOpened      bool
	IsPublished   bool
	Banner        media.ImageMedia
	Thumbnail     media.ImageMedia
	ThumbnailHalf media.ImageMedia
	Trailer       media.AudioVideoMedia
	Video         media.AudioVideoMedia
	CategoryIDs   []category.CategoryID
	CreatedAt     time.Time
}

// ReconstructVideo 從持久化存儲重建（不發布事件）
func ReconstructVideo(s Snapshot) (*Video, error) {
	if s.VideoID.IsEmpty() {
		return nil, ErrInvalidVideoID.WithContext("reason", "invalid video ID in database")
	}
	if !s.Rating.Valid() {
		return nil, ErrCorruptedVideo.WithContext(
			"video_id", s.VideoID.String(),
			"rating", string(s.Rating),
		)
	}

	v := &Video{
		videoID:       s.VideoID,
		title:         s.Title,
		description:   s.Description,
		yearLaunched:  s.YearLaunched,
		duration:      s.Duration,
		rating:        s.Rating,
		isOpened:      s.IsOpened,
		isPublished:   s.IsPublished,
		banner:        s.Banner,
		thumbnail:     s.Thumbnail,
		thumbnailHalf: s.ThumbnailHalf,
		trailer:       s.Trailer,
		video:         s.Video,
		categoryIDs:   dedupCategoryIDs(s.CategoryIDs),
		createdAt:     s.CreatedAt,
		notification:  shared.NewNotification(),
	}
	if !v.Validate() {
		return nil, ErrCorruptedVideo.WithContext(
			"video_id", s.VideoID.String(),
			"errors", v.notification.Errors(),
		)
	}
	return v, nil
}

// Snapshot 匯出目前狀態
func (v *Video) Snapshot() Snapshot {
	return Snapshot{
		VideoID:       v.videoID,
		Title:         v.title,
		Description:   v.description,
		YearLaunched:  v.yearLaunched,
		Duration:      v.duration,
		Rating:        v.rating,
		IsOpened:      v.isOpened,
		IsPublished:   v.isPublished,
		Banner:        v.banner,
		Thumbnail:     v.thumbnail,
		ThumbnailHalf: v.thumbnailHalf,
		Trailer:       v.trailer,
		Video:         v.video,
		CategoryIDs:   v.CategoryIDs(),
		CreatedAt:     v.createdAt,
	}
}

// ===========================
// 驗證
// ===========================

// Validate 驗證指定欄位（省略時使用預設驗證組），錯誤追加到聚合的 Notification
func (v *Video) Validate(fields ...string) bool {
	return Validator().Validate(v.notification, v, fields)
}

// Notification 返回聚合的錯誤收集器
func (v *Video) Notification() *shared.Notification {
	return v.notification
}

// ValidationError 有錯誤時返回 *shared.EntityValidationError，否則 nil
func (v *Video) ValidationError() error {
	if !v.notification.HasErrors() {
		return nil
	}
	return shared.NewEntityValidationError("Video", v.notification)
}

// ===========================
// 命令方法：基本資料
// ===========================

// ChangeTitle 修改標題
func (v *Video) ChangeTitle(title string) {
	v.title = title
	v.Validate(FieldTitle)
}

// ChangeDescription 修改描述
func (v *Video) ChangeDescription(description string) {
	v.description = description
}

// ChangeYearLaunched 修改上映年份
func (v *Video) ChangeYearLaunched(year int) {
	v.yearLaunched = year
	v.Validate(FieldYearLaunched)
}

// ChangeDuration 修改片長（分鐘）
func (v *Video) ChangeDuration(duration int) {
	v.duration = duration
	v.Validate(FieldDuration)
}

// ChangeRating 修改分級
func (v *Video) ChangeRating(rating Rating) {
	v.rating = rating
}

// MarkAsOpened 標記為公開
func (v *Video) MarkAsOpened() { v.isOpened = true }

// MarkAsNotOpened 取消公開
func (v *Video) MarkAsNotOpened() { v.isOpened = false }

// AddCategoryID 加入分類（重複加入不生效）
func (v *Video) AddCategoryID(id category.CategoryID) {
	v.categoryIDs = dedupCategoryIDs(append(v.categoryIDs, id))
}

// SyncCategoryIDs 以新集合取代分類
func (v *Video) SyncCategoryIDs(ids []category.CategoryID) {
	v.categoryIDs = dedupCategoryIDs(ids)
	v.Validate(FieldCategoriesID)
}

// ===========================
// 命令方法：媒體
// ===========================

// ReplaceBanner 替換橫幅
func (v *Video) ReplaceBanner(m media.ImageMedia) error {
	return v.replaceImage(media.KindBanner, m, &v.banner)
}

// ReplaceThumbnail 替換縮圖
func (v *Video) ReplaceThumbnail(m media.ImageMedia) error {
	return v.replaceImage(media.KindThumbnail, m, &v.thumbnail)
}

// ReplaceThumbnailHalf 替換半尺寸縮圖
func (v *Video) ReplaceThumbnailHalf(m media.ImageMedia) error {
	return v.replaceImage(media.KindThumbnailHalf, m, &v.thumbnailHalf)
}

// ReplaceTrailer 替換預告片（重新進入待轉檔狀態，取消發布）
func (v *Video) ReplaceTrailer(m media.AudioVideoMedia) error {
	return v.replaceAudioVideo(media.KindTrailer, m, &v.trailer)
}

// ReplaceVideo 替換正片（重新進入待轉檔狀態，取消發布）
func (v *Video) ReplaceVideo(m media.AudioVideoMedia) error {
	return v.replaceAudioVideo(media.KindVideo, m, &v.video)
}

// ReplaceImage 依媒體種類替換對應的圖片欄位
func (v *Video) ReplaceImage(m media.ImageMedia) error {
	switch m.Kind() {
	case media.KindBanner:
		return v.ReplaceBanner(m)
	case media.KindThumbnail:
		return v.ReplaceThumbnail(m)
	case media.KindThumbnailHalf:
		return v.ReplaceThumbnailHalf(m)
	}
	return ErrMediaKindMismatch.WithContext("kind", string(m.Kind()))
}

// ReplaceAudioVideo 依媒體種類替換對應的影音欄位
func (v *Video) ReplaceAudioVideo(m media.AudioVideoMedia) error {
	switch m.Kind() {
	case media.KindTrailer:
		return v.ReplaceTrailer(m)
	case media.KindVideo:
		return v.ReplaceVideo(m)
	}
	return ErrMediaKindMismatch.WithContext("kind", string(m.Kind()))
}

func (v *Video) replaceImage(kind media.Kind, m media.ImageMedia, slot *media.ImageMedia) error {
	if m.IsZero() || m.Kind() != kind {
		return ErrMediaKindMismatch.WithContext(
			"expected", string(kind),
			"actual", string(m.Kind()),
		)
	}
	*slot = m
	v.Record(NewVideoMediaReplacedEvent(v.videoID, kind, m.URL()))
	return nil
}

func (v *Video) replaceAudioVideo(kind media.Kind, m media.AudioVideoMedia, slot *media.AudioVideoMedia) error {
	if m.IsZero() || m.Kind() != kind {
		return ErrMediaKindMismatch.WithContext(
			"expected", string(kind),
			"actual", string(m.Kind()),
		)
	}
	*slot = m
	v.isPublished = false
	v.Record(NewVideoMediaReplacedEvent(v.videoID, kind, m.RawURL()))
	return nil
}

// ===========================
// 命令方法：轉檔結果
// ===========================

// CompleteAudioVideoMedia 轉檔完成，兩個影音都完成時自動發布
func (v *Video) CompleteAudioVideoMedia(kind media.Kind, encodedLocation string) error {
	return v.processAudioVideo(kind, func(m media.AudioVideoMedia) (media.AudioVideoMedia, error) {
		return m.Complete(encodedLocation)
	})
}

// FailAudioVideoMedia 轉檔失敗
func (v *Video) FailAudioVideoMedia(kind media.Kind) error {
	return v.processAudioVideo(kind, media.AudioVideoMedia.Fail)
}

// StartAudioVideoMediaProcessing 開始轉檔
func (v *Video) StartAudioVideoMediaProcessing(kind media.Kind) error {
	slot, err := v.audioVideoSlot(kind)
	if err != nil {
		return err
	}
	next, err := slot.Process()
	if err != nil {
		return err
	}
	*slot = next
	return nil
}

func (v *Video) processAudioVideo(
	kind media.Kind,
	transition func(media.AudioVideoMedia) (media.AudioVideoMedia, error),
) error {
	slot, err := v.audioVideoSlot(kind)
	if err != nil {
		return err
	}

	next, err := transition(*slot)
	if err != nil {
		return err
	}
	*slot = next

	v.Record(NewVideoAudioMediaProcessedEvent(v.videoID, kind, next.Status(), next.EncodedLocation()))
	v.markAsPublishedIfReady()
	return nil
}

func (v *Video) audioVideoSlot(kind media.Kind) (*media.AudioVideoMedia, error) {
	var slot *media.AudioVideoMedia
	switch kind {
	case media.KindTrailer:
		slot = &v.trailer
	case media.KindVideo:
		slot = &v.video
	default:
		return nil, ErrMediaKindMismatch.WithContext("kind", string(kind))
	}
	if slot.IsZero() {
		return nil, ErrMediaNotSet.WithContext(
			"video_id", v.videoID.String(),
			"kind", string(kind),
		)
	}
	return slot, nil
}

func (v *Video) markAsPublishedIfReady() {
	if v.trailer.IsCompleted() && v.video.IsCompleted() {
		v.isPublished = true
	}
}

// ===========================
// 查詢方法
// ===========================

// VideoID 獲取影片 ID
func (v *Video) VideoID() VideoID { return v.videoID }

// Title 獲取標題
func (v *Video) Title() string { return v.title }

// Description 獲取描述
func (v *Video) Description() string { return v.description }

// YearLaunched 獲取上映年份
func (v *Video) YearLaunched() int { return v.yearLaunched }

// Duration 獲取片長
func (v *Video) Duration() int { return v.duration }

// Rating 獲取分級
func (v *Video) Rating() Rating { return v.rating }

// IsOpened 是否公開
func (v *Video) IsOpened() bool { return v.isOpened }

// IsPublished 是否已發布
func (v *Video) IsPublished() bool { return v.isPublished }

// Banner 獲取橫幅
func (v *Video) Banner() media.ImageMedia { return v.banner }

// Thumbnail 獲取縮圖
func (v *Video) Thumbnail() media.ImageMedia { return v.thumbnail }

// ThumbnailHalf 獲取半尺寸縮圖
func (v *Video) ThumbnailHalf() media.ImageMedia { return v.thumbnailHalf }

// Trailer 獲取預告片
func (v *Video) Trailer() media.AudioVideoMedia { return v.trailer }

// VideoMedia 獲取正片
func (v *Video) VideoMedia() media.AudioVideoMedia { return v.video }

// CategoryIDs 獲取分類 ID（副本）
func (v *Video) CategoryIDs() []category.CategoryID {
	return append([]category.CategoryID(nil), v.categoryIDs...)
}

// CreatedAt 獲取創建時間
func (v *Video) CreatedAt() time.Time { return v.createdAt }

// dedupCategoryIDs 保留首次出現順序去重
func dedupCategoryIDs(ids []category.CategoryID) []category.CategoryID {
	out := make([]category.CategoryID, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	return out
}
