package video

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// ImageMediaColumns 圖片媒體欄位（未設定時全部為 NULL）
type ImageMediaColumns struct {
	Name     *string `gorm:"column:name;type:varchar(255)"`
	Location *string `gorm:"column:location;type:varchar(255)"`
}

// AudioVideoMediaColumns 影音媒體欄位（未設定時全部為 NULL）
type AudioVideoMediaColumns struct {
	Name            *string `gorm:"column:name;type:varchar(255)"`
	RawLocation     *string `gorm:"column:raw_location;type:varchar(255)"`
	EncodedLocation *string `gorm:"column:encoded_location;type:varchar(255)"`
	Status          *string `gorm:"column:status;type:varchar(16)"`
}

// VideoGORM 影片資料表模型
//
// 媒體以欄位前綴攤平（banner_name、trailer_status ...），
// 分類 ID 以 JSON 陣列保存。
type VideoGORM struct {
	VideoID      string `gorm:"column:video_id;type:varchar(36);primaryKey"`
	Title        string `gorm:"column:title;type:varchar(255);not null"`
	Description  string `gorm:"column:description;type:text"`
	YearLaunched int    `gorm:"column:year_launched;not null"`
	Duration     int    `gorm:"column:duration;not null"`
	Rating       string `gorm:"column:rating;type:varchar(4);not null"`
	IsOpened     bool   `gorm:"column:is_opened;not null;default:false"`
	IsPublished  bool   `gorm:"column:is_published;not null;default:false"`

	Banner        ImageMediaColumns      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail     ImageMediaColumns      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbnailHalf ImageMediaColumns      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`
	Trailer       AudioVideoMediaColumns `gorm:"embedded;embeddedPrefix:trailer_"`
	Video         AudioVideoMediaColumns `gorm:"embedded;embeddedPrefix:video_"`

	CategoryIDs datatypes.JSONSlice[string] `gorm:"column:category_ids;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (VideoGORM) TableName() string {
	return "videos"
}

// Migrate 建立或更新影片資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&VideoGORM{})
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
func (m *VideoGORM) toDomain() (*video.Video, error) {
	videoID, err := video.VideoIDFromString(m.VideoID)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]category.CategoryID, 0, len(m.CategoryIDs))
	for _, raw := range m.CategoryIDs {
		id, err := category.CategoryIDFromString(raw)
		if err != nil {
			return nil, video.ErrCorruptedVideo.WithContext(
				"video_id", m.VideoID,
				"category_id", raw,
			)
		}
		categoryIDs = append(categoryIDs, id)
	}

	s := video.Snapshot{
		VideoID:      videoID,
		Title:        m.Title,
		Description:  m.Description,
		YearLaunched: m.YearLaunched,
		Duration:     m.Duration,
		Rating:       video.Rating(m.Rating),
		IsOpened:     m.IsOpened,
		IsPublished:  m.IsPublished,
		CategoryIDs:  categoryIDs,
		CreatedAt:    m.CreatedAt,
	}

	if s.Banner, err = m.Banner.toDomain(media.KindBanner); err != nil {
		return nil, err
	}
	if s.Thumbnail, err = m.Thumbnail.toDomain(media.KindThumbnail); err != nil {
		return nil, err
	}
	if s.ThumbnailHalf, err = m.ThumbnailHalf.toDomain(media.KindThumbnailHalf); err != nil {
		return nil, err
	}
	if s.Trailer, err = m.Trailer.toDomain(media.KindTrailer); err != nil {
		return nil, err
	}
	if s.Video, err = m.Video.toDomain(media.KindVideo); err != nil {
		return nil, err
	}

	return video.ReconstructVideo(s)
}

func (c ImageMediaColumns) toDomain(kind media.Kind) (media.ImageMedia, error) {
	if c.Name == nil && c.Location == nil {
		return media.ImageMedia{}, nil
	}
	return media.ReconstructImageMedia(kind, deref(c.Name), deref(c.Location))
}

func (c AudioVideoMediaColumns) toDomain(kind media.Kind) (media.AudioVideoMedia, error) {
	if c.Name == nil && c.RawLocation == nil {
		return media.AudioVideoMedia{}, nil
	}
	return media.ReconstructAudioVideoMedia(
		kind,
		deref(c.Name),
		deref(c.RawLocation),
		deref(c.EncodedLocation),
		media.Status(deref(c.Status)),
	)
}

// toGORM 將 Domain 聚合轉換為 GORM 模型
func toGORM(v *video.Video) *VideoGORM {
	s := v.Snapshot()

	ids := make(datatypes.JSONSlice[string], 0, len(s.CategoryIDs))
	for _, id := range s.CategoryIDs {
		ids = append(ids, id.String())
	}

	return &VideoGORM{
		VideoID:       s.VideoID.String(),
		Title:         s.Title,
		Description:   s.Description,
		YearLaunched:  s.YearLaunched,
		Duration:      s.Duration,
		Rating:        string(s.Rating),
		IsOpened:      s.IsOpened,
		IsPublished:   s.IsPublished,
		Banner:        imageColumns(s.Banner),
		Thumbnail:     imageColumns(s.Thumbnail),
		ThumbnailHalf: imageColumns(s.ThumbnailHalf),
		Trailer:       audioVideoColumns(s.Trailer),
		Video:         audioVideoColumns(s.Video),
		CategoryIDs:   ids,
		CreatedAt:     s.CreatedAt,
	}
}

func imageColumns(m media.ImageMedia) ImageMediaColumns {
	if m.IsZero() {
		return ImageMediaColumns{}
	}
	return ImageMediaColumns{
		Name:     ptr(m.Name()),
		Location: ptr(m.Location()),
	}
}

func audioVideoColumns(m media.AudioVideoMedia) AudioVideoMediaColumns {
	if m.IsZero() {
		return AudioVideoMediaColumns{}
	}
	cols := AudioVideoMediaColumns{
		Name:        ptr(m.Name()),
		RawLocation: ptr(m.RawLocation()),
		Status:      ptr(string(m.Status())),
	}
	if m.EncodedLocation() != "" {
		cols.EncodedLocation = ptr(m.EncodedLocation())
	}
	return cols
}

func ptr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
