package video

import (
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
)

// MediaOutput 媒體輸出 DTO
type MediaOutput struct {
	Kind            string
	Name            string
	Location        string
	EncodedLocation string // 只有影音媒體有值
	Status          string // 只有影音媒體有值
}

// VideoOutput 影片輸出 DTO（未設定的媒體為 nil）
type VideoOutput struct {
	ID            string
	Title         string
	Description   string
	YearLaunched  int
	Duration      int
	Rating        string
	IsOpened      bool
	IsPublished   bool
	CategoryIDs   []string
	Banner        *MediaOutput
	Thumbnail     *MediaOutput
	ThumbnailHalf *MediaOutput
	Trailer       *MediaOutput
	Video         *MediaOutput
	CreatedAt     time.Time
}

func toOutput(v *video.Video) *VideoOutput {
	s := v.Snapshot()

	ids := make([]string, 0, len(s.CategoryIDs))
	for _, id := range s.CategoryIDs {
		ids = append(ids, id.String())
	}

	return &VideoOutput{
		ID:            s.VideoID.String(),
		Title:         s.Title,
		Description:   s.Description,
		YearLaunched:  s.YearLaunched,
		Duration:      s.Duration,
		Rating:        s.Rating.String(),
		IsOpened:      s.IsOpened,
		IsPublished:   s.IsPublished,
		CategoryIDs:   ids,
		Banner:        imageOutput(s.Banner),
		Thumbnail:     imageOutput(s.Thumbnail),
		ThumbnailHalf: imageOutput(s.ThumbnailHalf),
		Trailer:       audioVideoOutput(s.Trailer),
		Video:         audioVideoOutput(s.Video),
		CreatedAt:     s.CreatedAt,
	}
}

func imageOutput(m media.ImageMedia) *MediaOutput {
	if m.IsZero() {
		return nil
	}
	return &MediaOutput{
		Kind:     string(m.Kind()),
		Name:     m.Name(),
		Location: m.Location(),
	}
}

func audioVideoOutput(m media.AudioVideoMedia) *MediaOutput {
	if m.IsZero() {
		return nil
	}
	return &MediaOutput{
		Kind:            string(m.Kind()),
		Name:            m.Name(),
		Location:        m.RawLocation(),
		EncodedLocation: m.EncodedLocation(),
		Status:          string(m.Status()),
	}
}
