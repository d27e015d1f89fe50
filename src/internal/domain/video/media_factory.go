package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// MediaFactory 影片媒體工廠
// ===========================

// MediaFactory 以每種媒體的策略建立影片媒體
//
// 預期內的失敗（超過大小、不允許的類型）以 shared.Either 返回，
// 讓 Use Case 把失敗記錄到對應欄位，而不是中止整個命令。
type MediaFactory struct {
	policies map[media.Kind]media.Policy
}

// NewMediaFactory 每種媒體都必須有策略
func NewMediaFactory(policies map[media.Kind]media.Policy) (*MediaFactory, error) {
	copied := make(map[media.Kind]media.Policy, len(policies))
	for _, kind := range media.AllKinds() {
		p, ok := policies[kind]
		if !ok {
			return nil, ErrMissingPolicy.WithContext("kind", string(kind))
		}
		if p.Kind() != kind {
			return nil, ErrMediaKindMismatch.WithContext(
				"expected", string(kind),
				"actual", string(p.Kind()),
			)
		}
		copied[kind] = p
	}
	return &MediaFactory{policies: copied}, nil
}

// Policy 返回某種媒體的策略
func (f *MediaFactory) Policy(kind media.Kind) media.Policy {
	return f.policies[kind]
}

// Image 建立圖片媒體
func (f *MediaFactory) Image(kind media.Kind, input media.FileInput, videoID VideoID) (shared.Either[media.ImageMedia], error) {
	policy := f.policies[kind]
	return shared.Safe(func() (media.ImageMedia, error) {
		return media.NewImageMedia(policy, input, videoID.String())
	})
}

// AudioVideo 建立影音媒體
func (f *MediaFactory) AudioVideo(kind media.Kind, input media.FileInput, videoID VideoID) (shared.Either[media.AudioVideoMedia], error) {
	policy := f.policies[kind]
	return shared.Safe(func() (media.AudioVideoMedia, error) {
		return media.NewAudioVideoMedia(policy, input, videoID.String())
	})
}

// Banner 建立橫幅
func (f *MediaFactory) Banner(input media.FileInput, videoID VideoID) (shared.Either[media.ImageMedia], error) {
	return f.Image(media.KindBanner, input, videoID)
}

// Thumbnail 建立縮圖
func (f *MediaFactory) Thumbnail(input media.FileInput, videoID VideoID) (shared.Either[media.ImageMedia], error) {
	return f.Image(media.KindThumbnail, input, videoID)
}

// ThumbnailHalf 建立半尺寸縮圖
func (f *MediaFactory) ThumbnailHalf(input media.FileInput, videoID VideoID) (shared.Either[media.ImageMedia], error) {
	return f.Image(media.KindThumbnailHalf, input, videoID)
}

// Trailer 建立預告片
func (f *MediaFactory) Trailer(input media.FileInput, videoID VideoID) (shared.Either[media.AudioVideoMedia], error) {
	return f.AudioVideo(media.KindTrailer, input, videoID)
}

// VideoMedia 建立正片
func (f *MediaFactory) VideoMedia(input media.FileInput, videoID VideoID) (shared.Either[media.AudioVideoMedia], error) {
	return f.AudioVideo(media.KindVideo, input, videoID)
}
