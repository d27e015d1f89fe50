package media

import (
	"fmt"
	"path"
	"strings"
)

// ===========================
// Kind 媒體種類
// ===========================

// Kind 影片可掛載的媒體種類
type Kind string

const (
	KindBanner        Kind = "banner"
	KindThumbnail     Kind = "thumbnail"
	KindThumbnailHalf Kind = "thumbnail_half"
	KindTrailer       Kind = "trailer"
	KindVideo         Kind = "video"
)

// AllKinds 所有媒體種類
func AllKinds() []Kind {
	return []Kind{KindBanner, KindThumbnail, KindThumbnailHalf, KindTrailer, KindVideo}
}

// IsImage 是否為圖片類媒體
func (k Kind) IsImage() bool {
	return k == KindBanner || k == KindThumbnail || k == KindThumbnailHalf
}

// IsAudioVideo 是否為需要轉檔的影音媒體
func (k Kind) IsAudioVideo() bool {
	return k == KindTrailer || k == KindVideo
}

// Valid 是否為已知種類
func (k Kind) Valid() bool {
	return k.IsImage() || k.IsAudioVideo()
}

// 預設上限
const (
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30

	DefaultImageMaxSize   = 2 * MiB
	DefaultTrailerMaxSize = 500 * MiB
	DefaultVideoMaxSize   = 50 * GiB
)

// 預設允許的 MIME 類型
var (
	DefaultImageMimeTypes = []string{"image/jpeg", "image/png"}
	DefaultVideoMimeTypes = []string{"video/mp4"}
)

// ===========================
// Policy 媒體驗證策略
// ===========================

// Policy 單一媒體種類的大小上限與 MIME 允許清單（不可變）
type Policy struct {
	kind             Kind
	maxSize          int64
	allowedMimeTypes []string
}

// NewPolicy 建立媒體策略
func NewPolicy(kind Kind, maxSize int64, allowedMimeTypes []string) (Policy, error) {
	if !kind.Valid() {
		return Policy{}, ErrInvalidPolicy.WithContext("kind", string(kind), "reason", "unknown media kind")
	}
	if maxSize <= 0 {
		return Policy{}, ErrInvalidPolicy.WithContext("kind", string(kind), "max_size", maxSize)
	}

	mimes := make([]string, 0, len(allowedMimeTypes))
	for _, m := range allowedMimeTypes {
		m = normalizeMimeType(m)
		if m != "" {
			mimes = append(mimes, m)
		}
	}
	if len(mimes) == 0 {
		return Policy{}, ErrInvalidPolicy.WithContext("kind", string(kind), "reason", "no allowed mime types")
	}

	return Policy{kind: kind, maxSize: maxSize, allowedMimeTypes: mimes}, nil
}

// mustPolicy 僅用於內建預設值
func mustPolicy(kind Kind, maxSize int64, mimes []string) Policy {
	p, err := NewPolicy(kind, maxSize, mimes)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPolicies 內建預設策略
func DefaultPolicies() map[Kind]Policy {
	return map[Kind]Policy{
		KindBanner:        mustPolicy(KindBanner, DefaultImageMaxSize, DefaultImageMimeTypes),
		KindThumbnail:     mustPolicy(KindThumbnail, DefaultImageMaxSize, DefaultImageMimeTypes),
		KindThumbnailHalf: mustPolicy(KindThumbnailHalf, DefaultImageMaxSize, DefaultImageMimeTypes),
		KindTrailer:       mustPolicy(KindTrailer, DefaultTrailerMaxSize, DefaultVideoMimeTypes),
		KindVideo:         mustPolicy(KindVideo, DefaultVideoMaxSize, DefaultVideoMimeTypes),
	}
}

// Kind 返回媒體種類
func (p Policy) Kind() Kind { return p.kind }

// MaxSize 返回大小上限（位元組）
func (p Policy) MaxSize() int64 { return p.maxSize }

// AllowedMimeTypes 返回允許的 MIME 類型（副本）
func (p Policy) AllowedMimeTypes() []string {
	return append([]string(nil), p.allowedMimeTypes...)
}

// FileInput 上傳檔案的原始描述
type FileInput struct {
	RawName  string
	MimeType string
	Size     int64
}

// Validate 依序檢查大小與 MIME 類型（負數大小返回 ErrInvalidFileSize）
//
// 兩項檢查都會執行，但只返回第一個失敗（大小優先）；
// 調用者修正後可再次呼叫。
func (p Policy) Validate(input FileInput) error {
	var failures []error

	if input.Size < 0 {
		failures = append(failures, ErrInvalidFileSize.WithContext(
			"kind", string(p.kind),
			"size", input.Size,
		))
	}

	if input.Size > p.maxSize {
		failures = append(failures, &OversizedFileError{
			Kind:    p.kind,
			Size:    input.Size,
			MaxSize: p.maxSize,
		})
	}

	if !p.allows(input.MimeType) {
		failures = append(failures, &DisallowedMimeTypeError{
			Kind:     p.kind,
			MimeType: input.MimeType,
			Allowed:  p.AllowedMimeTypes(),
		})
	}

	if len(failures) > 0 {
		return failures[0]
	}
	return nil
}

// Location 媒體在儲存空間中的目錄（依擁有者命名空間）
func (p Policy) Location(ownerID string) string {
	if p.kind.IsAudioVideo() {
		return fmt.Sprintf("videos/%s/videos", ownerID)
	}
	return fmt.Sprintf("videos/%s/images", ownerID)
}

func (p Policy) allows(mimeType string) bool {
	mimeType = normalizeMimeType(mimeType)
	for _, allowed := range p.allowedMimeTypes {
		if allowed == mimeType {
			return true
		}
	}
	return false
}

// buildName 以擁有者 ID 為前綴產生檔名，避免不同實體間衝突
func buildName(ownerID, rawName string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(rawName), "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return "", ErrInvalidMediaName.WithContext("raw_name", rawName)
	}
	return fmt.Sprintf("%s-%s", ownerID, base), nil
}

// normalizeMimeType 去除參數並轉小寫（"image/PNG; q=1" → "image/png"）
func normalizeMimeType(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = m[:i]
	}
	return strings.ToLower(strings.TrimSpace(m))
}
