package media

// ===========================
// ImageMedia 圖片媒體值對象
// ===========================

// ImageMedia 圖片描述（banner、thumbnail、thumbnail half）
//
// 只能經由 NewImageMedia（通過策略驗證）或 ReconstructImageMedia（持久化）建立。
type ImageMedia struct {
	kind     Kind
	name     string
	location string
}

// NewImageMedia 依策略驗證後建立圖片媒體
//
// 失敗時返回 *OversizedFileError、*DisallowedMimeTypeError 或 ErrInvalidMediaName。
func NewImageMedia(policy Policy, input FileInput, ownerID string) (ImageMedia, error) {
	if !policy.Kind().IsImage() {
		return ImageMedia{}, ErrInvalidPolicy.WithContext(
			"kind", string(policy.Kind()),
			"reason", "not an image policy",
		)
	}
	if err := policy.Validate(input); err != nil {
		return ImageMedia{}, err
	}

	name, err := buildName(ownerID, input.RawName)
	if err != nil {
		return ImageMedia{}, err
	}

	return ImageMedia{
		kind:     policy.Kind(),
		name:     name,
		location: policy.Location(ownerID),
	}, nil
}

// ReconstructImageMedia 從持久化資料重建（不重跑大小 / MIME 驗證）
func ReconstructImageMedia(kind Kind, name, location string) (ImageMedia, error) {
	if !kind.IsImage() || name == "" || location == "" {
		return ImageMedia{}, ErrCorruptedMedia.WithContext(
			"kind", string(kind),
			"name", name,
			"location", location,
		)
	}
	return ImageMedia{kind: kind, name: name, location: location}, nil
}

// Kind 返回媒體種類
func (m ImageMedia) Kind() Kind { return m.kind }

// Name 返回檔名
func (m ImageMedia) Name() string { return m.name }

// Location 返回所在目錄
func (m ImageMedia) Location() string { return m.location }

// URL 返回相對路徑（目錄 + 檔名）
func (m ImageMedia) URL() string {
	return m.location + "/" + m.name
}

// IsZero 是否為零值（未設定）
func (m ImageMedia) IsZero() bool {
	return m.name == ""
}

// Equals 值相等
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m == other
}
