package media

// ===========================
// AudioVideoMedia 影音媒體值對象
// ===========================

// Status 影音轉檔狀態
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Valid 是否為已知狀態
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// AudioVideoMedia 影音描述（trailer、video）
//
// 狀態機：pending → processing → completed | failed。
// 狀態轉換返回新值，原值不變。
type AudioVideoMedia struct {
	kind            Kind
	name            string
	rawLocation     string
	encodedLocation string
	status          Status
}

// NewAudioVideoMedia 依策略驗證後建立影音媒體（初始狀態 pending）
func NewAudioVideoMedia(policy Policy, input FileInput, ownerID string) (AudioVideoMedia, error) {
	if !policy.Kind().IsAudioVideo() {
		return AudioVideoMedia{}, ErrInvalidPolicy.WithContext(
			"kind", string(policy.Kind()),
			"reason", "not an audio/video policy",
		)
	}
	if err := policy.Validate(input); err != nil {
		return AudioVideoMedia{}, err
	}

	name, err := buildName(ownerID, input.RawName)
	if err != nil {
		return AudioVideoMedia{}, err
	}

	return AudioVideoMedia{
		kind:        policy.Kind(),
		name:        name,
		rawLocation: policy.Location(ownerID),
		status:      StatusPending,
	}, nil
}

// ReconstructAudioVideoMedia 從持久化資料重建
func ReconstructAudioVideoMedia(
	kind Kind,
	name string,
	rawLocation string,
	encodedLocation string,
	status Status,
) (AudioVideoMedia, error) {
	if !kind.IsAudioVideo() || name == "" || rawLocation == "" || !status.Valid() {
		return AudioVideoMedia{}, ErrCorruptedMedia.WithContext(
			"kind", string(kind),
			"name", name,
			"status", string(status),
		)
	}
	return AudioVideoMedia{
		kind:            kind,
		name:            name,
		rawLocation:     rawLocation,
		encodedLocation: encodedLocation,
		status:          status,
	}, nil
}

// Kind 返回媒體種類
func (m AudioVideoMedia) Kind() Kind { return m.kind }

// Name 返回檔名
func (m AudioVideoMedia) Name() string { return m.name }

// RawLocation 返回原始檔目錄
func (m AudioVideoMedia) RawLocation() string { return m.rawLocation }

// EncodedLocation 返回轉檔後位置（尚未完成時為空）
func (m AudioVideoMedia) EncodedLocation() string { return m.encodedLocation }

// Status 返回轉檔狀態
func (m AudioVideoMedia) Status() Status { return m.status }

// RawURL 返回原始檔相對路徑
func (m AudioVideoMedia) RawURL() string {
	return m.rawLocation + "/" + m.name
}

// IsZero 是否為零值（未設定）
func (m AudioVideoMedia) IsZero() bool {
	return m.name == ""
}

// IsCompleted 轉檔是否完成
func (m AudioVideoMedia) IsCompleted() bool {
	return m.status == StatusCompleted
}

// Equals 值相等
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m == other
}

// Process 開始轉檔：pending → processing
func (m AudioVideoMedia) Process() (AudioVideoMedia, error) {
	if m.status != StatusPending {
		return m, m.transitionError(StatusProcessing)
	}
	m.status = StatusProcessing
	return m, nil
}

// Complete 轉檔完成：pending | processing → completed
func (m AudioVideoMedia) Complete(encodedLocation string) (AudioVideoMedia, error) {
	if m.status != StatusPending && m.status != StatusProcessing {
		return m, m.transitionError(StatusCompleted)
	}
	if encodedLocation == "" {
		return m, ErrInvalidMediaStatusTransition.WithContext(
			"name", m.name,
			"reason", "encoded location required",
		)
	}
	m.status = StatusCompleted
	m.encodedLocation = encodedLocation
	return m, nil
}

// Fail 轉檔失敗：pending | processing → failed
func (m AudioVideoMedia) Fail() (AudioVideoMedia, error) {
	if m.status != StatusPending && m.status != StatusProcessing {
		return m, m.transitionError(StatusFailed)
	}
	m.status = StatusFailed
	return m, nil
}

func (m AudioVideoMedia) transitionError(to Status) error {
	return ErrInvalidMediaStatusTransition.WithContext(
		"name", m.name,
		"from", string(m.status),
		"to", string(to),
	)
}
