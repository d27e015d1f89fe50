package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象（UUID）
//
// T 為標記類型，讓 CategoryID 與 VideoID 成為不同類型：
//
//	type CategoryMarker struct{}
//	type CategoryID = shared.EntityID[CategoryMarker]
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString 從字串解析實體 ID
//
// errTemplate 由各 bounded context 提供（例如 video.ErrInvalidVideoID），
// 為 nil 時使用 ErrInvalidEntityID。
func EntityIDFromString[T any](s string, errTemplate *DomainError) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if errTemplate == nil {
			errTemplate = ErrInvalidEntityID
		}
		return EntityID[T]{}, errTemplate.WithContext(
			"input", s,
			"parse_error", err.Error(),
		)
	}
	return EntityID[T]{value: id}, nil
}

// String 轉換為字串表示（小寫 UUID）
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals 比較兩個 EntityID 是否相等
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}

// MarshalText 讓 ID 可直接用於 JSON 載荷
func (e EntityID[T]) MarshalText() ([]byte, error) {
	return []byte(e.value.String()), nil
}
