package shared

import (
	"fmt"
	"sort"
	"strings"
)

// ===========================
// 錯誤代碼與 DomainError
// ===========================

// ErrorCode 錯誤代碼類型（各 bounded context 自行定義常量）
type ErrorCode string

// 共用錯誤代碼
const (
	ErrCodeEntityValidation ErrorCode = "ENTITY_VALIDATION"
	ErrCodeInvalidEntityID  ErrorCode = "ENTITY_ID_INVALID"
	ErrCodeEntityNotFound   ErrorCode = "ENTITY_NOT_FOUND"
	ErrCodeRepository       ErrorCode = "REPOSITORY_ERROR"
)

// CodedError 可識別的領域錯誤
//
// Safe() 只把實作此介面的錯誤視為「預期內的失敗」並捕捉到 Either 中，
// 其他錯誤原樣返回給調用者。
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

// DomainError 領域錯誤
//
// 預定義錯誤為模板，調用 WithContext 產生帶上下文的新實例，
// errors.Is 以錯誤代碼比對。
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %s)", e.Code, e.Message, formatContext(e.Context))
}

// ErrorCode 實現 CodedError 接口
func (e *DomainError) ErrorCode() ErrorCode {
	return e.Code
}

// WithContext 添加上下文信息（返回新的錯誤實例，原模板不變）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// formatContext 以固定順序輸出上下文，方便日誌比對
func formatContext(ctx map[string]interface{}) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return strings.Join(parts, ", ")
}

// ===========================
// 預定義錯誤
// ===========================

var (
	// ErrEntityValidation 實體欄位驗證失敗（聚合所有欄位錯誤）
	ErrEntityValidation = &DomainError{
		Code:    ErrCodeEntityValidation,
		Message: "實體驗證失敗",
	}

	// ErrInvalidEntityID 無效的實體 ID
	ErrInvalidEntityID = &DomainError{
		Code:    ErrCodeInvalidEntityID,
		Message: "無效的實體 ID",
	}

	// ErrEntityNotFound 實體不存在
	ErrEntityNotFound = &DomainError{
		Code:    ErrCodeEntityNotFound,
		Message: "實體不存在",
	}

	// ErrRepository 倉儲操作失敗（資料庫錯誤等）
	ErrRepository = &DomainError{
		Code:    ErrCodeRepository,
		Message: "倉儲操作失敗",
	}
)

// ===========================
// EntityValidationError
// ===========================

// EntityValidationError 聚合後的欄位驗證錯誤
//
// 由 Use Case 在 Notification 有錯誤時返回，一次列出所有失敗欄位。
type EntityValidationError struct {
	entity string
	errors map[string][]string
}

// NewEntityValidationError 從 Notification 建立驗證錯誤（複製錯誤內容）
func NewEntityValidationError(entity string, n *Notification) *EntityValidationError {
	return &EntityValidationError{
		entity: entity,
		errors: n.Errors(),
	}
}

// Error 實現 error 接口
func (e *EntityValidationError) Error() string {
	fields := make([]string, 0, len(e.errors))
	for field := range e.errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.errors[field], "; ")))
	}
	return fmt.Sprintf("[%s] %s 驗證失敗: %s", ErrCodeEntityValidation, e.entity, strings.Join(parts, " | "))
}

// ErrorCode 實現 CodedError 接口
func (e *EntityValidationError) ErrorCode() ErrorCode {
	return ErrCodeEntityValidation
}

// Is 讓 errors.Is(err, ErrEntityValidation) 成立
func (e *EntityValidationError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == ErrCodeEntityValidation
}

// Entity 返回驗證失敗的實體名稱
func (e *EntityValidationError) Entity() string {
	return e.entity
}

// Errors 返回欄位錯誤（副本）
func (e *EntityValidationError) Errors() map[string][]string {
	out := make(map[string][]string, len(e.errors))
	for k, v := range e.errors {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// FieldCount 返回失敗欄位數
func (e *EntityValidationError) FieldCount() int {
	return len(e.errors)
}
