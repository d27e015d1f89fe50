package shared

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// ===========================
// ValidatorFields 驗證策略
// ===========================

// ValidatorFields 實體欄位驗證器介面
//
// Validate 把失敗訊息追加到 n（不替換），fields 為空時使用實體的預設驗證組。
// 返回值只反映本次呼叫：本次沒有任何約束失敗時為 true。
type ValidatorFields[T any] interface {
	Validate(n *Notification, data T, fields []string) bool
}

// Constraint 單一約束：通過時返回 ("", true)，失敗時返回錯誤訊息
type Constraint[T any] func(data T) (string, bool)

// FieldRules 規則表：欄位名稱（即驗證組名稱）→ 約束列表
type FieldRules[T any] map[string][]Constraint[T]

// RunConstraints 執行規則表中被請求欄位的所有約束
//
// 每個失敗的約束都會把訊息記錄到該欄位下，不會因第一個失敗而停止。
// 規則表中不存在的欄位名稱不驗證任何東西。
func RunConstraints[T any](rules FieldRules[T], data T, fields []string, n *Notification) bool {
	if n == nil {
		panic("RunConstraints: notification must not be nil")
	}
	if isNilData(data) {
		panic(fmt.Sprintf("RunConstraints: data must not be nil (%T)", data))
	}

	valid := true
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}

		for _, constraint := range rules[field] {
			if msg, ok := constraint(data); !ok {
				n.AddError(msg, field)
				valid = false
			}
		}
	}
	return valid
}

// ruleTableValidator 以規則表實作 ValidatorFields
type ruleTableValidator[T any] struct {
	rules         FieldRules[T]
	defaultFields []string
}

// NewValidatorFields 綁定規則表與預設驗證組
func NewValidatorFields[T any](rules FieldRules[T], defaultFields ...string) ValidatorFields[T] {
	return &ruleTableValidator[T]{
		rules:         rules,
		defaultFields: append([]string(nil), defaultFields...),
	}
}

// Validate 實現 ValidatorFields 介面
func (v *ruleTableValidator[T]) Validate(n *Notification, data T, fields []string) bool {
	if len(fields) == 0 {
		fields = v.defaultFields
	}
	return RunConstraints(v.rules, data, fields, n)
}

// isNilData nil 介面或 nil 指標視為違反調用契約
func isNilData(data any) bool {
	if data == nil {
		return true
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// ===========================
// 常用約束
// ===========================

// MaxLength 字串長度（以字元計）不得超過 max
func MaxLength[T any](field string, max int, get func(T) string) Constraint[T] {
	return func(data T) (string, bool) {
		if utf8.RuneCountInString(get(data)) > max {
			return fmt.Sprintf("%s must be shorter than or equal to %d characters", field, max), false
		}
		return "", true
	}
}

// NotBlank 字串不得為空白
func NotBlank[T any](field string, get func(T) string) Constraint[T] {
	return func(data T) (string, bool) {
		if strings.TrimSpace(get(data)) == "" {
			return fmt.Sprintf("%s should not be empty", field), false
		}
		return "", true
	}
}

// MinInt 整數不得小於 min
func MinInt[T any](field string, min int, get func(T) int) Constraint[T] {
	return func(data T) (string, bool) {
		if get(data) < min {
			return fmt.Sprintf("%s must not be less than %d", field, min), false
		}
		return "", true
	}
}

// MaxInt 整數不得大於 max
func MaxInt[T any](field string, max int, get func(T) int) Constraint[T] {
	return func(data T) (string, bool) {
		if get(data) > max {
			return fmt.Sprintf("%s must not be greater than %d", field, max), false
		}
		return "", true
	}
}

// NotEmptySet 集合不得為空
func NotEmptySet[T any](field string, size func(T) int) Constraint[T] {
	return func(data T) (string, bool) {
		if size(data) == 0 {
			return fmt.Sprintf("%s should not be empty", field), false
		}
		return "", true
	}
}
