package shared

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ===========================
// Notification 錯誤收集容器
// ===========================

// GeneralField 未指定欄位時使用的通用分組鍵
const GeneralField = "_general"

// Notification 以欄位名稱分組收集驗證錯誤
//
// 一次命令建立一個實例，驗證器往裡面追加錯誤，不會提前中止；
// 已加入的錯誤永遠不會被丟棄（SetError 除外，它明確替換單一欄位）。
// 非併發安全：只在單一命令的呼叫堆疊內使用。
type Notification struct {
	errors map[string][]string
	order  []string
}

// NewNotification 創建空的 Notification
func NewNotification() *Notification {
	return &Notification{errors: make(map[string][]string)}
}

// AddError 追加錯誤訊息
//
// field 省略或為空字串時歸入 GeneralField。
// 同一欄位重複的訊息只保留一次。
func (n *Notification) AddError(message string, field ...string) {
	key := fieldKey(field)
	for _, existing := range n.errors[key] {
		if existing == message {
			return
		}
	}
	n.touch(key)
	n.errors[key] = append(n.errors[key], message)
}

// SetError 以單一訊息替換欄位的錯誤列表
func (n *Notification) SetError(message string, field ...string) {
	key := fieldKey(field)
	n.touch(key)
	n.errors[key] = []string{message}
}

// HasErrors 是否有任何錯誤
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// HasFieldErrors 指定欄位是否有錯誤
func (n *Notification) HasFieldErrors(field string) bool {
	return len(n.errors[field]) > 0
}

// FieldErrors 返回欄位的錯誤訊息（副本）
func (n *Notification) FieldErrors(field string) []string {
	return append([]string(nil), n.errors[field]...)
}

// Fields 返回有錯誤的欄位名稱（已排序）
func (n *Notification) Fields() []string {
	fields := make([]string, 0, len(n.errors))
	for field := range n.errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Errors 返回所有錯誤（副本）
func (n *Notification) Errors() map[string][]string {
	out := make(map[string][]string, len(n.errors))
	for k, v := range n.errors {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// CopyErrors 合併另一個 Notification 的錯誤（例如值對象驗證結果併入聚合）
func (n *Notification) CopyErrors(other *Notification) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		for _, msg := range other.errors[key] {
			n.AddError(msg, key)
		}
	}
}

// MarshalJSON 輸出格式：
//
//	["通用錯誤", {"name": ["..."]}, {"title": ["..."]}]
//
// 通用錯誤以字串輸出，欄位錯誤以物件輸出，欄位依名稱排序。
func (n *Notification) MarshalJSON() ([]byte, error) {
	items := make([]interface{}, 0, len(n.errors))
	for _, msg := range n.errors[GeneralField] {
		items = append(items, msg)
	}
	for _, field := range n.Fields() {
		if field == GeneralField {
			continue
		}
		items = append(items, map[string][]string{field: n.errors[field]})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (n *Notification) touch(key string) {
	if n.errors == nil {
		n.errors = make(map[string][]string)
	}
	if _, ok := n.errors[key]; !ok {
		n.order = append(n.order, key)
	}
}

func fieldKey(field []string) string {
	if len(field) == 0 || field[0] == "" {
		return GeneralField
	}
	return field[0]
}
