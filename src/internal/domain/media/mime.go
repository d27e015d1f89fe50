package media

import (
	"github.com/gabriel-vasile/mimetype"
)

// DetectMimeType 從檔案開頭的位元組判斷 MIME 類型
//
// 客戶端未提供 MIME 類型時使用；無法判斷時返回 "application/octet-stream"。
func DetectMimeType(head []byte) string {
	return normalizeMimeType(mimetype.Detect(head).String())
}

// ResolveMimeType 優先使用客戶端宣告的類型，否則以內容判斷
func ResolveMimeType(declared string, head []byte) string {
	if m := normalizeMimeType(declared); m != "" {
		return m
	}
	return DetectMimeType(head)
}
