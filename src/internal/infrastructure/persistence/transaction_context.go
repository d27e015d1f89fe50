package persistence

import (
	"strings"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// gormTransactionContext 封裝事務中的 *gorm.DB，Domain Layer 只看到 shared.TransactionContext
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 創建 GORM 事務上下文
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 獲取事務中的 DB（僅供 Infrastructure Layer 使用）
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}

// dbProvider 可提供 *gorm.DB 的事務上下文
type dbProvider interface {
	GetDB() *gorm.DB
}

// DBFrom 可選事務參與：ctx 是 GORM 事務時使用事務連線，否則使用 fallback（auto-commit）
func DBFrom(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if p, ok := ctx.(dbProvider); ok {
		return p.GetDB()
	}
	return fallback
}

// RepositoryError 把資料庫錯誤包裝為 shared.ErrRepository（保留原始訊息）
func RepositoryError(operation string, err error) error {
	return shared.ErrRepository.WithContext("operation", operation, "error", err.Error())
}

// IsUniqueConstraintError 是否為唯一約束錯誤（SQLite / PostgreSQL）
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"UNIQUE constraint failed",   // SQLite
		"duplicate key value",        // PostgreSQL
		"violates unique constraint", // PostgreSQL (alternative)
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
