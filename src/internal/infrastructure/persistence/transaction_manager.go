package persistence

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORMTransactionManager
// ===========================

// GORMTransactionManager 以 GORM 實作 shared.TransactionManager
//
// - fn 返回錯誤 → 回滾並返回該錯誤
// - fn panic → 回滾後重新 panic
// - 否則提交
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 實現 shared.TransactionManager
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	tx := m.db.Begin()
	if tx.Error != nil {
		return RepositoryError("begin", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return RepositoryError("commit", err)
	}
	return nil
}
