package shared

// TransactionContext 事務上下文介面
//
// 標記介面，不暴露任何方法；由 Infrastructure Layer 封裝具體事務（GORM）。
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行
// - ctx == nil: auto-commit 模式（僅適用於讀操作）
//
// 寫操作（Save / Update）必須在 TransactionManager.InTransaction 中進行；
// 領域事件只在 InTransaction 成功返回（已提交）後才派發。
type TransactionContext interface{}

// TransactionManager 事務管理器介面
//
// fn 返回錯誤或 panic 時回滾，否則提交。
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
