package category

import (
	"context"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// CreateCategory Use Case
// ===========================

// CreateCategoryCommand 建立分類指令
type CreateCategoryCommand struct {
	Name        string
	Description string
	IsActive    *bool // nil 表示啟用
}

// CreateCategoryUseCase 建立分類 Use Case 接口
type CreateCategoryUseCase interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryOutput, error)
}

// CreateCategoryUseCaseImpl 建立分類 Use Case 實作
type CreateCategoryUseCaseImpl struct {
	categoryRepo category.CategoryRepository
	publisher    *events.CommitPublisher
}

// NewCreateCategoryUseCase 創建 CreateCategoryUseCase 實例
func NewCreateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	publisher *events.CommitPublisher,
) *CreateCategoryUseCaseImpl {
	return &CreateCategoryUseCaseImpl{
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// Execute 執行建立分類
//
// 業務流程：
// 1. 建立 Category 聚合（收集所有欄位錯誤）
// 2. 有錯誤時返回 *shared.EntityValidationError，不寫入資料庫
// 3. 在事務中保存，提交後發布事件
func (uc *CreateCategoryUseCaseImpl) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryOutput, error) {
	c := category.NewCategory(category.CreateCategoryProps{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    cmd.IsActive,
	})
	if err := c.ValidationError(); err != nil {
		return nil, err
	}

	_, err := uc.publisher.Execute(ctx, func(tx shared.TransactionContext) ([]shared.AggregateRoot, error) {
		if err := uc.categoryRepo.Insert(tx, c); err != nil {
			return nil, err
		}
		return []shared.AggregateRoot{c}, nil
	})
	if err != nil {
		return nil, err
	}

	return toOutput(c), nil
}
