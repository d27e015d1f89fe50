package category

import (
	"context"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// UpdateCategory Use Case
// ===========================

// UpdateCategoryCommand 更新分類指令（nil 欄位不變更）
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description *string
	IsActive    *bool
}

// UpdateCategoryUseCase 更新分類 Use Case 接口
type UpdateCategoryUseCase interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryOutput, error)
}

// UpdateCategoryUseCaseImpl 更新分類 Use Case 實作
type UpdateCategoryUseCaseImpl struct {
	categoryRepo category.CategoryRepository
	publisher    *events.CommitPublisher
}

// NewUpdateCategoryUseCase 創建 UpdateCategoryUseCase 實例
func NewUpdateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	publisher *events.CommitPublisher,
) *UpdateCategoryUseCaseImpl {
	return &UpdateCategoryUseCaseImpl{
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// Execute 執行更新分類
//
// 錯誤處理：
// - ID 格式錯誤 → category.ErrInvalidCategoryID
// - 分類不存在 → category.ErrCategoryNotFound
// - 欄位驗證失敗 → *shared.EntityValidationError（事務回滾）
func (uc *UpdateCategoryUseCaseImpl) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryOutput, error) {
	id, err := category.CategoryIDFromString(cmd.ID)
	if err != nil {
		return nil, err
	}

	var updated *category.Category
	_, err = uc.publisher.Execute(ctx, func(tx shared.TransactionContext) ([]shared.AggregateRoot, error) {
		c, err := uc.categoryRepo.FindByID(tx, id)
		if err != nil {
			return nil, err
		}

		if cmd.Name != nil {
			c.ChangeName(*cmd.Name)
		}
		if cmd.Description != nil {
			c.ChangeDescription(*cmd.Description)
		}
		if cmd.IsActive != nil {
			if *cmd.IsActive {
				c.Activate()
			} else {
				c.Deactivate()
			}
		}

		if err := c.ValidationError(); err != nil {
			return nil, err
		}
		if err := uc.categoryRepo.Update(tx, c); err != nil {
			return nil, err
		}

		updated = c
		return []shared.AggregateRoot{c}, nil
	})
	if err != nil {
		return nil, err
	}

	return toOutput(updated), nil
}
