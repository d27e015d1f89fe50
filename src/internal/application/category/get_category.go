package category

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
)

// GetCategoryQuery 查詢分類
type GetCategoryQuery struct {
	ID string
}

// GetCategoryUseCase 查詢分類 Use Case（不需要事務）
type GetCategoryUseCase struct {
	categoryRepo category.CategoryRepository
}

// NewGetCategoryUseCase 創建 Use Case 實例
func NewGetCategoryUseCase(repo category.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: repo}
}

// Execute 執行查詢
func (uc *GetCategoryUseCase) Execute(query GetCategoryQuery) (*CategoryOutput, error) {
	id, err := category.CategoryIDFromString(query.ID)
	if err != nil {
		return nil, err
	}

	c, err := uc.categoryRepo.FindByID(nil, id)
	if err != nil {
		return nil, err
	}
	return toOutput(c), nil
}
