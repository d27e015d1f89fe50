package category

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// 驗證組（欄位）名稱
const (
	FieldName        = "name"
	FieldDescription = "description"

	MaxNameLength        = 255
	MaxDescriptionLength = 5000
)

var categoryRules = shared.FieldRules[*Category]{
	FieldName: {
		shared.NotBlank(FieldName, func(c *Category) string { return c.name }),
		shared.MaxLength(FieldName, MaxNameLength, func(c *Category) string { return c.name }),
	},
	FieldDescription: {
		shared.MaxLength(FieldDescription, MaxDescriptionLength, func(c *Category) string { return c.description }),
	},
}

var categoryValidator = shared.NewValidatorFields(categoryRules, FieldName, FieldDescription)

// Validator 分類的欄位驗證器（預設驗證 name、description）
func Validator() shared.ValidatorFields[*Category] {
	return categoryValidator
}
