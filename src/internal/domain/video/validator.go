package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// 驗證組（欄位）名稱
const (
	FieldTitle        = "title"
	FieldYearLaunched = "year_launched"
	FieldDuration     = "duration"
	FieldCategoriesID = "categories_id"
	FieldRating       = "rating"

	MaxTitleLength  = 255
	MinYearLaunched = 1900
	MinDuration     = 1
)

var videoRules = shared.FieldRules[*Video]{
	FieldTitle: {
		shared.NotBlank(FieldTitle, func(v *Video) string { return v.title }),
		shared.MaxLength(FieldTitle, MaxTitleLength, func(v *Video) string { return v.title }),
	},
	FieldYearLaunched: {
		shared.MinInt(FieldYearLaunched, MinYearLaunched, func(v *Video) int { return v.yearLaunched }),
	},
	FieldDuration: {
		shared.MinInt(FieldDuration, MinDuration, func(v *Video) int { return v.duration }),
	},
	FieldCategoriesID: {
		shared.NotEmptySet(FieldCategoriesID, func(v *Video) int { return len(v.categoryIDs) }),
	},
}

var videoValidator = shared.NewValidatorFields(
	videoRules,
	FieldTitle, FieldYearLaunched, FieldDuration, FieldCategoriesID,
)

// Validator 影片的欄位驗證器
func Validator() shared.ValidatorFields[*Video] {
	return videoValidator
}
