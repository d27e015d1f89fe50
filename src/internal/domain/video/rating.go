package video

// Rating 影片分級
type Rating string

const (
	RatingL  Rating = "L"
	Rating10 Rating = "10"
	Rating12 Rating = "12"
	Rating14 Rating = "14"
	Rating16 Rating = "16"
	Rating18 Rating = "18"
)

// AllRatings 所有分級（由寬到嚴）
func AllRatings() []Rating {
	return []Rating{RatingL, Rating10, Rating12, Rating14, Rating16, Rating18}
}

// NewRating 從字串建立分級，失敗返回 ErrInvalidRating
func NewRating(value string) (Rating, error) {
	r := Rating(value)
	if !r.Valid() {
		return "", ErrInvalidRating.WithContext(
			"value", value,
			"allowed", AllRatings(),
		)
	}
	return r, nil
}

// Valid 是否為已知分級
func (r Rating) Valid() bool {
	switch r {
	case RatingL, Rating10, Rating12, Rating14, Rating16, Rating18:
		return true
	}
	return false
}

// String 實現 fmt.Stringer
func (r Rating) String() string {
	return string(r)
}
