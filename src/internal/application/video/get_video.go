package video

import (
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
)

// GetVideoQuery 查詢影片
type GetVideoQuery struct {
	ID string
}

// GetVideoUseCase 查詢影片 Use Case（不需要事務）
type GetVideoUseCase struct {
	videoRepo video.VideoRepository
}

// NewGetVideoUseCase 創建 Use Case 實例
func NewGetVideoUseCase(repo video.VideoRepository) *GetVideoUseCase {
	return &GetVideoUseCase{videoRepo: repo}
}

// Execute 執行查詢
func (uc *GetVideoUseCase) Execute(query GetVideoQuery) (*VideoOutput, error) {
	id, err := video.VideoIDFromString(query.ID)
	if err != nil {
		return nil, err
	}

	v, err := uc.videoRepo.FindByID(nil, id)
	if err != nil {
		return nil, err
	}
	return toOutput(v), nil
}
