package video

import (
	"errors"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// VideoRepositoryImpl
// ===========================

// VideoRepositoryImpl 影片倉儲實現（GORM）
type VideoRepositoryImpl struct {
	db *gorm.DB
}

// NewVideoRepository 創建影片倉儲
func NewVideoRepository(db *gorm.DB) video.VideoRepository {
	return &VideoRepositoryImpl{db: db}
}

// Insert 新增影片，主鍵衝突返回 ErrVideoAlreadyExists
func (r *VideoRepositoryImpl) Insert(ctx shared.TransactionContext, v *video.Video) error {
	db := persistence.DBFrom(ctx, r.db)

	if err := db.Create(toGORM(v)).Error; err != nil {
		if persistence.IsUniqueConstraintError(err) {
			return video.ErrVideoAlreadyExists.WithContext(
				"video_id", v.VideoID().String(),
			)
		}
		return persistence.RepositoryError("insert video", err)
	}
	return nil
}

// Update 覆寫影片所有可變欄位（包含設為 NULL 的媒體欄位）
func (r *VideoRepositoryImpl) Update(ctx shared.TransactionContext, v *video.Video) error {
	db := persistence.DBFrom(ctx, r.db)

	m := toGORM(v)
	result := db.Model(&VideoGORM{}).
		Where("video_id = ?", m.VideoID).
		Select("*").
		Omit("video_id", "created_at").
		Updates(m)
	if result.Error != nil {
		return persistence.RepositoryError("update video", result.Error)
	}
	if result.RowsAffected == 0 {
		return video.ErrVideoNotFound.WithContext(
			"video_id", m.VideoID,
		)
	}
	return nil
}

// FindByID 根據影片 ID 查找
func (r *VideoRepositoryImpl) FindByID(ctx shared.TransactionContext, id video.VideoID) (*video.Video, error) {
	db := persistence.DBFrom(ctx, r.db)

	var m VideoGORM
	result := db.Where("video_id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, video.ErrVideoNotFound.WithContext(
				"video_id", id.String(),
			)
		}
		return nil, persistence.RepositoryError("find video", result.Error)
	}

	return m.toDomain()
}
