package video

import (
	"context"
	"fmt"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
)

// ===========================
// CreateVideo Use Case
// ===========================

// CreateVideoCommand 建立影片指令
type CreateVideoCommand struct {
	Title        string
	Description  string
	YearLaunched int
	Duration     int
	Rating       string
	IsOpened     bool
	CategoryIDs  []string
}

// CreateVideoUseCase 建立影片 Use Case 接口
type CreateVideoUseCase interface {
	Execute(ctx context.Context, cmd CreateVideoCommand) (*VideoOutput, error)
}

// CreateVideoUseCaseImpl 建立影片 Use Case 實作
type CreateVideoUseCaseImpl struct {
	videoRepo    video.VideoRepository
	categoryRepo category.CategoryRepository
	publisher    *events.CommitPublisher
}

// NewCreateVideoUseCase 創建 CreateVideoUseCase 實例
func NewCreateVideoUseCase(
	videoRepo video.VideoRepository,
	categoryRepo category.CategoryRepository,
	publisher *events.CommitPublisher,
) *CreateVideoUseCaseImpl {
	return &CreateVideoUseCaseImpl{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// Execute 執行建立影片
//
// 業務流程：
// 1. 轉換分級與分類 ID（失敗記錄到對應欄位，不中止）
// 2. 建立 Video 聚合，合併上一步的錯誤
// 3. 在事務中檢查分類是否存在，仍有錯誤則回滾並返回 *shared.EntityValidationError
// 4. 保存，提交後發布事件
func (uc *CreateVideoUseCaseImpl) Execute(ctx context.Context, cmd CreateVideoCommand) (*VideoOutput, error) {
	n := shared.NewNotification()

	rating, err := shared.Safe(func() (video.Rating, error) {
		return video.NewRating(cmd.Rating)
	})
	if err != nil {
		return nil, err
	}
	if rating.IsFail() {
		n.AddError(rating.Failure().Error(), video.FieldRating)
	}

	categoryIDs := make([]category.CategoryID, 0, len(cmd.CategoryIDs))
	for _, raw := range cmd.CategoryIDs {
		id, err := category.CategoryIDFromString(raw)
		if err != nil {
			n.AddError(fmt.Sprintf("invalid category id: %s", raw), video.FieldCategoriesID)
			continue
		}
		categoryIDs = append(categoryIDs, id)
	}

	v := video.NewVideo(video.CreateVideoProps{
		Title:        cmd.Title,
		Description:  cmd.Description,
		YearLaunched: cmd.YearLaunched,
		Duration:     cmd.Duration,
		Rating:       rating.OrElse(video.RatingL),
		IsOpened:     cmd.IsOpened,
		CategoryIDs:  categoryIDs,
	})
	v.Notification().CopyErrors(n)

	_, err = uc.publisher.Execute(ctx, func(tx shared.TransactionContext) ([]shared.AggregateRoot, error) {
		if len(categoryIDs) > 0 {
			missing, err := uc.categoryRepo.ExistsByIDs(tx, categoryIDs)
			if err != nil {
				return nil, err
			}
			for _, id := range missing {
				v.Notification().AddError(
					fmt.Sprintf("Category Not Found using ID %s", id.String()),
					video.FieldCategoriesID,
				)
			}
		}

		if err := v.ValidationError(); err != nil {
			return nil, err
		}
		if err := uc.videoRepo.Insert(tx, v); err != nil {
			return nil, err
		}
		return []shared.AggregateRoot{v}, nil
	})
	if err != nil {
		return nil, err
	}

	return toOutput(v), nil
}
