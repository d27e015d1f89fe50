package video

import (
	"context"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
)

// ===========================
// ProcessAudioVideoMedia Use Case
// ===========================

// ProcessAudioVideoMediaCommand 轉檔服務回報結果
type ProcessAudioVideoMediaCommand struct {
	VideoID         string
	Field           string // trailer | video
	Status          string // processing | completed | failed
	EncodedLocation string // completed 時必填
}

// ProcessAudioVideoMediaUseCase 套用轉檔結果 Use Case 接口
type ProcessAudioVideoMediaUseCase interface {
	Execute(ctx context.Context, cmd ProcessAudioVideoMediaCommand) (*VideoOutput, error)
}

// ProcessAudioVideoMediaUseCaseImpl 套用轉檔結果 Use Case 實作
type ProcessAudioVideoMediaUseCaseImpl struct {
	videoRepo video.VideoRepository
	publisher *events.CommitPublisher
}

// NewProcessAudioVideoMediaUseCase 創建 ProcessAudioVideoMediaUseCase 實例
func NewProcessAudioVideoMediaUseCase(
	videoRepo video.VideoRepository,
	publisher *events.CommitPublisher,
) *ProcessAudioVideoMediaUseCaseImpl {
	return &ProcessAudioVideoMediaUseCaseImpl{
		videoRepo: videoRepo,
		publisher: publisher,
	}
}

// Execute 執行套用轉檔結果
//
// trailer 與 video 都完成後影片自動標記為已發布。
// 狀態轉換不合法 → media.ErrInvalidMediaStatusTransition（事務回滾）
func (uc *ProcessAudioVideoMediaUseCaseImpl) Execute(ctx context.Context, cmd ProcessAudioVideoMediaCommand) (*VideoOutput, error) {
	kind := media.Kind(cmd.Field)
	if !kind.IsAudioVideo() {
		return nil, ErrInvalidMediaField.WithContext("field", cmd.Field)
	}

	status := media.Status(cmd.Status)
	switch status {
	case media.StatusProcessing, media.StatusCompleted, media.StatusFailed:
	default:
		return nil, ErrInvalidMediaStatus.WithContext("status", cmd.Status)
	}

	videoID, err := video.VideoIDFromString(cmd.VideoID)
	if err != nil {
		return nil, err
	}

	var updated *video.Video
	_, err = uc.publisher.Execute(ctx, func(tx shared.TransactionContext) ([]shared.AggregateRoot, error) {
		v, err := uc.videoRepo.FindByID(tx, videoID)
		if err != nil {
			return nil, err
		}

		switch status {
		case media.StatusProcessing:
			err = v.StartAudioVideoMediaProcessing(kind)
		case media.StatusCompleted:
			err = v.CompleteAudioVideoMedia(kind, cmd.EncodedLocation)
		case media.StatusFailed:
			err = v.FailAudioVideoMedia(kind)
		}
		if err != nil {
			return nil, err
		}

		if err := uc.videoRepo.Update(tx, v); err != nil {
			return nil, err
		}
		updated = v
		return []shared.AggregateRoot{v}, nil
	})
	if err != nil {
		return nil, err
	}
	return toOutput(updated), nil
}
