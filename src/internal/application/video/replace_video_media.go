package video

import (
	"context"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
)

// ===========================
// ReplaceVideoMedia Use Case
// ===========================

// UploadedFile 上傳檔案描述（檔案內容由儲存層處理）
type UploadedFile struct {
	RawName  string
	MimeType string // 空字串時以 Head 判斷
	Size     int64
	Head     []byte // 檔案開頭的位元組（用於判斷 MIME 類型）
}

// ReplaceVideoMediaCommand 替換影片媒體指令
type ReplaceVideoMediaCommand struct {
	VideoID string
	Field   string // banner | thumbnail | thumbnail_half | trailer | video
	File    UploadedFile
}

// ReplaceVideoMediaResult 替換結果
type ReplaceVideoMediaResult struct {
	VideoID  string
	Field    string
	Location string // 新檔案的相對路徑
	Name     string
}

// ReplaceVideoMediaUseCase 替換影片媒體 Use Case 接口
type ReplaceVideoMediaUseCase interface {
	Execute(ctx context.Context, cmd ReplaceVideoMediaCommand) (*ReplaceVideoMediaResult, error)
}

// ReplaceVideoMediaUseCaseImpl 替換影片媒體 Use Case 實作
type ReplaceVideoMediaUseCaseImpl struct {
	videoRepo video.VideoRepository
	factory   *video.MediaFactory
	publisher *events.CommitPublisher
}

// NewReplaceVideoMediaUseCase 創建 ReplaceVideoMediaUseCase 實例
func NewReplaceVideoMediaUseCase(
	videoRepo video.VideoRepository,
	factory *video.MediaFactory,
	publisher *events.CommitPublisher,
) *ReplaceVideoMediaUseCaseImpl {
	return &ReplaceVideoMediaUseCaseImpl{
		videoRepo: videoRepo,
		factory:   factory,
		publisher: publisher,
	}
}

// Execute 執行替換
//
// 錯誤處理：
// - 欄位名稱錯誤 → ErrInvalidMediaField
// - 檔案超過大小 / 類型不允許 → *shared.EntityValidationError（錯誤記錄在該欄位下）
// - 影片不存在 → video.ErrVideoNotFound
//
// trailer / video 替換提交後會發布 video.audio_media_uploaded 整合事件。
func (uc *ReplaceVideoMediaUseCaseImpl) Execute(ctx context.Context, cmd ReplaceVideoMediaCommand) (*ReplaceVideoMediaResult, error) {
	kind := media.Kind(cmd.Field)
	if !kind.Valid() {
		return nil, ErrInvalidMediaField.WithContext("field", cmd.Field)
	}

	videoID, err := video.VideoIDFromString(cmd.VideoID)
	if err != nil {
		return nil, err
	}

	input := media.FileInput{
		RawName:  cmd.File.RawName,
		MimeType: media.ResolveMimeType(cmd.File.MimeType, cmd.File.Head),
		Size:     cmd.File.Size,
	}

	var result *ReplaceVideoMediaResult
	_, err = uc.publisher.Execute(ctx, func(tx shared.TransactionContext) ([]shared.AggregateRoot, error) {
		v, err := uc.videoRepo.FindByID(tx, videoID)
		if err != nil {
			return nil, err
		}

		if kind.IsImage() {
			result, err = uc.replaceImage(v, kind, input)
		} else {
			result, err = uc.replaceAudioVideo(v, kind, input)
		}
		if err != nil {
			return nil, err
		}

		if err := uc.videoRepo.Update(tx, v); err != nil {
			return nil, err
		}
		return []shared.AggregateRoot{v}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ReplaceVideoMediaUseCaseImpl) replaceImage(v *video.Video, kind media.Kind, input media.FileInput) (*ReplaceVideoMediaResult, error) {
	built, err := uc.factory.Image(kind, input, v.VideoID())
	if err != nil {
		return nil, err
	}
	if built.IsFail() {
		return nil, mediaValidationError(kind, built.Failure())
	}

	m := built.Value()
	if err := v.ReplaceImage(m); err != nil {
		return nil, err
	}
	return &ReplaceVideoMediaResult{
		VideoID:  v.VideoID().String(),
		Field:    string(kind),
		Location: m.URL(),
		Name:     m.Name(),
	}, nil
}

func (uc *ReplaceVideoMediaUseCaseImpl) replaceAudioVideo(v *video.Video, kind media.Kind, input media.FileInput) (*ReplaceVideoMediaResult, error) {
	built, err := uc.factory.AudioVideo(kind, input, v.VideoID())
	if err != nil {
		return nil, err
	}
	if built.IsFail() {
		return nil, mediaValidationError(kind, built.Failure())
	}

	m := built.Value()
	if err := v.ReplaceAudioVideo(m); err != nil {
		return nil, err
	}
	return &ReplaceVideoMediaResult{
		VideoID:  v.VideoID().String(),
		Field:    string(kind),
		Location: m.RawURL(),
		Name:     m.Name(),
	}, nil
}

// mediaValidationError 把媒體建立失敗記錄在欄位下
func mediaValidationError(kind media.Kind, failure shared.CodedError) error {
	n := shared.NewNotification()
	n.AddError(failure.Error(), string(kind))
	return shared.NewEntityValidationError("Video", n)
}
