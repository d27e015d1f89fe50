package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	categoryapp "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/events"
	videoapp "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/application/video"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/video"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/config"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/logger"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/messaging"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
	categorypersistence "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence/outbox"
	videopersistence "github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence/video"
)

// IntegrationKinds 有對外整合事件的領域事件種類，各自註冊一個 BrokerHandler
var IntegrationKinds = []shared.EventKind{
	shared.VideoMediaReplaced,
}

// UseCases 應用層入口
type UseCases struct {
	CreateCategory         *categoryapp.CreateCategoryUseCaseImpl
	UpdateCategory         *categoryapp.UpdateCategoryUseCaseImpl
	GetCategory            *categoryapp.GetCategoryUseCase
	CreateVideo            *videoapp.CreateVideoUseCaseImpl
	ReplaceVideoMedia      *videoapp.ReplaceVideoMediaUseCaseImpl
	ProcessAudioVideoMedia *videoapp.ProcessAudioVideoMediaUseCaseImpl
	GetVideo               *videoapp.GetVideoUseCase
}

// App 組裝完成的服務
type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      *config.Config
	Broker   events.MessageBroker
	Mediator *events.Mediator
	Relay    *events.OutboxRelay
	UseCases UseCases

	closers []func() error
}

// New 依設定組裝服務：資料庫、訊息代理、事件派發與所有 Use Case
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{Log: log, Cfg: cfg}

	db, err := persistence.Open(persistence.Options{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogLevel:     cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, func() error { return persistence.Close(db) })

	if err := AutoMigrate(db); err != nil {
		a.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	broker, err := a.wireBroker()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Broker = broker

	if err := a.wireEvents(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// AutoMigrate 建立所有資料表
func AutoMigrate(db *gorm.DB) error {
	for _, migrate := range []func(*gorm.DB) error{
		categorypersistence.Migrate,
		videopersistence.Migrate,
		outbox.Migrate,
	} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) wireBroker() (events.MessageBroker, error) {
	switch a.Cfg.Broker.Driver {
	case "redis":
		rdb, err := messaging.DialRedis(messaging.RedisOptions{
			Addr:     a.Cfg.Broker.RedisAddr,
			Password: a.Cfg.Broker.RedisPassword,
			DB:       a.Cfg.Broker.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("init redis broker: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		return messaging.NewRedisBroker(rdb, a.Cfg.Broker.ChannelPrefix, a.Log), nil
	case "memory":
		a.Log.Warn("using in-process broker, integration events stay in memory")
		return messaging.NewMemoryBroker(), nil
	default:
		return nil, fmt.Errorf("unsupported broker driver %q", a.Cfg.Broker.Driver)
	}
}

func (a *App) wireEvents() error {
	a.Mediator = events.NewMediator(a.Cfg.Events.MaxConcurrency)
	for _, kind := range IntegrationKinds {
		if err := a.Mediator.Register(events.NewBrokerHandler(kind, a.Broker)); err != nil {
			return fmt.Errorf("register broker handler: %w", err)
		}
	}

	ledger := outbox.NewLedger(a.DB)
	a.Relay = events.NewOutboxRelay(a.Mediator, ledger, a.Log.Component("outbox_relay"), events.RelayConfig{
		PollInterval: a.Cfg.Outbox.PollInterval,
		BatchSize:    a.Cfg.Outbox.BatchSize,
		MaxAttempts:  a.Cfg.Outbox.MaxAttempts,
	})

	policies, err := a.Cfg.MediaPolicies()
	if err != nil {
		return err
	}
	factory, err := video.NewMediaFactory(policies)
	if err != nil {
		return err
	}

	publisher := events.NewCommitPublisher(persistence.NewGORMTransactionManager(a.DB), a.Mediator, ledger, a.Log)
	categoryRepo := categorypersistence.NewCategoryRepository(a.DB)
	videoRepo := videopersistence.NewVideoRepository(a.DB)

	a.UseCases = UseCases{
		CreateCategory:         categoryapp.NewCreateCategoryUseCase(categoryRepo, publisher),
		UpdateCategory:         categoryapp.NewUpdateCategoryUseCase(categoryRepo, publisher),
		GetCategory:            categoryapp.NewGetCategoryUseCase(categoryRepo),
		CreateVideo:            videoapp.NewCreateVideoUseCase(videoRepo, categoryRepo, publisher),
		ReplaceVideoMedia:      videoapp.NewReplaceVideoMediaUseCase(videoRepo, factory, publisher),
		ProcessAudioVideoMedia: videoapp.NewProcessAudioVideoMediaUseCase(videoRepo, publisher),
		GetVideo:               videoapp.NewGetVideoUseCase(videoRepo),
	}
	return nil
}

// Run 執行 outbox 重送直到 ctx 結束
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Relay == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("outbox relay started",
		"poll_interval", a.Cfg.Outbox.PollInterval,
		"max_attempts", a.Cfg.Outbox.MaxAttempts,
	)
	return a.Relay.Run(ctx)
}

// Close 釋放連線（反向順序）
func (a *App) Close() {
	if a == nil {
		return
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.Log != nil {
			a.Log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
	if a.Log != nil {
		a.Log.Sync()
	}
}
