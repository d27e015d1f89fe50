package events

import (
	"context"
	"time"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// Logger 應用層需要的最小日誌介面（infrastructure/logger.Logger 滿足此介面）
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ===========================
// 重試帳本
// ===========================

// PendingDelivery 待重送的整合事件
type PendingDelivery struct {
	ID       string
	Event    shared.IntegrationEvent
	Kind     shared.EventKind
	Handler  string
	Attempts int
}

// RetryLedger 記錄提交後發布失敗的整合事件，供 OutboxRelay 重送
type RetryLedger interface {
	// RecordFailure 保存一次失敗的處理器調用（Attempts 從 1 開始）
	RecordFailure(ctx context.Context, result HandlerResult) error

	// Pending 取出最早的待重送項目
	Pending(ctx context.Context, limit int) ([]PendingDelivery, error)

	// MarkDelivered 重送成功
	MarkDelivered(ctx context.Context, id string) error

	// MarkRetryFailed 重送失敗；dead 為 true 時不再重送
	MarkRetryFailed(ctx context.Context, id string, cause error, dead bool) error
}

// ===========================
// CommitPublisher
// ===========================

// UnitOfWork 在事務中執行的命令，返回需要發布事件的聚合根
type UnitOfWork func(tx shared.TransactionContext) ([]shared.AggregateRoot, error)

// CommitPublisher 先提交、後發布
//
// 事務失敗時不發布任何事件。發布失敗不回滾已提交的變更，
// 失敗的調用寫入重試帳本並記錄日誌。
type CommitPublisher struct {
	txManager shared.TransactionManager
	mediator  *Mediator
	ledger    RetryLedger
	logger    Logger
}

// NewCommitPublisher 建立 CommitPublisher，ledger 可為 nil（只記錄日誌）
func NewCommitPublisher(
	txManager shared.TransactionManager,
	mediator *Mediator,
	ledger RetryLedger,
	logger Logger,
) *CommitPublisher {
	return &CommitPublisher{
		txManager: txManager,
		mediator:  mediator,
		ledger:    ledger,
		logger:    logger,
	}
}

// Execute 執行命令並在提交後派發事件
//
// 返回的 error 只來自命令或事務；發布結果在 []HandlerResult 中。
func (p *CommitPublisher) Execute(ctx context.Context, work UnitOfWork) ([]HandlerResult, error) {
	var aggregates []shared.AggregateRoot

	err := p.txManager.InTransaction(func(tx shared.TransactionContext) error {
		var err error
		aggregates, err = work(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	var events []shared.DomainEvent
	for _, agg := range aggregates {
		if agg == nil {
			continue
		}
		events = append(events, agg.PullEvents()...)
	}
	if len(events) == 0 {
		return []HandlerResult{}, nil
	}

	start := time.Now()
	results, dispatchErr := p.mediator.Dispatch(ctx, events)
	if dispatchErr != nil {
		p.recordFailures(ctx, results)
	}

	p.logger.Info("integration events dispatched",
		"domain_events", len(events),
		"invocations", len(results),
		"duration", time.Since(start),
	)
	return results, nil
}

func (p *CommitPublisher) recordFailures(ctx context.Context, results []HandlerResult) {
	for _, r := range results {
		if r.Err == nil {
			continue
		}

		p.logger.Warn("integration event publish failed",
			"event_id", r.EventID(),
			"event_name", r.Event.EventName(),
			"handler", r.Handler,
			"error", r.Err,
		)

		if p.ledger == nil {
			continue
		}
		// 命令的 ctx 可能已被取消，帳本寫入不應因此遺失
		if err := p.ledger.RecordFailure(context.WithoutCancel(ctx), r); err != nil {
			p.logger.Error("failed to record publish failure",
				"event_id", r.EventID(),
				"handler", r.Handler,
				"error", err,
			)
		}
	}
}
