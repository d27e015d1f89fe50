package events

import (
	"context"
	"time"
)

// RelayConfig OutboxRelay 設定
type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int // 包含第一次失敗的發布
}

// RelayStats 單輪重送統計
type RelayStats struct {
	Delivered int
	Retrying  int
	Dead      int
}

// OutboxRelay 定期重送重試帳本中的整合事件
//
// 每個項目以原處理器重送；找不到處理器或超過 MaxAttempts 時標記為 dead。
type OutboxRelay struct {
	mediator *Mediator
	ledger   RetryLedger
	logger   Logger
	cfg      RelayConfig
}

// NewOutboxRelay 建立 OutboxRelay（非正數設定使用預設值）
func NewOutboxRelay(mediator *Mediator, ledger RetryLedger, logger Logger, cfg RelayConfig) *OutboxRelay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &OutboxRelay{
		mediator: mediator,
		ledger:   ledger,
		logger:   logger,
		cfg:      cfg,
	}
}

// Run 持續輪詢直到 ctx 結束
func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.Error("outbox relay iteration failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce 重送一批待處理項目
func (r *OutboxRelay) RunOnce(ctx context.Context) (RelayStats, error) {
	var stats RelayStats

	pending, err := r.ledger.Pending(ctx, r.cfg.BatchSize)
	if err != nil {
		return stats, err
	}

	for _, p := range pending {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		if p.Attempts >= r.cfg.MaxAttempts {
			cause := ErrRetriesExhausted.WithContext("attempts", p.Attempts, "max_attempts", r.cfg.MaxAttempts)
			if err := r.ledger.MarkRetryFailed(ctx, p.ID, cause, true); err != nil {
				return stats, err
			}
			stats.Dead++
			continue
		}

		handler, ok := r.mediator.handler(p.Kind, p.Handler)
		if !ok {
			cause := ErrHandlerNotFound.WithContext("kind", p.Kind.String(), "handler", p.Handler)
			if err := r.ledger.MarkRetryFailed(ctx, p.ID, cause, true); err != nil {
				return stats, err
			}
			stats.Dead++
			continue
		}

		sendErr := invoke(ctx, handler, p.Event)
		if sendErr == nil {
			if err := r.ledger.MarkDelivered(ctx, p.ID); err != nil {
				return stats, err
			}
			stats.Delivered++
			continue
		}

		dead := p.Attempts+1 >= r.cfg.MaxAttempts
		if err := r.ledger.MarkRetryFailed(ctx, p.ID, sendErr, dead); err != nil {
			return stats, err
		}
		if dead {
			stats.Dead++
			r.logger.Error("integration event gave up after retries",
				"entry_id", p.ID,
				"event_id", p.Event.EventID(),
				"handler", p.Handler,
				"attempts", p.Attempts+1,
				"error", sendErr,
			)
		} else {
			stats.Retrying++
		}
	}

	if len(pending) > 0 {
		r.logger.Info("outbox relay batch processed",
			"delivered", stats.Delivered,
			"retrying", stats.Retrying,
			"dead", stats.Dead,
		)
	}
	return stats, nil
}
