package events

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ===========================
// Domain Event Mediator
// ===========================

// IntegrationEventHandler 整合事件處理器
//
// 每個處理器在建構時綁定唯一的 EventKind，只負責把整合事件轉交給外部協作者，
// 不包含業務邏輯。
type IntegrationEventHandler interface {
	Kind() shared.EventKind
	Name() string
	Handle(ctx context.Context, event shared.IntegrationEvent) error
}

// HandlerResult 單次處理器調用結果
type HandlerResult struct {
	Event   shared.IntegrationEvent
	Kind    shared.EventKind
	Handler string
	Err     error
}

// EventID 整合事件 ID
func (r HandlerResult) EventID() string {
	return r.Event.EventID()
}

// Succeeded 是否成功
func (r HandlerResult) Succeeded() bool {
	return r.Err == nil
}

// Mediator 領域事件 → 整合事件處理器的註冊表與派發器
//
// 規則：
// - 同一 (kind, handler) 重複註冊不會重複派發
// - 沒有整合事件或沒有處理器的領域事件直接略過
// - 每個處理器按事件緩衝順序依序處理；不同處理器之間並行
// - 處理器失敗逐一回報，不影響其他處理器
type Mediator struct {
	mu             sync.RWMutex
	handlers       map[shared.EventKind][]IntegrationEventHandler
	maxConcurrency int
}

// NewMediator 建立 Mediator，maxConcurrency <= 0 表示不限制並行處理器數量
func NewMediator(maxConcurrency int) *Mediator {
	return &Mediator{
		handlers:       make(map[shared.EventKind][]IntegrationEventHandler),
		maxConcurrency: maxConcurrency,
	}
}

// Register 註冊處理器（以處理器自身的 Kind 為鍵）
//
// 同一處理器重複註冊視為無操作；同種事件下名稱相同的不同處理器返回 ErrInvalidHandler。
func (m *Mediator) Register(handler IntegrationEventHandler) error {
	if handler == nil {
		return ErrInvalidHandler.WithContext("reason", "nil handler")
	}
	kind := handler.Kind()
	if !kind.Valid() {
		return ErrUnknownEventKind.WithContext(
			"kind", int(kind),
			"handler", handler.Name(),
		)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.handlers[kind] {
		if sameHandler(existing, handler) {
			return nil
		}
		// 重試以 (kind, name) 找回處理器，名稱必須唯一
		if existing.Name() == handler.Name() {
			return ErrInvalidHandler.WithContext(
				"reason", "duplicate handler name",
				"kind", kind.String(),
				"handler", handler.Name(),
			)
		}
	}
	m.handlers[kind] = append(m.handlers[kind], handler)
	return nil
}

// RegisterAll 依序註冊多個處理器，遇到第一個錯誤即返回
func (m *Mediator) RegisterAll(handlers ...IntegrationEventHandler) error {
	for _, h := range handlers {
		if err := m.Register(h); err != nil {
			return err
		}
	}
	return nil
}

// Handlers 返回某種事件的處理器（副本）
func (m *Mediator) Handlers(kind shared.EventKind) []IntegrationEventHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]IntegrationEventHandler(nil), m.handlers[kind]...)
}

// handler 依名稱查找處理器（重試時使用）
func (m *Mediator) handler(kind shared.EventKind, name string) (IntegrationEventHandler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.handlers[kind] {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// ===========================
// Dispatch
// ===========================

// queue 單一處理器的待處理事件（保持緩衝順序）
type queue struct {
	handler IntegrationEventHandler
	jobs    []job
}

type job struct {
	event shared.IntegrationEvent
	slot  int // 在結果切片中的位置
}

// Dispatch 把領域事件轉為整合事件並交給已註冊的處理器
//
// 返回每次調用的結果（依事件順序、同一事件內依註冊順序）。
// 任一處理器失敗時 error 為 *DispatchError。
// events 中出現 nil 屬於調用錯誤，直接 panic。
func (m *Mediator) Dispatch(ctx context.Context, events []shared.DomainEvent) ([]HandlerResult, error) {
	queues, results := m.plan(events)
	if len(queues) == 0 {
		return results, nil
	}

	var g errgroup.Group
	if m.maxConcurrency > 0 {
		g.SetLimit(m.maxConcurrency)
	}

	for _, q := range queues {
		q := q
		g.Go(func() error {
			for _, j := range q.jobs {
				err := ctx.Err()
				if err == nil {
					err = invoke(ctx, q.handler, j.event)
				}
				results[j.slot].Err = err
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, newDispatchError(results)
}

// DispatchOutcome 非同步派發結果
type DispatchOutcome struct {
	Results []HandlerResult
	Err     error
}

// DispatchAsync 在背景派發，完成後送出一個結果並關閉通道
func (m *Mediator) DispatchAsync(ctx context.Context, events []shared.DomainEvent) <-chan DispatchOutcome {
	mustNotContainNil(events)

	out := make(chan DispatchOutcome, 1)
	go func() {
		defer close(out)
		results, err := m.Dispatch(ctx, events)
		out <- DispatchOutcome{Results: results, Err: err}
	}()
	return out
}

// Publish 取出聚合根緩衝的事件並派發
func (m *Mediator) Publish(ctx context.Context, aggregate shared.AggregateRoot) ([]HandlerResult, error) {
	return m.Dispatch(ctx, aggregate.PullEvents())
}

// plan 建立每個處理器的佇列並預先配置結果
func (m *Mediator) plan(events []shared.DomainEvent) ([]*queue, []HandlerResult) {
	mustNotContainNil(events)

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := []HandlerResult{}
	var queues []*queue
	index := make(map[shared.EventKind][]*queue)

	for _, ev := range events {
		integration, ok := toIntegrationEvent(ev)
		if !ok {
			continue
		}
		handlers := m.handlers[ev.Kind()]
		if len(handlers) == 0 {
			continue
		}

		if _, built := index[ev.Kind()]; !built {
			for _, h := range handlers {
				q := &queue{handler: h}
				index[ev.Kind()] = append(index[ev.Kind()], q)
				queues = append(queues, q)
			}
		}

		for _, q := range index[ev.Kind()] {
			results = append(results, HandlerResult{
				Event:   integration,
				Kind:    ev.Kind(),
				Handler: q.handler.Name(),
			})
			q.jobs = append(q.jobs, job{event: integration, slot: len(results) - 1})
		}
	}
	return queues, results
}

// invoke 執行處理器並把 panic 轉為錯誤
func invoke(ctx context.Context, h IntegrationEventHandler, event shared.IntegrationEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrHandlerPanicked.WithContext(
				"handler", h.Name(),
				"event_id", event.EventID(),
				"panic", fmt.Sprint(r),
			)
		}
	}()
	return h.Handle(ctx, event)
}

func toIntegrationEvent(ev shared.DomainEvent) (shared.IntegrationEvent, bool) {
	source, ok := ev.(shared.IntegrationEventSource)
	if !ok {
		return nil, false
	}
	return source.ToIntegrationEvent()
}

// sameHandler 以介面值相等判斷處理器身分（不可比較的類型視為不同）
func sameHandler(a, b IntegrationEventHandler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func mustNotContainNil(events []shared.DomainEvent) {
	for i, ev := range events {
		if isNilEvent(ev) {
			panic(fmt.Sprintf("Mediator.Dispatch: events[%d] is nil", i))
		}
	}
}

func isNilEvent(ev shared.DomainEvent) bool {
	if ev == nil {
		return true
	}
	rv := reflect.ValueOf(ev)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
