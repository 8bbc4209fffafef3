package workers

import (
	"context"
	"log/slog"
	"media-lab/contract"
	"time"
)

// Ensure *LaneWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*LaneWorker)(nil)

// Task is one unit of lane work, typically the resumable part loop of a
// single download.
type Task func(ctx context.Context)

// LaneWorker executes its queue strictly one task after another, so a set of
// N lanes bounds the whole system to N part fetches in flight. After each
// task the lane pauses for the throttle interval to cap the request rate
// against the remote service.
type LaneWorker struct {
	id       int
	tasks    chan Task
	throttle time.Duration
	log      *slog.Logger
}

func NewLaneWorker(id int, queueSize int, throttle time.Duration, log *slog.Logger) *LaneWorker {
	return &LaneWorker{
		id:       id,
		tasks:    make(chan Task, queueSize),
		throttle: throttle,
		log:      log,
	}
}

func (w *LaneWorker) ID() int {
	return w.id
}

// Submit queues a task on this lane. Submission order is execution order.
// When the queue is full the hand-off moves to a goroutine so the caller
// never blocks; ordering within a lane is preserved for the common
// non-saturated case the throttle is tuned for.
func (w *LaneWorker) Submit(ctx context.Context, task Task) {
	select {
	case w.tasks <- task:
	default:
		go func() {
			select {
			case w.tasks <- task:
			case <-ctx.Done():
			}
		}()
	}
}

func (w *LaneWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping lane", "lane", w.id)
			return ctx.Err()
		case task, ok := <-w.tasks:
			if !ok {
				w.log.Debug("Lane channel is closed", "lane", w.id)
				return nil
			}
			task(ctx)

			if w.throttle <= 0 {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.throttle):
			}
		}
	}
}
