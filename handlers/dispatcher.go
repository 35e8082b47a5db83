package handlers

import (
	"context"
	"log"

	"github.com/gammazero/workerpool"

	"reacjilator/metrics"
	"reacjilator/middleware"
	"reacjilator/models"
)

const (
	TransportWebhook    = "webhook"
	TransportSocketMode = "socket_mode"
)

// ReactionProcessor runs the relay pipeline for a single reaction event
type ReactionProcessor interface {
	ProcessReactionAdded(ctx context.Context, event models.ReactionEvent) error
}

// ReactionDispatcher hands reaction events off to be processed asynchronously
type ReactionDispatcher interface {
	Dispatch(transport string, event models.ReactionEvent)
}

// EventDispatcher runs the relay pipeline on a bounded worker pool so the
// transports can acknowledge Slack before any external call is made.
type EventDispatcher struct {
	processor       ReactionProcessor
	alertMiddleware *middleware.ErrorAlertMiddleware
	workerPool      *workerpool.WorkerPool
}

func NewEventDispatcher(
	processor ReactionProcessor,
	alertMiddleware *middleware.ErrorAlertMiddleware,
	workers int,
) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &EventDispatcher{
		processor:       processor,
		alertMiddleware: alertMiddleware,
		workerPool:      workerpool.New(workers),
	}
}

func (d *EventDispatcher) Dispatch(transport string, event models.ReactionEvent) {
	metrics.IncEventReceived(transport)

	task := d.alertMiddleware.WrapBackgroundTask("ProcessReactionAdded", func() error {
		return d.processor.ProcessReactionAdded(context.Background(), event)
	})
	d.workerPool.Submit(func() {
		_ = task()
	})
}

// Stop waits for queued events to finish and stops the workers
func (d *EventDispatcher) Stop() {
	log.Printf("📋 Starting to drain event dispatcher (%d queued)", d.workerPool.WaitingQueueSize())
	d.workerPool.StopWait()
	log.Printf("📋 Completed successfully - drained event dispatcher")
}
