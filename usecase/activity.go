package usecase

import (
	"context"
	"time"

	"creatorflow/domain/model"
	"creatorflow/domain/repository"
	"creatorflow/infrastructure/logger"
)

const sinkTimeout = 3 * time.Second

// IActivity receives notifications about local state changes.
type IActivity interface {
	Emit(ctx context.Context, event model.ActivityEvent)
}

// ActivityFeed fans events out to every configured sink. Delivery is best
// effort: a failing sink is logged and skipped.
type ActivityFeed struct {
	sinks []repository.IEventPublisher
	now   func() time.Time
}

func NewActivityFeed(sinks ...repository.IEventPublisher) *ActivityFeed {
	return &ActivityFeed{sinks: sinks, now: time.Now}
}

// Add registers another sink.
func (f *ActivityFeed) Add(sink repository.IEventPublisher) *ActivityFeed {
	if sink != nil {
		f.sinks = append(f.sinks, sink)
	}
	return f
}

func (f *ActivityFeed) Emit(ctx context.Context, event model.ActivityEvent) {
	if f == nil {
		return
	}
	if event.At.IsZero() {
		event.At = f.now().UTC()
	}
	for _, sink := range f.sinks {
		sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
		if err := sink.Publish(sinkCtx, event); err != nil {
			logger.GetLogger().
				WithField("error", err).
				WithField("event", event.Type).
				Warn("Activity sink rejected event")
		}
		cancel()
	}
}

type noActivity struct{}

func (noActivity) Emit(context.Context, model.ActivityEvent) {}
