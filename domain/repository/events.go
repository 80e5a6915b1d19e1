package repository

import (
	"context"

	"creatorflow/domain/model"
)

// IEventPublisher is a sink for activity events.
type IEventPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}
