package pubsub_test

import (
	"context"
	"testing"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/pubsub"

	"github.com/stretchr/testify/assert"
)

func TestNewPubSub_RequiresProject(t *testing.T) {
	client, err := pubsub.NewPubSub(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestActivityPubSub_WithoutClient(t *testing.T) {
	publisher := pubsub.NewActivityPubSub(nil, "creatorflow-activity")

	err := publisher.Publish(context.Background(), model.ActivityEvent{Type: model.EventLogin})

	assert.EqualError(t, err, "pubsub client is not configured")
	assert.NotPanics(t, publisher.Stop)
}
