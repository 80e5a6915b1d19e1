package servicebus_test

import (
	"context"
	"testing"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/servicebus"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceBus_RequiresNamespace(t *testing.T) {
	client, err := servicebus.NewServiceBus(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestActivityServiceBus_WithoutClient(t *testing.T) {
	publisher := servicebus.NewActivityServiceBus(nil, "creatorflow-activity")

	err := publisher.Publish(context.Background(), model.ActivityEvent{Type: model.EventLogout})

	assert.EqualError(t, err, "service bus client is not configured")
}
