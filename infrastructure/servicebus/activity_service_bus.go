package servicebus

import (
	"context"
	"encoding/json"
	"errors"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

var errNoClient = errors.New("service bus client is not configured")

// NewServiceBus connects to a namespace such as "example.servicebus.windows.net"
// using the default Azure credential chain.
func NewServiceBus(ctx context.Context, namespace string) (*azservicebus.Client, error) {
	if namespace == "" {
		return nil, errors.New("service bus namespace is empty")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, cred, nil)
}

// ActivityServiceBus sends activity events to a queue.
type ActivityServiceBus struct {
	AzservicebusClient *azservicebus.Client
	queue              string
}

func NewActivityServiceBus(azServiceBusClient *azservicebus.Client, queue string) *ActivityServiceBus {
	return &ActivityServiceBus{AzservicebusClient: azServiceBusClient, queue: queue}
}

func (s *ActivityServiceBus) Publish(ctx context.Context, event model.ActivityEvent) error {
	if s.AzservicebusClient == nil {
		return errNoClient
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	sender, err := s.AzservicebusClient.NewSender(s.queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if err := sender.Close(context.WithoutCancel(ctx)); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}()

	contentType := "application/json"
	subject := event.Type
	sbMessage := &azservicebus.Message{
		Body:        payload,
		ContentType: &contentType,
		Subject:     &subject,
	}
	if err := sender.SendMessage(ctx, sbMessage, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}
