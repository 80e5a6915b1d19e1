package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

var errNoClient = errors.New("pubsub client is not configured")

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub project id is empty")
	}
	return pubsub.NewClient(ctx, projectID)
}

// ActivityPubSub publishes activity events as JSON messages on one topic.
type ActivityPubSub struct {
	PubSubClient *pubsub.Client
	topicName    string

	mu    sync.Mutex
	topic *pubsub.Topic
}

func NewActivityPubSub(pubSubClient *pubsub.Client, topicName string) *ActivityPubSub {
	return &ActivityPubSub{PubSubClient: pubSubClient, topicName: topicName}
}

func (p *ActivityPubSub) Publish(ctx context.Context, event model.ActivityEvent) error {
	if p.PubSubClient == nil {
		return errNoClient
	}
	topic, err := p.ensureTopic(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &pubsub.Message{
		Data:       payload,
		Attributes: map[string]string{"type": event.Type},
	}
	serverID, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return err
	}

	logger.GetLogger().
		WithField("server ID", serverID).
		WithField("event", event.Type).
		Debug("Activity published")
	return nil
}

// ensureTopic creates the topic on first use if it doesn't exist.
func (p *ActivityPubSub) ensureTopic(ctx context.Context) (*pubsub.Topic, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topic != nil {
		return p.topic, nil
	}

	topic := p.PubSubClient.Topic(p.topicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.topicName).Info("Topic doesn't exist - creating it")
		topic, err = p.PubSubClient.CreateTopic(ctx, p.topicName)
		if err != nil {
			return nil, err
		}
	}
	p.topic = topic
	return topic, nil
}

// Stop flushes pending messages.
func (p *ActivityPubSub) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topic != nil {
		p.topic.Stop()
	}
}
