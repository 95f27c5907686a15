package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"directory/internal/domain/service"
	"directory/internal/errors"

	"gocloud.dev/pubsub"
	// Registers the mem:// scheme used for local runs and tests.
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher implements EventPublisher on a Go CDK topic URL.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic behind topicURL.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &goCloudPublisher{
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishUserRegistered sends the event as a JSON body.
func (p *goCloudPublisher) PublishUserRegistered(ctx context.Context, event *service.UserRegisteredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &pubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.Wrap(err, "failed to send user registered event")
	}

	p.logger.DebugContext(ctx, "[GoCloudPubSub] Event published",
		slog.String("user_id", event.UserID),
	)

	return nil
}

// Close flushes pending sends and releases the topic.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
