package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"market/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements IntegrationPublisher using Google Cloud
// Pub/Sub, with one topic per message type so the indexer consumes category
// and product streams independently.
type googlePubSubPublisher struct {
	client            *pubsub.Client
	categoryPublisher *pubsub.Publisher
	productPublisher  *pubsub.Publisher
	logger            *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher over the
// category and product topics.
func NewGooglePubSubPublisher(ctx context.Context, projectID, categoryTopicID, productTopicID string, logger *slog.Logger) (service.IntegrationPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check both topics exist using TopicAdminClient
	for _, topicID := range []string{categoryTopicID, productTopicID} {
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
		_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
			Topic: topicPath,
		})
		if err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("category_topic", categoryTopicID),
		slog.String("product_topic", productTopicID),
	)

	return &googlePubSubPublisher{
		client:            client,
		categoryPublisher: client.Publisher(categoryTopicID),
		productPublisher:  client.Publisher(productTopicID),
		logger:            logger,
	}, nil
}

// PublishCategoryCreated publishes a category projection to the category topic.
func (p *googlePubSubPublisher) PublishCategoryCreated(ctx context.Context, msg service.CategoryCreatedMessage) error {
	attributes := map[string]string{
		"type":        "category_created",
		"category_id": msg.ID.String(),
	}

	return p.publish(ctx, p.categoryPublisher, msg, attributes)
}

// PublishProductCreated publishes a product projection to the product topic.
func (p *googlePubSubPublisher) PublishProductCreated(ctx context.Context, msg service.ProductCreatedMessage) error {
	attributes := map[string]string{
		"type":       "product_created",
		"product_id": msg.ID.String(),
	}

	return p.publish(ctx, p.productPublisher, msg, attributes)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, publisher *pubsub.Publisher, payload any, attributes map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	result := publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	// Wait for publish result so an enqueue failure fails the write path.
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Message published",
		slog.String("type", attributes["type"]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources.
func (p *googlePubSubPublisher) Close() error {
	if p.categoryPublisher != nil {
		p.categoryPublisher.Stop()
	}
	if p.productPublisher != nil {
		p.productPublisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
