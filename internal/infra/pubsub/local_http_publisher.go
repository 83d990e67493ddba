package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"market/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher implements IntegrationPublisher by sending HTTP POST
// requests to the indexer's push endpoints, simulating Pub/Sub push behavior
// for development.
type localHTTPPublisher struct {
	categoryEndpoint string
	productEndpoint  string
	httpClient       *http.Client
	logger           *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message.
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development.
// The base endpoint is the indexer worker's root URL.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.IntegrationPublisher {
	return &localHTTPPublisher{
		categoryEndpoint: endpoint + "/push/categories",
		productEndpoint:  endpoint + "/push/products",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishCategoryCreated posts a category projection to the category push endpoint.
func (p *localHTTPPublisher) PublishCategoryCreated(ctx context.Context, msg service.CategoryCreatedMessage) error {
	attributes := map[string]string{
		"type":        "category_created",
		"category_id": msg.ID.String(),
	}

	return p.publish(ctx, p.categoryEndpoint, "category-sub", msg, attributes)
}

// PublishProductCreated posts a product projection to the product push endpoint.
func (p *localHTTPPublisher) PublishProductCreated(ctx context.Context, msg service.ProductCreatedMessage) error {
	attributes := map[string]string{
		"type":       "product_created",
		"product_id": msg.ID.String(),
	}

	return p.publish(ctx, p.productEndpoint, "product-sub", msg, attributes)
}

func (p *localHTTPPublisher) publish(ctx context.Context, endpoint, subscription string, payload any, attributes map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/" + subscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing message",
		slog.String("endpoint", endpoint),
		slog.String("type", attributes["type"]),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client).
func (p *localHTTPPublisher) Close() error {
	return nil
}
