package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

// ActivityEvent is the payload published for every audit-log row. External
// consumers (analytics, anti-fraud) subscribe to the topic; the backend never
// reads it back.
type ActivityEvent struct {
	BranchId      uint      `json:"branch_id"`
	UserId        uint      `json:"user_id"`
	Module        string    `json:"module"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	OccurredAt    time.Time `json:"occurred_at"`
	CorrelationId string    `json:"correlation_id"`
}

var (
	pubsubClient   *pubsub.Client
	pubsubClientMu sync.Mutex
)

func init() {
	// Load env from .env
	godotenv.Load()
}

func getPubSubProjectID() string {
	if v := os.Getenv("PUBSUB_PROJECT_ID"); v != "" {
		return v
	}
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		return v
	}
	return ""
}

func getPubSubClient(ctx context.Context) (*pubsub.Client, error) {
	pubsubClientMu.Lock()
	defer pubsubClientMu.Unlock()
	if pubsubClient != nil {
		return pubsubClient, nil
	}

	projectID := getPubSubProjectID()
	if projectID == "" {
		return nil, errors.New("PUBSUB_PROJECT_ID/GOOGLE_CLOUD_PROJECT not set")
	}

	var opts []option.ClientOption
	if credJSON := os.Getenv("PUBSUB_CREDENTIALS_JSON"); credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}
	pubsubClient = client
	return pubsubClient, nil
}

func activityTopicID() string {
	if v := os.Getenv("PUBSUB_ACTIVITY_TOPIC"); v != "" {
		return v
	}
	return "branch-activities"
}

// PublishActivityEvent is best-effort: when Pub/Sub is not configured it is a
// no-op, and callers treat publish errors as log-and-continue. Audit rows in
// the database remain the source of truth.
func PublishActivityEvent(ctx context.Context, event ActivityEvent) error {
	if getPubSubProjectID() == "" {
		return nil
	}
	client, err := getPubSubClient(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	topic := client.Topic(activityTopicID())
	result := topic.Publish(ctx, &pubsub.Message{Data: payload})
	_, err = result.Get(ctx)
	return err
}
