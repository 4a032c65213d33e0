package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hekimalabs/smas_backend/utils"
)

// Sender delivers branch notifications. The scheduler depends on this
// interface so tests can capture outbound messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one gateway request. Vendor and ApiKey come from the
// branch record so each tenant pays for its own traffic.
type Message struct {
	Text      string   `json:"message"`
	Receivers []string `json:"receivers"`
	Vendor    string   `json:"vendor"`
	ApiKey    string   `json:"apiKey"`
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter <-chan time.Time
}

func NewClient() *Client {
	baseURL := strings.TrimSpace(utils.GetEnv("SMS_API_BASE_URL", "https://api.emessage.co.tz"))

	rateLimitPerMin := utils.GetEnvInt("SMS_RATE_LIMIT_PER_MIN", 60)
	if rateLimitPerMin <= 0 {
		rateLimitPerMin = 60
	}
	interval := time.Minute / time.Duration(rateLimitPerMin)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: time.Tick(interval),
	}
}

// Send posts the message to the gateway. A message whose text is
// empty after trimming is a no-op, not an error.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}
	if len(msg.Receivers) == 0 {
		return errors.New("sms message has no receivers")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	<-c.limiter
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
