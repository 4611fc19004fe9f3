package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/config"
	"robomua/aiysha-bot/internal/metrics"
	"robomua/aiysha-bot/internal/retry"
)

// Client posts payloads and moves media through the Cloud API.
type Client struct {
	token       string
	messagesURL string
	mediaURL    string
	sendDelay   time.Duration
	http        *http.Client
	policy      retry.Policy
	log         *zap.Logger
}

func NewClient(cfg config.WhatsAppConfig, policy retry.Policy, log *zap.Logger) *Client {
	return &Client{
		token:       cfg.Token,
		messagesURL: cfg.MessagesURL,
		mediaURL:    cfg.MediaURL,
		sendDelay:   cfg.SendDelay,
		http:        &http.Client{Timeout: 30 * time.Second},
		policy:      policy,
		log:         log,
	}
}

// Send posts a single payload to the messages endpoint.
func (c *Client) Send(ctx context.Context, p Payload) error {
	start := time.Now()
	defer func() {
		metrics.DeliveryLatency.Observe(float64(time.Since(start).Milliseconds()))
	}()

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error encoding payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("messages endpoint returned status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

// Deliver sends each payload in order, best effort: a failed send is logged
// and skipped, the rest of the sequence still goes out. After each successful
// send the configured delay is honored as rate-limiting courtesy.
func (c *Client) Deliver(ctx context.Context, payloads []Payload) {
	for _, p := range payloads {
		if err := c.Send(ctx, p); err != nil {
			metrics.PayloadsFailed.Inc()
			c.log.Error("payload delivery failed",
				zap.String("to", p.To),
				zap.String("type", p.Type),
				zap.Error(err))
			continue
		}
		metrics.PayloadsSent.Inc()
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.sendDelay):
		}
	}
}
