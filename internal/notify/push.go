package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultPushEndpoint is the Expo push gateway.
const DefaultPushEndpoint = "https://exp.host/--/api/v2/push/send"

// PushSender posts messages to an Expo-compatible push gateway.
type PushSender struct {
	Endpoint string
	Client   *http.Client
}

// NewPushSender returns a sender for endpoint, defaulting to the Expo
// gateway with a short timeout.
func NewPushSender(endpoint string) *PushSender {
	if endpoint == "" {
		endpoint = DefaultPushEndpoint
	}
	return &PushSender{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *PushSender) Send(ctx context.Context, m Message) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal push: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("push send: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push send: gateway status %d", resp.StatusCode)
	}
	return nil
}
