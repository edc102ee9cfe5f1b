package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mezcorridor/corridor-core/corridorerr"
)

// HttpPaymentRailAdapter is the {HttpAdapter} variant of
// PaymentRailCapability (spec.md §9.1): it submits the rendered ISO
// 20022 payload to a configured rail endpoint over HTTP. No
// third-party HTTP client library improves on net/http for a single
// synchronous POST with a caller-supplied context deadline, so this
// stays on the standard library (see DESIGN.md).
type HttpPaymentRailAdapter struct {
	Client   *http.Client
	Endpoint string
}

var _ PaymentRailCapability = HttpPaymentRailAdapter{}

type railRequest struct {
	MessageID string `json:"message_id"`
	Payload   string `json:"payload"`
}

type railResponse struct {
	RailReference string `json:"rail_reference"`
}

func (a HttpPaymentRailAdapter) Submit(ctx context.Context, messageID string, payload []byte) (RailAck, error) {
	body, err := json.Marshal(railRequest{MessageID: messageID, Payload: string(payload)})
	if err != nil {
		return RailAck{}, corridorerr.Wrapf(corridorerr.Internal, "adapter: encoding rail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return RailAck{}, corridorerr.Wrapf(corridorerr.Internal, "adapter: building rail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return RailAck{}, corridorerr.Wrapf(corridorerr.ServiceUnavailable, "adapter: rail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return RailAck{}, corridorerr.Wrapf(corridorerr.ServiceUnavailable, "adapter: rail returned %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return RailAck{}, corridorerr.Wrapf(corridorerr.Validation, "adapter: rail rejected submission: %d", resp.StatusCode)
	}

	var out railResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RailAck{}, corridorerr.Wrapf(corridorerr.Internal, "adapter: decoding rail response: %w", err)
	}
	return RailAck{RailReference: out.RailReference, AcceptedAt: time.Now().UTC()}, nil
}
