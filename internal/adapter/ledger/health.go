package ledger

import "context"

// HealthCheck implements ports.HealthChecker against the XRPL node.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a ledger health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks node reachability with a server_info call.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var info struct {
		Info struct {
			BuildVersion string `json:"build_version"`
		} `json:"info"`
	}
	return h.client.call(ctx, "server_info", map[string]any{}, &info)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "ledger"
}
