package mailingclient

import (
	"context"
	"net/http"

	"appointment-gateway/internal/domain/notification"
	"appointment-gateway/internal/infra/httpclient"
)

const ServiceName = "mailing-service"

type Client struct {
	http *httpclient.Client
}

func NewClient(transport *httpclient.Client) *Client {
	return &Client{http: transport}
}

func (c *Client) NotifyByPinpoint(ctx context.Context, req notification.PinpointRequest) error {
	return c.http.Do(ctx, "notify_pinpoint", http.MethodPost, "/notifications/pinpoint", nil, req, nil)
}
