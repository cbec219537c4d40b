package engineclient

import (
	"context"
	"net/http"
	"net/url"

	"appointment-gateway/internal/domain/appointment"
	"appointment-gateway/internal/infra/httpclient"
)

const ServiceName = "appointment-engine"

// Client talks to the availability and appointment engine.
type Client struct {
	http *httpclient.Client
}

func NewClient(transport *httpclient.Client) *Client {
	return &Client{http: transport}
}

func (c *Client) FreeSlots(ctx context.Context, batch []appointment.AvailabilityRequest) ([]appointment.DealerAvailability, error) {
	var out []appointment.DealerAvailability
	if err := c.http.Do(ctx, "free_slots", http.MethodPost, "/free-slots", nil, batch, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Book(ctx context.Context, booking appointment.Booking) (*appointment.BookingResult, error) {
	var out appointment.BookingResult
	if err := c.http.Do(ctx, "book", http.MethodPost, "/appointments", nil, booking, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, upd appointment.Update) error {
	return c.http.Do(ctx, "update", http.MethodPut, appointmentPath(upd.AppointmentID), nil, upd, nil)
}

func (c *Client) ProviderSynch(ctx context.Context, synch appointment.ProviderSynch) error {
	path := "/provider-appointments/" + url.PathEscape(synch.ProviderAppointmentID) + "/synch"
	return c.http.Do(ctx, "provider_synch", http.MethodPost, path, nil, synch, nil)
}

func (c *Client) Reopen(ctx context.Context, appointmentID string) error {
	return c.http.Do(ctx, "reopen", http.MethodPost, appointmentPath(appointmentID)+"/reopen", nil, nil, nil)
}

func (c *Client) GetByID(ctx context.Context, appointmentID string) (*appointment.Appointment, error) {
	var out appointment.Appointment
	if err := c.http.Do(ctx, "get", http.MethodGet, appointmentPath(appointmentID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListByUsers(ctx context.Context, q appointment.ListByIDs) ([]appointment.Appointment, error) {
	return c.list(ctx, "list_by_users", http.MethodPost, "/appointments/by-users", nil, q)
}

func (c *Client) ListByDealers(ctx context.Context, q appointment.ListByIDs) ([]appointment.Appointment, error) {
	return c.list(ctx, "list_by_dealers", http.MethodPost, "/appointments/by-dealers", nil, q)
}

func (c *Client) ListByOrder(ctx context.Context, orderID string, r appointment.Range) ([]appointment.Appointment, error) {
	return c.list(ctx, "list_by_order", http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/appointments", rangeParams(r), nil)
}

func (c *Client) Cancel(ctx context.Context, cancellation appointment.Cancellation) error {
	path := appointmentPath(cancellation.AppointmentID) + "/cancel"
	return c.http.Do(ctx, "cancel", http.MethodPost, path, nil, cancellation, nil)
}

func (c *Client) Complete(ctx context.Context, completion appointment.Completion) error {
	path := appointmentPath(completion.AppointmentID) + "/complete"
	return c.http.Do(ctx, "complete", http.MethodPost, path, nil, completion, nil)
}

func (c *Client) list(ctx context.Context, operation, method, path string, query url.Values, in any) ([]appointment.Appointment, error) {
	var out []appointment.Appointment
	if err := c.http.Do(ctx, operation, method, path, query, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []appointment.Appointment{}
	}
	return out, nil
}

func appointmentPath(id string) string {
	return "/appointments/" + url.PathEscape(id)
}

func rangeParams(r appointment.Range) url.Values {
	v := url.Values{}
	if r.DateFrom != "" {
		v.Set("dateFrom", r.DateFrom)
	}
	if r.DateTo != "" {
		v.Set("dateTo", r.DateTo)
	}
	if r.Status != "" {
		v.Set("status", r.Status)
	}
	return v
}
