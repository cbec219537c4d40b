package dealerclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/internal/infra/httpclient"
)

const ServiceName = "dealer-service"

type Client struct {
	http *httpclient.Client
}

func NewClient(transport *httpclient.Client) *Client {
	return &Client{http: transport}
}

func (c *Client) FindByLocation(ctx context.Context, q dealer.LocationQuery) (*dealer.LocationResult, error) {
	var result dealer.LocationResult
	if err := c.http.Do(ctx, "search", http.MethodGet, "/dealers/search", searchParams(q), nil, &result); err != nil {
		return nil, err
	}
	if result.Dealers == nil {
		result.Dealers = []dealer.WithDistance{}
	}
	return &result, nil
}

func (c *Client) GetByID(ctx context.Context, id string, opts dealer.LookupOptions) (*dealer.Record, error) {
	var query url.Values
	if opts.InstallerOnly {
		query = url.Values{"installer": {"true"}}
	}

	var record dealer.Record
	if err := c.http.Do(ctx, "get", http.MethodGet, "/dealers/"+url.PathEscape(id), query, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func searchParams(q dealer.LocationQuery) url.Values {
	v := url.Values{}
	v.Set("latitude", formatFloat(q.Latitude))
	v.Set("longitude", formatFloat(q.Longitude))
	if q.Distance != nil {
		v.Set("distance", formatFloat(*q.Distance))
	}
	for _, country := range q.Country {
		v.Add("country", country)
	}
	if q.Channel != nil {
		v.Set("channel", *q.Channel)
	}
	if q.InstallerOnly {
		v.Set("installer", "true")
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
