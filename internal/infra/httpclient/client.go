package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"appointment-gateway/internal/infra"
	"appointment-gateway/internal/pkg/errs"
	"appointment-gateway/internal/pkg/metrics"
	"appointment-gateway/internal/pkg/reqctx"
)

const (
	HeaderStage     = "X-Stage"
	HeaderRegion    = "X-Region"
	HeaderRequestID = "X-Request-ID"
)

type Options struct {
	Service string
	BaseURL string
	Timeout time.Duration
	Stage   string
	Region  string
}

// Client is the JSON transport shared by the upstream clients.
type Client struct {
	service    string
	baseURL    string
	stage      string
	region     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func New(opts Options, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		service: opts.Service,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		stage:   opts.Stage,
		region:  opts.Region,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		metrics: m,
		logger:  logger.With(slog.String("upstream", opts.Service)),
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// Do sends in as the JSON body (when non-nil) and decodes a 2xx response into
// out (when non-nil). Non-2xx responses become infra.UpstreamError.
func (c *Client) Do(ctx context.Context, operation, method, path string, query url.Values, in, out any) error {
	start := time.Now()
	err := c.do(ctx, method, path, query, in, out)
	c.metrics.ObserveUpstream(c.service, operation, err, time.Since(start))
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errs.Wrap(err, "failed to create request")
	}
	c.setHeaders(req, in != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.NewUpstreamErr(c.logger, infra.KindTransport, 0, "failed to call "+c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errs.Is(err, io.EOF) {
			return nil
		}
		return infra.NewUpstreamErr(c.logger, infra.KindBadResponse, resp.StatusCode, "failed to decode "+c.service+" response", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderStage, c.stage)
	req.Header.Set(HeaderRegion, c.region)
	if id := reqctx.RequestID(req.Context()); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var eb errorBody
	msg := http.StatusText(resp.StatusCode)
	if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
		msg = eb.Message
	}

	return infra.NewUpstreamErr(c.logger, infra.KindForStatus(resp.StatusCode), resp.StatusCode, msg, nil)
}
