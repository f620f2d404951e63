package client

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/metrics"
)

type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Interface interface {
	Get(ctx context.Context, path string) (*Response, error)
}

type Client struct {
	baseURL    string
	upstream   string
	userAgent  string
	accept     string
	httpClient *http.Client
	GetFunc    func(ctx context.Context, path string) (*Response, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Upstream labels metrics and log lines, e.g. "stations" or "geocoder"
	Upstream  string
	UserAgent string
	Accept    string
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	if opts.Upstream == "" {
		opts.Upstream = "default"
	}

	if opts.Accept == "" {
		opts.Accept = "application/json"
	}

	return &Client{
		baseURL:   opts.BaseURL,
		upstream:  opts.Upstream,
		userAgent: opts.UserAgent,
		accept:    opts.Accept,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, path)
	}

	var fullURL string
	if c.baseURL == "" {
		fullURL = path // If no base URL, treat path as full URL
	} else {
		fullURL = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", c.accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(c.upstream).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.upstream, "error").Inc()
		log.Ctx(ctx).Debug().Err(err).Str("upstream", c.upstream).Msg("Upstream request failed")
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			return
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.upstream, "error").Inc()
		return nil, err
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(c.upstream, strconv.Itoa(resp.StatusCode)).Inc()
	log.Ctx(ctx).Debug().
		Str("upstream", c.upstream).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Upstream request completed")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
