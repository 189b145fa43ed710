package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"

	"github.com/pubnicaragua/investi-documentacion2/internal/config"
)

// Client is the single choke point for every outbound request to the
// backend-as-a-service: auth, row storage, object storage and RPC. It
// owns URL construction, header injection, serialization and error
// normalization. The client imposes no timeout and no retries of its own;
// a failed call is reported once.
type Client struct {
	http       *client.Client
	restURL    string
	authURL    string
	storageURL string
	anonKey    string
	staticTok  string
	tokens     TokenStore
	logger     *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithStaticToken pins a fixed bearer token (the service key) instead of
// reading the token store. The server uses this for privileged reads.
func WithStaticToken(token string) ClientOption {
	return func(c *Client) {
		c.staticTok = token
	}
}

// NewClient creates a BaaS client over the given token store
func NewClient(cfg config.SupabaseConfig, tokens TokenStore, logger *slog.Logger, opts ...ClientOption) (*Client, error) {
	restURL, err := normalizeBaseURL(cfg.RestURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rest url: %w", err)
	}
	authURL, err := normalizeBaseURL(cfg.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth url: %w", err)
	}
	storageURL, err := normalizeBaseURL(cfg.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}

	httpClient, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	c := &Client{
		http:       httpClient,
		restURL:    restURL,
		authURL:    authURL,
		storageURL: storageURL,
		anonKey:    cfg.AnonKey,
		tokens:     tokens,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// normalizeBaseURL validates a base URL and strips the trailing slash
func normalizeBaseURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid URL %q", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	// Params are stringified into the query; nil values are omitted
	// entirely rather than serialized as a literal placeholder.
	Params map[string]interface{}
	// Body is JSON-serialized unless RawBody is set.
	Body interface{}
	// RawBody is passed through untouched (binary uploads); when set,
	// no JSON content-type is attached.
	RawBody []byte
	// Headers are merged last: caller-supplied values win over defaults.
	Headers map[string]string
}

// Request performs one REST call and returns the raw success body.
// Non-2xx responses come back as *Error.
func (c *Client) Request(ctx context.Context, method, path string, opts *RequestOptions) ([]byte, error) {
	body, _, err := c.do(ctx, method, c.restURL+path, opts)
	return body, err
}

// responseMeta carries the response fields needed after the underlying
// protocol objects are released back to their pools.
type responseMeta struct {
	status       int
	contentRange string
}

// RequestRange performs a ranged REST call and additionally returns the
// total row count reported by the provider's Content-Range header.
func (c *Client) RequestRange(ctx context.Context, method, path string, opts *RequestOptions, offset, limit int) ([]byte, int, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	headers := map[string]string{
		"Range-Unit": "items",
		"Range":      fmt.Sprintf("%d-%d", offset, offset+limit-1),
		"Prefer":     "count=exact",
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	ranged := *opts
	ranged.Headers = headers

	body, meta, err := c.do(ctx, method, c.restURL+path, &ranged)
	if err != nil {
		return nil, 0, err
	}
	return body, parseContentRangeTotal(meta.contentRange), nil
}

// do builds, sends and checks a single request against a full URL.
func (c *Client) do(ctx context.Context, method, fullURL string, opts *RequestOptions) ([]byte, responseMeta, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	target := fullURL
	if query := encodeParams(opts.Params); query != "" {
		target = target + "?" + query
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(target)

	// Every request carries the static API key. The bearer token is added
	// only when one exists; an anonymous call is not an error.
	req.Header.Set("apikey", c.anonKey)
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	switch {
	case opts.RawBody != nil:
		req.SetBody(opts.RawBody)
	case opts.Body != nil:
		payload, err := sonic.Marshal(opts.Body)
		if err != nil {
			return nil, responseMeta{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(payload)
	}

	// caller headers win over defaults
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	if err := c.http.Do(ctx, req, resp); err != nil {
		return nil, responseMeta{}, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	meta := responseMeta{
		status:       status,
		contentRange: string(resp.Header.Peek("Content-Range")),
	}

	if status < 200 || status >= 300 {
		apiErr := normalizeError(status, body)
		c.logger.Debug("request failed",
			"method", method,
			"url", fullURL,
			"status", status,
			"code", apiErr.Code,
			"kind", apiErr.Kind.String(),
		)
		return nil, meta, apiErr
	}

	return body, meta, nil
}

// Ping checks reachability of the row-storage endpoint
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, "GET", "/", nil)
	return err
}

// bearerToken resolves the token to attach: the pinned service key when
// configured, otherwise whatever the store holds. Store errors are
// swallowed; the call simply goes out anonymous.
func (c *Client) bearerToken() string {
	if c.staticTok != "" {
		return c.staticTok
	}
	token, err := c.tokens.Get(KeyAccessToken)
	if err != nil {
		return ""
	}
	return token
}

// decodeJSON unmarshals a success body into out. An empty or non-JSON
// body resolves to a nil result rather than an error, matching the
// provider's 204-style responses.
func decodeJSON(body []byte, out interface{}) {
	if out == nil || len(body) == 0 {
		return
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return
	}
}

// encodeParams stringifies query parameters, omitting nil values
func encodeParams(params map[string]interface{}) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	return values.Encode()
}

// parseContentRangeTotal reads the total from "items 0-9/42" or "0-9/42";
// an absent or wildcard total yields 0.
func parseContentRangeTotal(header string) int {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0
	}
	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return 0
	}
	return total
}
