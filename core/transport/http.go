package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/centrifuge/core/envelope"
	"github.com/dmitrymomot/centrifuge/pkg/signer"
)

const (
	// SignHeader carries the hex HMAC-SHA256 of the request body.
	SignHeader = "X-API-Sign"

	apiPath = "/api"

	// DefaultHTTPTimeout bounds a request when no client is supplied.
	DefaultHTTPTimeout = 10 * time.Second

	// maxReplySize caps how much of a reply body is read.
	maxReplySize = 10 << 20
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time check that HTTP implements Transport.
var _ Transport = (*HTTP)(nil)

// HTTP sends envelopes to the hub's HTTP API.
type HTTP struct {
	url    string
	signer *signer.Signer
	client Doer
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithDoer sets the HTTP client. Timeouts, proxies and TLS are its concern.
func WithDoer(client Doer) HTTPOption {
	return func(t *HTTP) {
		if client != nil {
			t.client = client
		}
	}
}

// NewHTTP creates an HTTP transport for the hub at baseURL.
func NewHTTP(baseURL string, s *signer.Signer, opts ...HTTPOption) (*HTTP, error) {
	if s == nil {
		return nil, ErrNilSigner
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, baseURL)
	}

	t := &HTTP{
		url:    NormalizeURL(baseURL),
		signer: s,
		client: &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// NormalizeURL returns the API endpoint for baseURL: trailing slashes are
// removed, "/api" is appended unless already present, and a final "/" is added.
func NormalizeURL(baseURL string) string {
	address := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(address, apiPath) {
		address += apiPath
	}
	return address + "/"
}

// URL returns the API endpoint requests are posted to.
func (t *HTTP) URL() string {
	return t.url
}

// Send posts env to the hub and decodes the first element of its reply.
func (t *HTTP) Send(ctx context.Context, env envelope.Envelope) (Reply, error) {
	body, err := env.Marshal()
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignHeader, t.signer.APISign(body))

	resp, err := t.client.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, env.Method, t.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: read reply: %w", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Reply{}, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	reply, err := decodeReply(raw)
	if err != nil {
		return Reply{}, err
	}
	reply.Route = t.url

	return reply, nil
}

// hubReply is one element of the hub's reply array.
type hubReply struct {
	Error json.RawMessage `json:"error"`
	Body  json.RawMessage `json:"body"`
}

func decodeReply(raw []byte) (Reply, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Reply{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(items) == 0 {
		return Reply{}, fmt.Errorf("%w: empty reply array", ErrDecode)
	}

	first := bytes.TrimSpace(items[0])
	if len(first) == 0 || first[0] != '{' {
		return Reply{}, fmt.Errorf("%w: reply element is not an object", ErrDecode)
	}

	var hr hubReply
	if err := json.Unmarshal(first, &hr); err != nil {
		return Reply{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return Reply{
		Error: decodeAPIError(hr.Error),
		Body:  nullable(hr.Body),
	}, nil
}

// decodeAPIError maps the reply's error field: null and "" mean no error,
// a string is the message, anything else is kept as raw JSON text.
func decodeAPIError(raw json.RawMessage) error {
	raw = nullable(raw)
	if raw == nil {
		return nil
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		if msg == "" {
			return nil
		}
		return &APIError{Message: msg}
	}

	return &APIError{Message: string(raw)}
}

func nullable(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}
