// Package morpho implements the query client for the Morpho GraphQL API, the remote
// data service vault records are discovered from.
package morpho

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/internal/metrics"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

const (
	// DefaultEndpoint is the public Morpho API.
	DefaultEndpoint = "https://blue-api.morpho.org/graphql"

	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "vault-discovery"

	// Limit error-body reads so we don't accidentally slurp huge responses.
	maxErrBodyBytes  = 4096
	maxResponseBytes = 32 << 20
)

// Request carries the pagination, ordering and filter arguments of one vault query.
type Request struct {
	First          int
	OrderBy        filter.OrderBy
	OrderDirection filter.OrderDirection
	// Where is omitted from the query when nil or empty.
	Where *filter.ServerPredicate
}

// NewRequest builds the query arguments for a predicate.
func NewRequest(p *filter.Predicate) *Request {
	return &Request{
		First:          p.First,
		OrderBy:        p.OrderBy,
		OrderDirection: p.OrderDirection,
		Where:          p.Where,
	}
}

// Client issues vault queries against a GraphQL endpoint. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
}

// New creates a client for endpoint; an empty endpoint selects DefaultEndpoint.
func New(endpoint string, opts ...Option) *Client {
	s := applyOptions(opts)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: s.httpClient,
		logger:     s.logger,
		userAgent:  s.userAgent,
	}
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type graphQLRequest struct {
	Query     string    `json:"query"`
	Variables variables `json:"variables"`
}

type variables struct {
	First          int                     `json:"first"`
	OrderBy        filter.OrderBy          `json:"orderBy"`
	OrderDirection filter.OrderDirection   `json:"orderDirection"`
	Where          *filter.ServerPredicate `json:"where,omitempty"`
}

type graphQLResponse struct {
	Data *struct {
		Vaults *struct {
			Items []json.RawMessage `json:"items"`
		} `json:"vaults"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// FetchVaults sends one query and returns the raw vault records unmodified.
// Failures are reported as *vault.RemoteQueryError, except context cancellation
// and deadline errors which are returned as is. The call is never retried.
func (c *Client) FetchVaults(ctx context.Context, req *Request) ([]json.RawMessage, error) {
	start := time.Now()
	requestID := uuid.NewString()

	items, status, err := c.fetch(ctx, req, requestID)

	metrics.UpstreamRequestsTotal.WithLabelValues(status).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Debug("Vault query failed",
			zap.String("request_id", requestID),
			zap.String("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordsFetched.Add(float64(len(items)))
	c.logger.Debug("Vault query completed",
		zap.String("request_id", requestID),
		zap.Int("records", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}

func (c *Client) fetch(ctx context.Context, req *Request, requestID string) ([]json.RawMessage, string, error) {
	if req == nil {
		req = &Request{}
	}
	where := req.Where
	if where.IsEmpty() {
		where = nil
	}

	body, err := json.Marshal(graphQLRequest{
		Query: vaultsQuery,
		Variables: variables{
			First:          req.First,
			OrderBy:        req.OrderBy,
			OrderDirection: req.OrderDirection,
			Where:          where,
		},
	})
	if err != nil {
		return nil, "encode_error", fmt.Errorf("marshal vault query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, "encode_error", fmt.Errorf("create vault query request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, "canceled", err
		}
		return nil, "transport_error", &vault.RemoteQueryError{Message: "call vault endpoint", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "http_error", readHTTPError(resp)
	}

	decoded, err := decodeResponse(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, "decode_error", err
	}
	if len(decoded.Errors) > 0 {
		return nil, "graphql_error", &vault.RemoteQueryError{
			StatusCode: 0,
			Message:    joinMessages(decoded.Errors),
		}
	}
	if decoded.Data == nil {
		return nil, "decode_error", &vault.RemoteQueryError{Message: "response carries no data"}
	}
	if decoded.Data.Vaults == nil || decoded.Data.Vaults.Items == nil {
		return []json.RawMessage{}, "ok", nil
	}
	return decoded.Data.Vaults.Items, "ok", nil
}

func readHTTPError(resp *http.Response) error {
	limited := io.LimitReader(resp.Body, maxErrBodyBytes)

	b, err := io.ReadAll(limited)
	if err != nil {
		return &vault.RemoteQueryError{
			StatusCode: resp.StatusCode,
			Message:    "body read failed",
			Err:        err,
		}
	}

	msg := strings.TrimSpace(string(b))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &vault.RemoteQueryError{StatusCode: resp.StatusCode, Message: msg}
}

func decodeResponse(r io.Reader) (*graphQLResponse, error) {
	var out graphQLResponse

	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return nil, &vault.RemoteQueryError{Message: "decode vault response", Err: err}
	}
	return &out, nil
}

func joinMessages(errs []graphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	if len(msgs) == 0 {
		return "remote service returned errors"
	}
	return strings.Join(msgs, "; ")
}
