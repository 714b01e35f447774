// Package practicum implements the homework status API client.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const (
	// maxErrorBody bounds how much of a failed response ends up in the error text.
	maxErrorBody = 512
	// DefaultMaxBodyBytes caps the response size read from the endpoint.
	DefaultMaxBodyBytes = 10 << 20
)

// ClientConfig contains configuration for the homework API client.
type ClientConfig struct {
	// Endpoint is the full homework_statuses URL
	Endpoint string

	// Token is the OAuth token of the student
	Token string

	// Timeout is the HTTP request timeout
	Timeout time.Duration

	// MaxBodyBytes caps the response body; larger responses are an endpoint error
	MaxBodyBytes int64

	Logger logrus.FieldLogger
}

// Client queries the homework status endpoint.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     logrus.FieldLogger
}

var _ homework.StatusAPI = (*Client)(nil)

// NewClient creates a new homework API client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     config.Logger,
	}
}

// Fetch requests homework statuses updated since fromDate.
// Any transport fault, non-200 status or non-JSON body is returned as a KindEndpoint error.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (json.RawMessage, error) {
	endpoint, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return nil, homework.NewError(homework.KindEndpoint, "parse endpoint", err)
	}
	query := endpoint.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, homework.NewError(homework.KindEndpoint, "create request", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.config.Token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", fromDate).Debug("requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.NewError(homework.KindEndpoint, "request homework API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodyBytes+1))
	if err != nil {
		return nil, homework.NewError(homework.KindEndpoint, "read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("homework API returned status %d", resp.StatusCode)
		if excerpt := excerpt(body); excerpt != "" {
			msg += ": " + excerpt
		}
		return nil, homework.NewError(homework.KindEndpoint, msg, nil)
	}
	if int64(len(body)) > c.config.MaxBodyBytes {
		return nil, homework.NewError(homework.KindEndpoint, fmt.Sprintf("homework API response exceeds %d bytes", c.config.MaxBodyBytes), nil)
	}

	if !json.Valid(body) {
		return nil, homework.NewError(homework.KindEndpoint, "homework API returned a non-JSON body", nil)
	}
	return json.RawMessage(body), nil
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
