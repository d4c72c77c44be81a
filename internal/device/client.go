package device

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/icholy/digest"
	"github.com/sethvargo/go-retry"
)

const (
	// MaxAttempts bounds the retry loop: 10 total attempts with a fixed
	// one-second delay, no backoff, no jitter.
	MaxAttempts = 10
	RetryDelay  = time.Second

	searchPathFmt = "/ISAPI/System/Video/inputs/channels/%d/counting/search"
)

// Client queries a counting camera's ISAPI endpoint with digest auth.
type Client struct {
	httpClient *http.Client
	address    string
	channel    int
}

// NewClient creates a client for the device at address (scheme and host,
// e.g. "http://10.8.1.101") using digest authentication.
func NewClient(address, username, password string, channel int) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &digest.Transport{Username: username, Password: password},
			Timeout:   30 * time.Second,
		},
		address: strings.TrimRight(address, "/"),
		channel: channel,
	}
}

// Search posts the counting query and decodes the device's XML response.
// Any transport error or non-2xx status is retried after RetryDelay until
// MaxAttempts is exhausted.
func (c *Client) Search(ctx context.Context, query *CountingStatisticsDescription) (*CountingStatisticsResult, error) {
	payload, err := query.Encode()
	if err != nil {
		return nil, err
	}
	url := c.address + fmt.Sprintf(searchPathFmt, c.channel)

	var result *CountingStatisticsResult
	attempt := 0
	backoff := retry.WithMaxRetries(MaxAttempts-1, retry.NewConstant(RetryDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		res, err := c.searchOnce(ctx, url, payload)
		if err != nil {
			log.Printf("Attempt %d: %v", attempt, err)
			return retry.RetryableError(err)
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attempt, err)
	}
	return result, nil
}

func (c *Client) searchOnce(ctx context.Context, url string, payload []byte) (*CountingStatisticsResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/xml")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("HTTP %d", res.StatusCode)
	}

	var result CountingStatisticsResult
	if err := xml.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}
