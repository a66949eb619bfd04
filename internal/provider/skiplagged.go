package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const skiplaggedName = "skiplagged"

type SkiplaggedConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SkiplaggedSource queries the scraped-site search endpoint. The site has
// no published contract, so the query string is reproduced exactly as the
// booking pages emit it.
type SkiplaggedSource struct {
	config SkiplaggedConfig
	client *retryablehttp.Client
}

func NewSkiplaggedSource(config SkiplaggedConfig) *SkiplaggedSource {
	if config.BaseURL == "" {
		config.BaseURL = "https://skiplagged.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = time.Second
	client.Logger = nil
	client.CheckRetry = checkRetry
	client.HTTPClient.Timeout = config.Timeout

	return &SkiplaggedSource{
		config: config,
		client: client,
	}
}

func (s *SkiplaggedSource) Name() string {
	return skiplaggedName
}

func (s *SkiplaggedSource) Query(ctx context.Context, req Request) (*RawOffer, error) {
	// Keep the pre-encoded counts[...] keys byte-for-byte; the site rejects
	// reordered or re-encoded query strings.
	queryString := fmt.Sprintf(
		"from=%s&to=%s&depart=%s&return=%s&format=v3&counts%%5Badults%%5D=%d&counts%%5Bchildren%%5D=%d",
		req.Origin, req.Destination, req.DepartureDate, req.ReturnDate,
		req.Adults, req.Children,
	)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet,
		s.config.BaseURL+"/api/search.php?"+queryString, nil)
	if err != nil {
		return nil, NewProviderError(skiplaggedName, err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(skiplaggedName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(skiplaggedName, fmt.Errorf("search request failed with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError(skiplaggedName, err)
	}

	raw, err := ParseRawOffer(body)
	if err != nil {
		if err == ErrUnknownShape {
			// an empty or degraded page means no offers, not a failure
			var probe map[string]json.RawMessage
			if json.Unmarshal(body, &probe) == nil {
				return nil, nil
			}
		}
		return nil, NewProviderError(skiplaggedName, err)
	}

	return raw, nil
}
