package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ewelton/faredrop/internal/models"
)

const amadeusName = "amadeus"

type AmadeusConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
	MaxOffers int
}

// AmadeusClient talks to the structured offers API. It is safe for
// concurrent use; the OAuth token is refreshed lazily under a mutex.
type AmadeusClient struct {
	config AmadeusConfig
	client *retryablehttp.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewAmadeusClient(config AmadeusConfig) *AmadeusClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://test.api.amadeus.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 20 * time.Second
	}
	if config.MaxOffers == 0 {
		config.MaxOffers = 5
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.Logger = nil
	client.CheckRetry = checkRetry
	client.HTTPClient.Timeout = config.Timeout

	return &AmadeusClient{
		config: config,
		client: client,
	}
}

// checkRetry never retries past a cancelled context and retries server-side
// failures that the default policy would let through.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return false, ctx.Err()
		}
	}

	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *AmadeusClient) Name() string {
	return amadeusName
}

func (c *AmadeusClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.config.APIKey},
		"client_secret": {c.config.APISecret},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	c.token = body.AccessToken
	// refresh slightly early so in-flight queries never carry a stale token
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - 30*time.Second)

	return c.token, nil
}

// Query prices one origin/destination/date-pair combination and returns the
// first (cheapest) offer, or nil when the source has none.
func (c *AmadeusClient) Query(ctx context.Context, req Request) (*RawOffer, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	query := url.Values{
		"originLocationCode":      {req.Origin},
		"destinationLocationCode": {req.Destination},
		"departureDate":           {req.DepartureDate},
		"returnDate":              {req.ReturnDate},
		"adults":                  {fmt.Sprintf("%d", req.Adults)},
		"children":                {fmt.Sprintf("%d", req.Children)},
		"currencyCode":            {"USD"},
		"max":                     {fmt.Sprintf("%d", c.config.MaxOffers)},
	}
	if len(req.ExcludedAirlines) > 0 {
		query.Set("excludedAirlineCodes", strings.Join(req.ExcludedAirlines, ","))
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+"/v2/shopping/flight-offers?"+query.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(amadeusName, fmt.Errorf("offers request failed with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	if len(envelope.Data) == 0 {
		return nil, nil
	}

	raw, err := ParseRawOffer(envelope.Data[0])
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	return raw, nil
}

// AirlineReference resolves a batch of 2-letter carrier codes against the
// reference-data endpoint.
func (c *AmadeusClient) AirlineReference(ctx context.Context, codes []string) ([]models.Airline, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	query := url.Values{
		"airlineCodes": {strings.Join(codes, ",")},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+"/v1/reference-data/airlines?"+query.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewProviderError(amadeusName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(amadeusName, fmt.Errorf("airline reference request failed with status %d", resp.StatusCode))
	}

	var envelope struct {
		Data []struct {
			IataCode     string `json:"iataCode"`
			BusinessName string `json:"businessName"`
			CommonName   string `json:"commonName"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, NewProviderError(amadeusName, err)
	}

	airlines := make([]models.Airline, 0, len(envelope.Data))
	for _, a := range envelope.Data {
		airlines = append(airlines, models.Airline{
			Code:         a.IataCode,
			BusinessName: a.BusinessName,
			CommonName:   a.CommonName,
		})
	}

	return airlines, nil
}
