package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmadeusServer(t *testing.T, offersStatus int, offersBody string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "test-key", r.Form.Get("client_id"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"expires_in":   1799,
		})
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "USD", r.URL.Query().Get("currencyCode"))
		assert.Equal(t, "DFW", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "NK,F9", r.URL.Query().Get("excludedAirlineCodes"))

		w.WriteHeader(offersStatus)
		_, _ = w.Write([]byte(offersBody))
	})
	mux.HandleFunc("/v1/reference-data/airlines", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AA,DL", r.URL.Query().Get("airlineCodes"))
		_, _ = w.Write([]byte(`{"data": [
			{"iataCode": "AA", "businessName": "AMERICAN AIRLINES", "commonName": "American Airlines"},
			{"iataCode": "DL", "businessName": "DELTA AIR LINES", "commonName": "Delta Air Lines"}
		]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &tokenCalls
}

func testRequest() Request {
	return Request{
		Origin:           "DFW",
		Destination:      "BOS",
		DepartureDate:    "2099-01-10",
		ReturnDate:       "2099-01-17",
		Adults:           2,
		Children:         1,
		ExcludedAirlines: []string{"NK", "F9"},
	}
}

func TestAmadeusQueryReturnsFirstOffer(t *testing.T) {
	body := `{"data": [` + offerShapeJSON + `, {"id": "2", "itineraries": [], "price": {}}]}`
	server, tokenCalls := newAmadeusServer(t, http.StatusOK, body)

	client := NewAmadeusClient(AmadeusConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
	})

	raw, err := client.Query(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.NotNil(t, raw.Offer)
	assert.Equal(t, "1", raw.Offer.ID)

	// second query reuses the cached token
	_, err = client.Query(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestAmadeusQueryNoOffers(t *testing.T) {
	server, _ := newAmadeusServer(t, http.StatusOK, `{"data": []}`)

	client := NewAmadeusClient(AmadeusConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
	})

	raw, err := client.Query(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestAmadeusQueryFailureIsProviderError(t *testing.T) {
	server, _ := newAmadeusServer(t, http.StatusBadRequest, `{"errors": []}`)

	client := NewAmadeusClient(AmadeusConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
	})

	_, err := client.Query(context.Background(), testRequest())
	require.Error(t, err)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "amadeus", providerErr.Provider)
}

func TestAmadeusAirlineReference(t *testing.T) {
	server, _ := newAmadeusServer(t, http.StatusOK, `{"data": []}`)

	client := NewAmadeusClient(AmadeusConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
	})

	airlines, err := client.AirlineReference(context.Background(), []string{"AA", "DL"})
	require.NoError(t, err)
	require.Len(t, airlines, 2)

	assert.Equal(t, "AA", airlines[0].Code)
	assert.Equal(t, "American Airlines", airlines[0].CommonName)
	assert.Equal(t, "DELTA AIR LINES", airlines[1].BusinessName)
}

func TestAmadeusAirlineReferenceEmptyBatch(t *testing.T) {
	client := NewAmadeusClient(AmadeusConfig{APIKey: "k", APISecret: "s"})

	airlines, err := client.AirlineReference(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, airlines)
}
