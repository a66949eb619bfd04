package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkiplaggedQuerySendsExactQueryString(t *testing.T) {
	var gotPath, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(scrapeShapeJSON))
	}))
	t.Cleanup(server.Close)

	source := NewSkiplaggedSource(SkiplaggedConfig{BaseURL: server.URL})

	raw, err := source.Query(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.NotNil(t, raw.Scrape)

	assert.Equal(t, "/api/search.php", gotPath)
	assert.Equal(t,
		"from=DFW&to=BOS&depart=2099-01-10&return=2099-01-17&format=v3&counts%5Badults%5D=2&counts%5Bchildren%5D=1",
		gotQuery)
}

func TestSkiplaggedQueryDegradedPageMeansNoOffer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "try again later"}`))
	}))
	t.Cleanup(server.Close)

	source := NewSkiplaggedSource(SkiplaggedConfig{BaseURL: server.URL})

	raw, err := source.Query(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSkiplaggedQueryServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	source := NewSkiplaggedSource(SkiplaggedConfig{BaseURL: server.URL})

	_, err := source.Query(context.Background(), testRequest())
	require.Error(t, err)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "skiplagged", providerErr.Provider)
}
