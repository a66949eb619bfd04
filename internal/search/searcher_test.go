package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/internal/refdata"
	"github.com/ewelton/faredrop/pkg/logger"
)

// fakeQuerier serves canned outcomes keyed by departure date so results are
// stable under concurrent querying.
type fakeQuerier struct {
	mu     sync.Mutex
	offers map[string]*provider.RawOffer
	errs   map[string]error
	calls  int
}

func (f *fakeQuerier) Name() string { return "fake" }

func (f *fakeQuerier) Query(ctx context.Context, req provider.Request) (*provider.RawOffer, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err := f.errs[req.DepartureDate]; err != nil {
		return nil, err
	}
	return f.offers[req.DepartureDate], nil
}

func offerRaw(id, grandTotal string) *provider.RawOffer {
	return &provider.RawOffer{Offer: &provider.OffersResponse{
		ID: id,
		Itineraries: []provider.OfferItinerary{
			{Segments: []provider.OfferSegment{{CarrierCode: "NK", Number: "1286", Duration: "PT2H38M"}}},
			{Segments: []provider.OfferSegment{{CarrierCode: "NK", Number: "233", Duration: "PT2H20M"}}},
		},
		Price: provider.OfferPrice{Currency: "USD", Total: grandTotal, GrandTotal: grandTotal},
	}}
}

func newTestSearcher(querier provider.Querier, concurrency int) *Searcher {
	log := logger.New(logger.Config{Level: "error"})
	return NewSearcher(querier, refdata.NewStaticLookup(), log, Config{Concurrency: concurrency})
}

func twoOptionRequest() models.SearchRequest {
	return models.SearchRequest{
		DepartureAirports: []string{"DFW"},
		ArrivalAirports:   []string{"BOS"},
		DatePairs: [][2]string{
			{"2099-01-10", "2099-01-17"},
			{"2099-02-10", "2099-02-17"},
		},
		NumOfAdults: 1,
	}
}

func TestSearchPicksCheapestAcrossOptions(t *testing.T) {
	querier := &fakeQuerier{offers: map[string]*provider.RawOffer{
		"2099-01-10": offerRaw("pricier", "200.00"),
		"2099-02-10": offerRaw("cheaper", "150.00"),
	}}

	result, err := newTestSearcher(querier, 2).Search(context.Background(), twoOptionRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Deal)

	assert.Equal(t, "cheaper", result.Deal.ID)
	assert.Equal(t, int64(15000), result.Deal.PriceInCents)
	assert.Equal(t, 2, result.OptionsGenerated)
	assert.Equal(t, 2, result.OptionsQueried)
	assert.Equal(t, 0, result.OptionsFailed)
}

func TestSearchTieKeepsEarlierOption(t *testing.T) {
	querier := &fakeQuerier{offers: map[string]*provider.RawOffer{
		"2099-01-10": offerRaw("first", "150.00"),
		"2099-02-10": offerRaw("second", "150.00"),
	}}

	result, err := newTestSearcher(querier, 2).Search(context.Background(), twoOptionRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Deal)

	assert.Equal(t, "first", result.Deal.ID)
}

func TestSearchIsolatesProviderFailures(t *testing.T) {
	querier := &fakeQuerier{
		offers: map[string]*provider.RawOffer{
			"2099-02-10": offerRaw("survivor", "150.00"),
		},
		errs: map[string]error{
			"2099-01-10": provider.NewProviderError("fake", errors.New("upstream timeout")),
		},
	}

	result, err := newTestSearcher(querier, 1).Search(context.Background(), twoOptionRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Deal)

	assert.Equal(t, "survivor", result.Deal.ID)
	assert.Equal(t, 1, result.OptionsFailed)
	assert.Equal(t, 1, result.OptionsQueried)
}

func TestSearchNoOffersYieldsNilDeal(t *testing.T) {
	querier := &fakeQuerier{}

	result, err := newTestSearcher(querier, 2).Search(context.Background(), twoOptionRequest())
	require.NoError(t, err)

	assert.Nil(t, result.Deal)
	assert.Equal(t, 2, result.OptionsQueried)
	assert.Equal(t, 0, result.OptionsFailed)
}

func TestSearchAllPastDatesYieldsNilDeal(t *testing.T) {
	querier := &fakeQuerier{}
	req := twoOptionRequest()
	req.DatePairs = [][2]string{{"2001-01-10", "2001-01-17"}}

	result, err := newTestSearcher(querier, 2).Search(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, result.Deal)
	assert.Equal(t, 0, result.OptionsGenerated)
	assert.Equal(t, 0, querier.calls)
}

func TestSearchCancellationReturnsNoPartialBest(t *testing.T) {
	querier := &fakeQuerier{offers: map[string]*provider.RawOffer{
		"2099-01-10": offerRaw("partial", "150.00"),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestSearcher(querier, 1).Search(ctx, twoOptionRequest())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
