package search

import (
	"context"
	"sync"
	"time"

	"github.com/ewelton/faredrop/internal/dates"
	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/normalize"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/internal/ratelimit"
	"github.com/ewelton/faredrop/internal/refdata"
	"github.com/ewelton/faredrop/pkg/logger"
)

type Config struct {
	Concurrency   int
	OptionTimeout time.Duration
	RateLimiter   *ratelimit.SourceLimiter
}

// Searcher runs one deal search end to end: expand the date pairs, generate
// the option cross product, price every option against the provider, and
// fold the outcomes down to the single cheapest deal.
type Searcher struct {
	querier provider.Querier
	lookup  refdata.Lookup
	config  Config
	log     *logger.Logger
}

func NewSearcher(querier provider.Querier, lookup refdata.Lookup, log *logger.Logger, config Config) *Searcher {
	if config.Concurrency <= 0 {
		config.Concurrency = 2
	}
	if config.OptionTimeout <= 0 {
		config.OptionTimeout = 30 * time.Second
	}

	return &Searcher{
		querier: querier,
		lookup:  lookup,
		config:  config,
		log:     log,
	}
}

type Result struct {
	Deal             *models.BestDeal
	OptionsGenerated int
	OptionsQueried   int
	OptionsFailed    int
}

// Search returns the cheapest deal across the whole option space, or a nil
// deal when nothing viable priced. Per-option failures are logged and
// skipped; only request cancellation aborts the search, and a cancelled
// search returns no partial best.
func (s *Searcher) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	pairs := make([]dates.Pair, 0, len(req.DatePairs))
	for _, pair := range req.DatePairs {
		pairs = append(pairs, dates.Pair{Departure: pair[0], Return: pair[1]})
	}

	validPairs := dates.Expand(pairs, req.FlexDate, time.Now())
	options := Generate(req.DepartureAirports, req.ArrivalAirports, validPairs)

	s.log.Info("search space generated",
		"date_pairs", len(validPairs),
		"options", len(options),
	)

	outcomes := s.queryAll(ctx, options, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.reduce(options, outcomes), nil
}

type outcome struct {
	deal *models.BestDeal
	err  error
}

// queryAll prices every option with bounded concurrency. Outcomes land in
// a slice indexed by option position so the later reduction runs in stable
// generator order regardless of completion order.
func (s *Searcher) queryAll(ctx context.Context, options []Option, req models.SearchRequest) []outcome {
	outcomes := make([]outcome, len(options))

	sem := make(chan struct{}, s.config.Concurrency)
	var wg sync.WaitGroup

	for i := range options {
		// the stop signal is checked before each query is issued
		if err := ctx.Err(); err != nil {
			outcomes[i] = outcome{err: err}
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, option Option) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = s.evaluate(ctx, option, req)
		}(i, options[i])
	}

	wg.Wait()
	return outcomes
}

func (s *Searcher) evaluate(ctx context.Context, option Option, req models.SearchRequest) outcome {
	if s.config.RateLimiter != nil {
		if err := s.config.RateLimiter.Wait(ctx, s.querier.Name()); err != nil {
			return outcome{err: err}
		}
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.config.OptionTimeout)
	defer cancel()

	raw, err := s.querier.Query(queryCtx, provider.Request{
		Origin:           option.Origin,
		Destination:      option.Destination,
		DepartureDate:    option.Dates.Departure,
		ReturnDate:       option.Dates.Return,
		Adults:           req.NumOfAdults,
		Children:         req.NumOfChildren,
		ExcludedAirlines: req.AirlinesToExclude,
	})
	if err != nil {
		return outcome{err: err}
	}
	if raw == nil {
		return outcome{}
	}

	deal := normalize.Deal(queryCtx, raw, s.lookup, normalize.Trip{
		Origin:           option.Origin,
		Destination:      option.Destination,
		DepartureDate:    option.Dates.Departure,
		ReturnDate:       option.Dates.Return,
		Adults:           req.NumOfAdults,
		Children:         req.NumOfChildren,
		ExcludedAirlines: req.AirlinesToExclude,
	})

	return outcome{deal: deal}
}
