package search

// reduce folds outcomes in generator order down to a single running best.
// Replacement is strict: on a price tie the earlier option wins. Failed
// options count but never abort the fold, and "no deal found" versus
// "every option failed" is distinguishable in the logs only.
func (s *Searcher) reduce(options []Option, outcomes []outcome) *Result {
	result := &Result{OptionsGenerated: len(options)}

	for i, oc := range outcomes {
		option := options[i]
		route := option.Origin + " => " + option.Destination
		window := option.Dates.Departure + " to " + option.Dates.Return

		s.log.Info("searching flights", "route", route, "dates", window)

		if oc.err != nil {
			result.OptionsFailed++
			s.log.Warn("option failed", "route", route, "dates", window, "error", oc.err.Error())
			continue
		}

		result.OptionsQueried++

		if oc.deal == nil {
			s.log.Info("could not find a deal", "route", route, "dates", window)
			continue
		}

		s.log.Info("deal found", "route", route, "dates", window, "price", oc.deal.Price)

		if result.Deal == nil || oc.deal.PriceInCents < result.Deal.PriceInCents {
			result.Deal = oc.deal
			s.log.Info("new best deal",
				"price", oc.deal.Price,
				"route", route,
				"dates", window,
			)
		} else {
			s.log.Info("it is not the best deal", "route", route, "dates", window)
		}
	}

	if result.Deal == nil {
		if result.OptionsGenerated > 0 && result.OptionsFailed == result.OptionsGenerated {
			s.log.Warn("every option failed", "options", result.OptionsGenerated)
		} else {
			s.log.Info("finished searching flights, no deal found")
		}
	} else {
		s.log.Info("finished searching flights", "best_price", result.Deal.Price)
	}

	return result
}
