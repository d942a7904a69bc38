// README: Pricing engine folds the base fare through the rule chain.
package pricing

import (
	"math"

	"railway/internal/modules/catalog"
	"railway/internal/types"
)

// Service computes ticket prices. The rule chain is ordered; appended
// rules run after the built-in ones.
type Service struct {
	rules []Rule
}

func NewService() *Service {
	return &Service{rules: []Rule{TimeRule, RailcardRule}}
}

// Append adds a rule to the end of the chain.
func (s *Service) Append(rule Rule) {
	s.rules = append(s.rules, rule)
}

// CalculatePrice prices one ticket: ticket-type multiplier on the base
// fare, then every rule in order on the running price, then rounding to
// two decimals (half away from zero). An unrecognized ticket type prices
// as one-way.
func (s *Service) CalculatePrice(train catalog.Train, passenger types.Passenger, ticketType types.TicketType) float64 {
	price := train.BasePrice
	if ticketType == types.TicketReturn {
		price *= 2.0
	}
	for _, rule := range s.rules {
		price = rule(price, &train, passenger)
	}
	return round2(price)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
