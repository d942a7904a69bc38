// README: Built-in pricing rules: departure-time windows and railcards.
package pricing

import (
	"railway/internal/modules/catalog"
	"railway/internal/types"
)

// Time-of-day windows, in minutes after midnight.
// Morning rush runs up to but excluding 09:30; evening rush is 16:00
// through 19:30 inclusive. Later departures get the 5% late discount.
const (
	morningRushEnd   = 9*60 + 30
	eveningRushStart = 16 * 60
	eveningRushEnd   = 19*60 + 30
)

// TimeRule adjusts the running price by departure time of day. Rush-hour
// departures keep the full fare; the saver window between the rushes is
// also unchanged.
func TimeRule(current float64, train *catalog.Train, _ types.Passenger) float64 {
	dep := train.DepartureTime
	minute := dep.Hour()*60 + dep.Minute()

	rush := minute < morningRushEnd || (minute >= eveningRushStart && minute <= eveningRushEnd)
	if rush {
		return current
	}
	if minute > eveningRushEnd {
		return current * 0.95
	}
	return current
}

// RailcardRule applies the passenger's discount to the running price. It
// reads only the passenger, never the train. The senior branch is checked
// first; the child branches require age under 16, so a cardholder aged 60+
// can never fall through to them.
func RailcardRule(current float64, _ *catalog.Train, p types.Passenger) float64 {
	if p.Age >= 60 && p.Railcard == types.RailcardOver60s {
		return current * 0.66
	}
	if p.Age < 16 {
		if p.Railcard == types.RailcardFamily {
			return current * 0.50
		}
		return current * 0.90
	}
	return current
}
