package pricing

import (
	"testing"
	"time"

	"railway/internal/modules/catalog"
	"railway/internal/types"
)

func trainAt(hour, minute int, basePrice float64) catalog.Train {
	return catalog.Train{
		ID:            "t1",
		Origin:        "Sofia",
		Destination:   "Varna",
		DepartureTime: time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC),
		BasePrice:     basePrice,
	}
}

func TestTimeRuleBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		hour, minute int
		want         float64
	}{
		{"deep morning rush", 8, 0, 100},
		{"last rush minute 09:29", 9, 29, 100},
		{"saver opens at 09:30", 9, 30, 100},
		{"saver closes at 15:59", 15, 59, 100},
		{"evening rush opens at 16:00", 16, 0, 100},
		{"evening rush includes 19:30", 19, 30, 100},
		{"late discount from 19:31", 19, 31, 95},
		{"sleeper 22:00", 22, 0, 95},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			train := trainAt(tc.hour, tc.minute, 100)
			got := TimeRule(100, &train, types.Passenger{Age: 30})
			if got != tc.want {
				t.Errorf("TimeRule at %02d:%02d = %v, want %v", tc.hour, tc.minute, got, tc.want)
			}
		})
	}
}

func TestRailcardRule(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		railcard types.Railcard
		want     float64
	}{
		{"senior with card", 65, types.RailcardOver60s, 66},
		{"senior boundary age 60", 60, types.RailcardOver60s, 66},
		{"senior without card", 65, types.RailcardNone, 100},
		{"adult with senior card", 50, types.RailcardOver60s, 100},
		{"adult no card", 50, types.RailcardNone, 100},
		{"child with family card", 12, types.RailcardFamily, 50},
		{"child no card", 15, types.RailcardNone, 90},
		{"child with senior card gets child rate", 10, types.RailcardOver60s, 90},
		{"sixteen pays adult fare", 16, types.RailcardNone, 100},
		{"adult with family card", 40, types.RailcardFamily, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RailcardRule(100, nil, types.Passenger{Age: tc.age, Railcard: tc.railcard})
			if got != tc.want {
				t.Errorf("RailcardRule(100, age=%d, card=%s) = %v, want %v", tc.age, tc.railcard, got, tc.want)
			}
		})
	}
}

// RailcardRule reads only the passenger; a nil train must never panic.
func TestRailcardRuleIgnoresTrain(t *testing.T) {
	got := RailcardRule(100, nil, types.Passenger{Age: 65, Railcard: types.RailcardOver60s})
	if got != 66 {
		t.Errorf("RailcardRule with nil train = %v, want 66", got)
	}
}

func TestCalculatePriceStacksDiscountsInOrder(t *testing.T) {
	svc := NewService()

	// 22:00 departure: time rule gives 95, then senior card 95*0.66 = 62.70
	got := svc.CalculatePrice(trainAt(22, 0, 100),
		types.Passenger{Age: 65, Railcard: types.RailcardOver60s}, types.TicketOneWay)
	if got != 62.70 {
		t.Errorf("CalculatePrice(22:00, senior) = %v, want 62.70", got)
	}
}

func TestCalculatePriceRushHourKeepsFullFare(t *testing.T) {
	svc := NewService()
	tests := []struct {
		name         string
		hour, minute int
	}{
		{"morning rush", 8, 0},
		{"evening rush", 17, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.CalculatePrice(trainAt(tc.hour, tc.minute, 100),
				types.Passenger{Age: 30, Railcard: types.RailcardNone}, types.TicketOneWay)
			if got != 100 {
				t.Errorf("rush-hour price = %v, want 100", got)
			}
		})
	}
}

func TestCalculatePriceReturnDoublesBeforeRules(t *testing.T) {
	svc := NewService()

	// base 50, return -> 100 entering the chain; 22:00 gives 100*0.95 = 95
	got := svc.CalculatePrice(trainAt(22, 0, 50),
		types.Passenger{Age: 30, Railcard: types.RailcardNone}, types.TicketReturn)
	if got != 95 {
		t.Errorf("return ticket price = %v, want 95", got)
	}

	// midday saver: plain doubling
	got = svc.CalculatePrice(trainAt(12, 0, 100),
		types.Passenger{Age: 30, Railcard: types.RailcardNone}, types.TicketReturn)
	if got != 200 {
		t.Errorf("return ticket saver price = %v, want 200", got)
	}
}

func TestCalculatePriceDefaultsToOneWay(t *testing.T) {
	svc := NewService()
	got := svc.CalculatePrice(trainAt(12, 0, 100),
		types.Passenger{Age: 30, Railcard: types.RailcardNone}, "")
	if got != 100 {
		t.Errorf("unspecified ticket type priced as %v, want 100", got)
	}
}

func TestCalculatePriceRoundsToTwoDecimals(t *testing.T) {
	svc := NewService()

	// 19.00 * 0.95 * 0.66 = 11.913 -> 11.91
	got := svc.CalculatePrice(trainAt(20, 0, 19.00),
		types.Passenger{Age: 70, Railcard: types.RailcardOver60s}, types.TicketOneWay)
	if got != 11.91 {
		t.Errorf("rounded price = %v, want 11.91", got)
	}
}

func TestAppendExtendsChain(t *testing.T) {
	svc := NewService()
	svc.Append(func(current float64, _ *catalog.Train, _ types.Passenger) float64 {
		return current + 1.50 // flat booking surcharge
	})

	got := svc.CalculatePrice(trainAt(12, 0, 100),
		types.Passenger{Age: 30, Railcard: types.RailcardNone}, types.TicketOneWay)
	if got != 101.50 {
		t.Errorf("price with appended rule = %v, want 101.50", got)
	}
}
