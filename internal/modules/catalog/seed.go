// README: Default timetable seeded when the trains collection is empty.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"railway/internal/types"
)

type seedRoute struct {
	origin, destination string
	hour, minute        int
	basePrice           float64
}

var defaultTimetable = []seedRoute{
	{"Sofia", "Plovdiv", 7, 30, 15.00},
	{"Plovdiv", "Sofia", 8, 15, 15.00},
	{"Sofia", "Varna", 10, 0, 32.00},
	{"Sofia", "Burgas", 13, 45, 28.50},
	{"Ruse", "Sofia", 15, 30, 24.00},
	{"Varna", "Sofia", 17, 15, 32.00},
	{"Plovdiv", "Burgas", 18, 45, 19.00},
	{"Burgas", "Sofia", 22, 0, 35.00}, // sleeper
}

// SeedIfEmpty populates the default timetable on first run. Departures are
// anchored to today's date; only the time of day matters for pricing.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	existing, err := s.trains.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)
	for _, r := range defaultTimetable {
		t := Train{
			ID:            types.ID(uuid.NewString()),
			Origin:        r.origin,
			Destination:   r.destination,
			DepartureTime: today.Add(time.Duration(r.hour)*time.Hour + time.Duration(r.minute)*time.Minute),
			BasePrice:     r.basePrice,
		}
		if err := s.trains.Add(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
