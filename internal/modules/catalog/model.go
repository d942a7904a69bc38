// README: Train definitions served by the catalog.
package catalog

import (
	"time"

	"railway/internal/types"
)

// Train is immutable once created as far as pricing is concerned; a
// reservation keeps a snapshot of the train it was priced against.
type Train struct {
	ID            types.ID  `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	BasePrice     float64   `json:"base_price"`
}

func TrainID(t Train) types.ID { return t.ID }
