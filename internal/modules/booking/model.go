// README: Reservation aggregate and status definitions.
package booking

import (
	"time"

	"github.com/google/uuid"

	"railway/internal/modules/catalog"
	"railway/internal/types"
)

type Status string

const (
	StatusInCart    Status = "in_cart"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusModified  Status = "modified"
)

// A reservation stays visible for seven days after creation; the boundary
// day itself still counts as live.
const expiryWindow = 7 * 24 * time.Hour

// Reservation snapshots the train and passenger it was priced against, so
// later catalog or profile edits never change a past reservation.
// FinalPrice is always the pricing engine's output at the time of the last
// recompute, never hand-edited.
type Reservation struct {
	ID         types.ID         `json:"id"`
	Train      catalog.Train    `json:"train"`
	Passenger  types.Passenger  `json:"passenger"`
	TicketType types.TicketType `json:"ticket_type"`
	FinalPrice float64          `json:"final_price"`
	Status     Status           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

func ReservationID(r Reservation) types.ID { return r.ID }

// New builds a cart reservation with a fresh identity and creation time.
func New(train catalog.Train, passenger types.Passenger, ticketType types.TicketType, price float64) Reservation {
	return Reservation{
		ID:         types.ID(uuid.NewString()),
		Train:      train,
		Passenger:  passenger,
		TicketType: ticketType,
		FinalPrice: price,
		Status:     StatusInCart,
		CreatedAt:  time.Now(),
	}
}

// IsExpired reports whether more than the expiry window has elapsed.
// Strictly greater: a reservation created exactly seven days ago is live.
func (r Reservation) IsExpired(now time.Time) bool {
	return now.Sub(r.CreatedAt) > expiryWindow
}

// AllowedTransitions represents the reservation state flow as code.
// Cancelled is terminal; Modified refuses further modification through
// this table (observed policy, see DESIGN.md).
var AllowedTransitions = map[Status][]Status{
	StatusInCart: {StatusBooked, StatusModified},
	StatusBooked: {StatusCancelled, StatusModified},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
