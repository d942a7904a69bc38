// README: Pricing rule contract and quote definitions.
package pricing

import (
	"railway/internal/modules/catalog"
	"railway/internal/types"
)

// Rule transforms the running price. Rules are pure and side-effect-free,
// and they are NOT commutative: each reads the price left by the previous
// rule, not the base fare. The train pointer may be nil for rules that
// only read the passenger.
type Rule func(current float64, train *catalog.Train, passenger types.Passenger) float64

// Quote is a priced offer for one train, passenger and ticket type.
type Quote struct {
	TrainID    types.ID         `json:"train_id"`
	Passenger  types.Passenger  `json:"passenger"`
	TicketType types.TicketType `json:"ticket_type"`
	Price      float64          `json:"price"`
}
