// README: Common value objects shared across modules.
package types

// ID is a stable entity identity used by every store.
type ID string

// Railcard is a passenger-held discount category, independent of ticket type.
type Railcard string

const (
	RailcardNone    Railcard = "none"
	RailcardOver60s Railcard = "over60s"
	RailcardFamily  Railcard = "family"
)

// TicketType selects the fare multiplier: one-way 1x, return 2x.
type TicketType string

const (
	TicketOneWay TicketType = "one_way"
	TicketReturn TicketType = "return"
)

// Passenger is a value object; reservations keep a copy, never a live reference.
type Passenger struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Railcard Railcard `json:"railcard"`
}

// IsChild reports whether the passenger travels on a child profile.
// Note this is distinct from the under-16 fare discount boundary.
func (p Passenger) IsChild() bool {
	return p.Age < 18
}
