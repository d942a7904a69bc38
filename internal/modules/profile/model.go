// README: User profile aggregate.
package profile

import (
	"github.com/google/uuid"

	"railway/internal/types"
)

// UserProfile owns default passenger attributes. Reservations copy them by
// value, so editing a profile never retroactively changes past bookings.
type UserProfile struct {
	ID               types.ID        `json:"id"`
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	Address          string          `json:"address"`
	DefaultPassenger types.Passenger `json:"default_passenger"`
}

func ProfileID(p UserProfile) types.ID { return p.ID }

// NewProfile applies the historical defaults for unspecified details.
func NewProfile(username string, age int, railcard types.Railcard) UserProfile {
	if age <= 0 {
		age = 30
	}
	if railcard == "" {
		railcard = types.RailcardNone
	}
	return UserProfile{
		ID:       types.ID(uuid.NewString()),
		Username: username,
		DefaultPassenger: types.Passenger{
			Name:     username,
			Age:      age,
			Railcard: railcard,
		},
	}
}
