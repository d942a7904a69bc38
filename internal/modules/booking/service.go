// README: Booking service owns reservation state transitions and expiry.
package booking

import (
	"context"
	"time"

	"railway/internal/store"
	"railway/internal/types"
)

// Service drives the reservation lifecycle. Lookups that miss and
// transitions the state table refuses are silent no-ops; callers may
// invoke Cancel and Modify speculatively. Only storage failures surface
// as errors.
type Service struct {
	reservations store.Repository[Reservation]
}

func NewService(reservations store.Repository[Reservation]) *Service {
	return &Service{reservations: reservations}
}

// AddToCart persists a new reservation, forcing its status to InCart
// regardless of what the caller set. This is the only creation path.
func (s *Service) AddToCart(ctx context.Context, r *Reservation) error {
	if r.ID == "" {
		*r = New(r.Train, r.Passenger, r.TicketType, r.FinalPrice)
	}
	r.Status = StatusInCart
	return s.reservations.Add(ctx, *r)
}

// ConfirmBooking moves a cart reservation to Booked. Any other starting
// state, or an unknown id, leaves everything unchanged.
func (s *Service) ConfirmBooking(ctx context.Context, id types.ID) error {
	r, ok, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok || !CanTransition(r.Status, StatusBooked) {
		return nil
	}
	r.Status = StatusBooked
	return s.reservations.Update(ctx, r)
}

// CancelReservation cancels a confirmed booking. Only Booked may cancel;
// InCart, Cancelled and Modified reservations are left untouched.
func (s *Service) CancelReservation(ctx context.Context, id types.ID) error {
	r, ok, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok || !CanTransition(r.Status, StatusCancelled) {
		return nil
	}
	r.Status = StatusCancelled
	return s.reservations.Update(ctx, r)
}

// ModifyReservation overwrites ticket type and price and marks the
// reservation Modified. The caller must have recomputed newPrice through
// the pricing engine first; this operation never prices. Cancelled and
// already-Modified reservations refuse silently.
func (s *Service) ModifyReservation(ctx context.Context, id types.ID, newType types.TicketType, newPrice float64) error {
	r, ok, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok || !CanTransition(r.Status, StatusModified) {
		return nil
	}
	r.TicketType = newType
	r.FinalPrice = newPrice
	r.Status = StatusModified
	return s.reservations.Update(ctx, r)
}

// GetMyReservations returns every reservation still inside the expiry
// window, in store order.
func (s *Service) GetMyReservations(ctx context.Context) ([]Reservation, error) {
	all, err := s.reservations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var out []Reservation
	for _, r := range all {
		if !r.IsExpired(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (Reservation, bool, error) {
	return s.reservations.GetByID(ctx, id)
}
