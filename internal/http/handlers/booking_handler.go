// README: Booking handlers for the reservation lifecycle.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"railway/internal/modules/booking"
	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/types"
)

type BookingHandler struct {
	catalog *catalog.Service
	pricing *pricing.Service
	booking *booking.Service
}

func NewBookingHandler(cat *catalog.Service, pr *pricing.Service, bk *booking.Service) *BookingHandler {
	return &BookingHandler{catalog: cat, pricing: pr, booking: bk}
}

type createBookingReq struct {
	TrainID    string `json:"train_id" binding:"required"`
	Passenger  struct {
		Name     string `json:"name"`
		Age      int    `json:"age"`
		Railcard string `json:"railcard"`
	} `json:"passenger"`
	TicketType string `json:"ticket_type"`
}

// Create prices the ticket and puts a new reservation in the cart. The
// reservation snapshots the train and passenger values as of now.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Passenger.Age < 0 {
		writeError(c, http.StatusBadRequest, "age must be non-negative")
		return
	}

	ctx := c.Request.Context()
	train, ok, err := h.catalog.Get(ctx, types.ID(req.TrainID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "train not found")
		return
	}

	passenger := types.Passenger{
		Name:     req.Passenger.Name,
		Age:      req.Passenger.Age,
		Railcard: types.Railcard(req.Passenger.Railcard),
	}
	ticketType := types.TicketType(req.TicketType)
	price := h.pricing.CalculatePrice(train, passenger, ticketType)

	r := booking.New(train, passenger, ticketType, price)
	if err := h.booking.AddToCart(ctx, &r); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *BookingHandler) List(c *gin.Context) {
	all, err := h.booking.GetMyReservations(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": all})
}

func (h *BookingHandler) Get(c *gin.Context) {
	r, ok, err := h.booking.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "reservation not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Confirm and Cancel lean on the lifecycle guards: a refused transition
// leaves the reservation untouched, and the response simply shows the
// resulting state.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.booking.ConfirmBooking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.booking.CancelReservation)
}

type modifyBookingReq struct {
	TicketType string `json:"ticket_type" binding:"required"`
}

// Modify recomputes the price for the new ticket type against the stored
// train and passenger snapshots, then applies the lifecycle transition.
func (h *BookingHandler) Modify(c *gin.Context) {
	var req modifyBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()
	id := types.ID(c.Param("id"))
	r, ok, err := h.booking.Get(ctx, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "reservation not found")
		return
	}

	newType := types.TicketType(req.TicketType)
	newPrice := h.pricing.CalculatePrice(r.Train, r.Passenger, newType)
	if err := h.booking.ModifyReservation(ctx, id, newType, newPrice); err != nil {
		writeServiceError(c, err)
		return
	}

	updated, _, err := h.booking.Get(ctx, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, id types.ID) error) {
	ctx := c.Request.Context()
	id := types.ID(c.Param("id"))

	_, ok, err := h.booking.Get(ctx, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "reservation not found")
		return
	}

	if err := op(ctx, id); err != nil {
		writeServiceError(c, err)
		return
	}
	updated, _, err := h.booking.Get(ctx, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
