// README: Fare quote handler; checks the cache before the pricing engine.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/types"
)

type QuoteHandler struct {
	catalog *catalog.Service
	pricing *pricing.Service
	quotes  *pricing.QuoteCache
}

func NewQuoteHandler(cat *catalog.Service, svc *pricing.Service, quotes *pricing.QuoteCache) *QuoteHandler {
	return &QuoteHandler{catalog: cat, pricing: svc, quotes: quotes}
}

type quoteReq struct {
	TrainID    string `json:"train_id" binding:"required"`
	Age        int    `json:"age"`
	Railcard   string `json:"railcard"`
	TicketType string `json:"ticket_type"`
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Age < 0 {
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

	passenger := types.Passenger{Age: req.Age, Railcard: types.Railcard(req.Railcard)}
	ticketType := types.TicketType(req.TicketType)

	if price, hit, err := h.quotes.Get(ctx, train.ID, ticketType, passenger); err == nil && hit {
		c.JSON(http.StatusOK, pricing.Quote{
			TrainID: train.ID, Passenger: passenger, TicketType: ticketType, Price: price,
		})
		return
	}

	price := h.pricing.CalculatePrice(train, passenger, ticketType)
	if err := h.quotes.Set(ctx, train.ID, ticketType, passenger, price); err != nil {
		// cache trouble never blocks a quote
		log.Printf("quote cache set: %v", err)
	}
	c.JSON(http.StatusOK, pricing.Quote{
		TrainID: train.ID, Passenger: passenger, TicketType: ticketType, Price: price,
	})
}
