// README: Booking assistant handler; turns free text into catalog searches.
package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"railway/internal/ai"
	"railway/internal/modules/catalog"
)

type AssistantHandler struct {
	provider ai.LLMProvider
	catalog  *catalog.Service
}

func NewAssistantHandler(provider ai.LLMProvider, cat *catalog.Service) *AssistantHandler {
	return &AssistantHandler{provider: provider, catalog: cat}
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

type chatResp struct {
	Reply  string          `json:"reply"`
	Trains []catalog.Train `json:"trains,omitempty"`
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	if h.provider == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()
	stations, err := h.knownStations(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	intent, err := h.provider.ParseTravelIntent(ctx, req.Message, map[string]string{
		"current_time":   time.Now().Format(time.RFC3339),
		"known_stations": stations,
	})
	if err != nil {
		writeError(c, http.StatusBadGateway, "assistant unavailable")
		return
	}

	resp := chatResp{Reply: intent.Reply}
	if intent.Intent == "search" {
		origin, destination := deref(intent.Origin), deref(intent.Destination)
		trains, err := h.catalog.Search(ctx, origin, destination)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp.Trains = filterByDeparture(trains, intent.EarliestDeparture)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) knownStations(c *gin.Context) (string, error) {
	trains, err := h.catalog.List(c.Request.Context())
	if err != nil {
		return "", err
	}
	seen := make(map[string]bool)
	for _, t := range trains {
		seen[t.Origin] = true
		seen[t.Destination] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", "), nil
}

func filterByDeparture(trains []catalog.Train, earliest *string) []catalog.Train {
	if earliest == nil {
		return trains
	}
	cutoff, err := time.Parse(time.RFC3339, *earliest)
	if err != nil {
		return trains
	}
	// only the time of day matters against the anchored timetable
	cutoffMinute := cutoff.Hour()*60 + cutoff.Minute()
	var out []catalog.Train
	for _, t := range trains {
		if t.DepartureTime.Hour()*60+t.DepartureTime.Minute() >= cutoffMinute {
			out = append(out, t)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
