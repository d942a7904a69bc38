// README: Train catalog handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railway/internal/modules/catalog"
	"railway/internal/types"
)

type TrainHandler struct {
	catalog *catalog.Service
}

func NewTrainHandler(svc *catalog.Service) *TrainHandler {
	return &TrainHandler{catalog: svc}
}

func (h *TrainHandler) List(c *gin.Context) {
	trains, err := h.catalog.Search(c.Request.Context(),
		c.Query("origin"), c.Query("destination"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

func (h *TrainHandler) Get(c *gin.Context) {
	t, ok, err := h.catalog.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "train not found")
		return
	}
	c.JSON(http.StatusOK, t)
}
