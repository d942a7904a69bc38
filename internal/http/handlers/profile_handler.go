// README: Profile handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railway/internal/modules/profile"
	"railway/internal/types"
)

type ProfileHandler struct {
	profile *profile.Service
}

func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{profile: svc}
}

type createProfileReq struct {
	Username string `json:"username" binding:"required"`
	Age      int    `json:"age"`
	Railcard string `json:"railcard"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.profile.CreateProfile(c.Request.Context(),
		req.Username, req.Age, types.Railcard(req.Railcard))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profile.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if p == nil {
		writeError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) List(c *gin.Context) {
	all, err := h.profile.AllProfiles(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": all})
}

type updateAddressReq struct {
	Address string `json:"address" binding:"required"`
}

func (h *ProfileHandler) UpdateAddress(c *gin.Context) {
	var req updateAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.profile.UpdateAddress(c.Request.Context(),
		types.ID(c.Param("id")), req.Address); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
