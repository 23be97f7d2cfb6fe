package api

import (
	"net/http"

	reqdto "innkeeper/internal/handler/dto/request"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/handler/httperr"
	"innkeeper/internal/handler/middleware"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StayHandler struct {
	commands commands.StayCommands
	queries  queries.BookingQueries
}

func NewStayHandler(cmds commands.StayCommands, qs queries.BookingQueries) *StayHandler {
	return &StayHandler{commands: cmds, queries: qs}
}

func (h *StayHandler) CheckIn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	stay, err := h.commands.CheckIn(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStay(stay))
}

func (h *StayHandler) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	stay, err := h.commands.CheckOut(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStay(stay))
}

func (h *StayHandler) DeleteStay(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteStay(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StayHandler) GetStay(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sv, err := h.queries.GetStay(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayView(sv))
}

func (h *StayHandler) ListStays(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		svs, err := h.queries.ListCheckedInByCategory(c.Request.Context(), category)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromStayViews(svs))
		return
	}

	svs, err := h.queries.ListStays(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayViews(svs))
}
