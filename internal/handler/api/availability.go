package api

import (
	"errors"
	"net/http"
	"time"

	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/handler/httperr"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(qs queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: qs}
}

// FindAvailable answers "which rooms are free for [start, end)?".
// Category filtering is optional.
func (h *AvailabilityHandler) FindAvailable(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time, expected RFC3339", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end time, expected RFC3339", nil)
		return
	}

	var category *string
	if cat := c.Query("category"); cat != "" {
		category = &cat
	}

	rooms, err := h.queries.FindAvailable(c.Request.Context(), start, end, category)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInterval) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Interval end must be after start", nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

func (h *AvailabilityHandler) RoomTimeline(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entries, err := h.queries.RoomTimeline(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeline(entries))
}
