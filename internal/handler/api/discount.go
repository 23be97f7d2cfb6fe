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

type DiscountHandler struct {
	commands commands.DiscountCommands
	queries  queries.DiscountQueries
}

func NewDiscountHandler(cmds commands.DiscountCommands, qs queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{commands: cmds, queries: qs}
}

func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	d, err := h.commands.CreateDiscount(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDiscount(d))
}

func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteDiscount(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CurrentDiscount returns the discount applicable today, if any.
func (h *DiscountHandler) CurrentDiscount(c *gin.Context) {
	dv, err := h.queries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountView(dv))
}

func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	dvs, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountViews(dvs))
}
