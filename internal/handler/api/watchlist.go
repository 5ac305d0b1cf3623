package api

import (
	"errors"
	"net/http"

	reqdto "dartshop/internal/handler/dto/request"
	resdto "dartshop/internal/handler/dto/response"
	"dartshop/internal/handler/httperr"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"
	"dartshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	cmds commands.WatchlistCommands
	q    queries.WatchlistQueries
}

func NewWatchlistHandler(cmds commands.WatchlistCommands, q queries.WatchlistQueries) *WatchlistHandler {
	return &WatchlistHandler{cmds: cmds, q: q}
}

var errMissingBuyer = errors.New("buyer query parameter required")

// @Summary Watch item
// @Description Add an item to a buyer's watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body reqdto.AddWatchRequest true "Watch request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /watchlist [post]
func (h *WatchlistHandler) Watch(c *gin.Context) {
	var req reqdto.AddWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Watch(c.Request.Context(), req); err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to watch item", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unwatch item
// @Description Remove an item from a buyer's watchlist
// @Tags watchlist
// @Accept json
// @Param request body reqdto.RemoveWatchRequest true "Unwatch request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /watchlist [delete]
func (h *WatchlistHandler) Unwatch(c *gin.Context) {
	var req reqdto.RemoveWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Unwatch(c.Request.Context(), req); err != nil {
		if errors.Is(err, errs.ErrWatchlistEntryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Watchlist entry not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to unwatch item", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List watchlist
// @Description List a buyer's watchlist entries with item snapshots
// @Tags watchlist
// @Produce json
// @Param buyer query string true "Buyer name"
// @Success 200 {array} resdto.WatchlistEntryResponse
// @Failure 400 {object} map[string]string
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c *gin.Context) {
	buyer := c.Query("buyer")
	if buyer == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingBuyer, "buyer query parameter required", nil)
		return
	}
	entries, err := h.q.ListWatchlist(c.Request.Context(), buyer)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list watchlist", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWatchlistEntryViews(entries))
}
