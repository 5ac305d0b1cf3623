package api

import (
	"errors"
	"net/http"

	"dartshop/internal/domain/order"
	reqdto "dartshop/internal/handler/dto/request"
	resdto "dartshop/internal/handler/dto/response"
	"dartshop/internal/handler/httperr"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"
	"dartshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	sweeper commands.SweeperCommands
	q       queries.OrderQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	sweeper commands.SweeperCommands,
	q queries.OrderQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, sweeper: sweeper, q: q}
}

// @Summary Reserve items
// @Description Place a hold on a set of items and create a pending order
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Reserve(c.Request.Context(), req)
	if err != nil {
		var conflict *commands.ReservationConflictError
		switch {
		case errors.As(err, &conflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Some items are no longer available",
				resdto.ConflictResponse{TakenItemIDs: conflict.TakenItemIDs})
		case errors.Is(err, order.ErrEmptyItems):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item list cannot be empty", nil)
		case errors.Is(err, errs.ErrOrderValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reserve items", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List all orders, newest first; sweeps expired holds first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /admin/orders [get]
func (h *ReservationHandler) ListOrders(c *gin.Context) {
	// the dashboard load doubles as an on-demand sweep; a failed sweep
	// only means stale holds stay visible until the next tick
	if _, err := h.sweeper.SweepExpired(c.Request.Context()); err != nil {
		_ = c.Error(err)
	}

	views, err := h.q.ListOrders(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get order
// @Description Get a single order by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (h *ReservationHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Confirm sale
// @Description Mark a pending order completed and its items sold
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/confirm [post]
func (h *ReservationHandler) ConfirmSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.ConfirmSale(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pending order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to confirm sale", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel order
// @Description Delete a pending order and release its items
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pending order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel order", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
