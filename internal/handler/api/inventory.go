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
	"github.com/google/uuid"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary List items
// @Description List inventory items with optional filters and sorting
// @Tags inventory
// @Produce json
// @Param type query []string false "Item type filter"
// @Param condition query []string false "Condition filter"
// @Param status query []string false "Status filter"
// @Param brand query string false "Brand substring match"
// @Param min_weight query number false "Minimum weight in grams"
// @Param max_weight query number false "Maximum weight in grams"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_by query string false "Sort key"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Router /items [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var req reqdto.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.q.ListItems(c.Request.Context(), req.ToFilter())
	if err != nil {
		if errors.Is(err, errs.ErrUnknownSortKey) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown sort key", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list items", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Get item
// @Description Get a single inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Create item
// @Description Add a new item to the inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/items [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrItemValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item validation failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create item", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Update any item fields, including forcing a status change
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/items/{id} [patch]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, errs.ErrItemValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update item", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Description Remove an item from the inventory
// @Tags inventory
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/items/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete item", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
