package api

import (
	"errors"
	"net/http"

	reqdto "dartshop/internal/handler/dto/request"
	resdto "dartshop/internal/handler/dto/response"
	"dartshop/internal/handler/httperr"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Admin login
// @Description Exchange the shared pincode for an admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPincode) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid pincode", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminSession(session))
}
