//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dartshop/internal/handler/api"
	reqdto "dartshop/internal/handler/dto/request"
	resdto "dartshop/internal/handler/dto/response"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"
	"dartshop/tests/common/httptest"
	commandsmock "dartshop/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands)

	s.router.POST("/admin/login", s.handler.Login)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := reqdto.AdminLoginRequest{Pincode: "4771"}

	s.Run("success: returns 200 OK with token and expiry", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.AdminSession{Token: "signed.jwt.token", ExpiresIn: 12 * time.Hour}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.Token)
		s.Equal(int64(43200), response.ExpiresIn)
	})

	s.Run("error: 400 Bad Request without pincode", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized for wrong pincode", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, errs.ErrInvalidPincode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid pincode")
	})
}
