//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"dartshop/internal/domain/order"
	"dartshop/internal/handler/api"
	resdto "dartshop/internal/handler/dto/response"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"
	"dartshop/internal/usecase/queries"
	"dartshop/tests/common/builder"
	"dartshop/tests/common/httptest"
	"dartshop/tests/common/testutil"
	commandsmock "dartshop/tests/mock/commands"
	queriesmock "dartshop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockSweeper  *commandsmock.MockSweeperCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockSweeper = commandsmock.NewMockSweeperCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockSweeper, s.mockQueries)

	// Mock admin auth middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	s.router.POST("/reservations", s.handler.Reserve)
	s.router.GET("/admin/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/admin/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.POST("/admin/orders/:id/confirm", authMiddleware, s.handler.ConfirmSale)
	s.router.DELETE("/admin/orders/:id", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReserve() {
	url := "/reservations"

	orderBuilder := builder.NewOrderBuilder()
	reqBody := orderBuilder.BuildCreateRequestDTO()
	returnView := orderBuilder.BuildView()

	s.Run("success: returns 201 Created with the pending order", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.BuyerName, response.BuyerName)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "missing buyer_name", mutate: testutil.Field("buyer_name", nil)},
			{name: "missing shipping_address", mutate: testutil.Field("shipping_address", nil)},
			{name: "missing payment_method", mutate: testutil.Field("payment_method", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict lists the taken items", func() {
		takenID := reqBody.ItemIDs[0]
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody).
			Return(nil, &commands.ReservationConflictError{TakenItemIDs: []uuid.UUID{takenID}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")

		var body struct {
			Detail resdto.ConflictResponse `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal([]uuid.UUID{takenID}, body.Detail.TakenItemIDs)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty item set",
				commandsError:  errs.Mark(order.ErrEmptyItems, errs.ErrOrderValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item list cannot be empty",
			},
			{
				name:           "order validation error",
				commandsError:  errs.Mark(order.ErrBuyerNameRequired, errs.ErrOrderValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Order validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to reserve items",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListOrders
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListOrders() {
	url := "/admin/orders"

	pending := builder.NewOrderBuilder().BuildView()
	expired := builder.NewOrderBuilder().
		With(func(b *builder.OrderBuilder) { b.Expired = true }).
		BuildView()

	s.Run("success: sweeps first and returns 200 OK", func() {
		gomock.InOrder(
			s.mockSweeper.EXPECT().SweepExpired(gomock.Any()).Return(1, nil),
			s.mockQueries.EXPECT().ListOrders(gomock.Any()).
				Return([]*queries.OrderView{pending, expired}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.False(response[0].Expired)
		s.True(response[1].Expired)
	})

	s.Run("success: a failed sweep does not block the listing", func() {
		gomock.InOrder(
			s.mockSweeper.EXPECT().SweepExpired(gomock.Any()).Return(0, errors.New("db down")),
			s.mockQueries.EXPECT().ListOrders(gomock.Any()).
				Return([]*queries.OrderView{pending}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String()

	returnView := builder.NewOrderBuilder().
		With(func(b *builder.OrderBuilder) { b.ID = orderID }).
		BuildView()

	s.Run("success: returns 200 OK with OrderResponse", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), orderID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing order", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), orderID).
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestConfirmSale
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirmSale() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/confirm"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ConfirmSale(gomock.Any(), orderID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found when the order is no longer pending", func() {
		s.mockCommands.EXPECT().ConfirmSale(gomock.Any(), orderID).
			Return(errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pending order not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found when the order is no longer pending", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID).
			Return(errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pending order not found")
	})
}
