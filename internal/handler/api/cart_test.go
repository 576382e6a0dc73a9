//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/handler/api"
	resdto "ecocollect/internal/handler/dto/response"
	"ecocollect/internal/usecase/queries"
	"ecocollect/tests/common/builder"
	"ecocollect/tests/common/httptest"
	commandsmock "ecocollect/tests/mock/commands"
	queriesmock "ecocollect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/cart", s.handler.Get)
	s.router.DELETE("/cart", s.handler.Clear)
	s.router.POST("/cart/items", s.handler.Add)
	s.router.PUT("/cart/items/:id", s.handler.SetQuantity)
	s.router.DELETE("/cart/items/:id", s.handler.Remove)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartView() *queries.CartView {
	return &queries.CartView{
		Items:      []queries.CartItemView{{ID: "dev-001", Name: "Refurbished Laptop", PriceCents: 45000, Quantity: 1}},
		TotalCents: 45000,
		ItemCount:  1,
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Get(gomock.Any()).Return(s.cartView(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

	var resp queries.CartView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(45000), resp.TotalCents)
	s.Len(resp.Items, 1)
}

func (s *CartHandlerTestSuite) TestAdd() {
	product := builder.NewProductBuilder().BuildDomain()

	s.Run("adds a new item", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(cart.Event{Kind: cart.EventItemAdded, ProductID: product.ID, ProductName: product.Name, Quantity: 1}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(s.cartView(), nil)

		body := map[string]any{
			"id":          product.ID,
			"name":        product.Name,
			"price_cents": product.PriceCents,
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "")

		var resp resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(string(cart.EventItemAdded), resp.Event)
		s.Contains(resp.Notice, "added to cart")
	})

	s.Run("rejects a payload without an id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items",
			map[string]any{"name": "No ID"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	s.Run("updates the quantity", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), "dev-001", 3).
			Return(cart.Event{Kind: cart.EventQuantityChanged, ProductID: "dev-001", ProductName: "Refurbished Laptop", Quantity: 3}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(s.cartView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/dev-001",
			map[string]any{"quantity": 3}, "")

		var resp resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(string(cart.EventQuantityChanged), resp.Event)
	})

	s.Run("zero removes the line", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), "dev-001", 0).
			Return(cart.Event{Kind: cart.EventItemRemoved, ProductID: "dev-001", ProductName: "Refurbished Laptop"}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(&queries.CartView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/dev-001",
			map[string]any{"quantity": 0}, "")

		var resp resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(string(cart.EventItemRemoved), resp.Event)
	})

	s.Run("rejects a body without quantity", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/dev-001",
			map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	s.mockCommands.EXPECT().Remove(gomock.Any(), "dev-001").
		Return(cart.Event{Kind: cart.EventItemRemoved, ProductID: "dev-001", ProductName: "Refurbished Laptop"}, nil)
	s.mockQueries.EXPECT().Get(gomock.Any()).Return(&queries.CartView{}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/dev-001", nil, "")

	var resp resdto.CartMutationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Contains(resp.Notice, "removed from cart")
}

func (s *CartHandlerTestSuite) TestClear() {
	s.mockCommands.EXPECT().Clear(gomock.Any()).
		Return(cart.Event{Kind: cart.EventCleared}, nil)
	s.mockQueries.EXPECT().Get(gomock.Any()).Return(&queries.CartView{}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")

	var resp resdto.CartMutationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("Cart cleared", resp.Notice)
}
