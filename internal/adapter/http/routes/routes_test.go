package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_service/internal/adapter/http/handlers"
	"checkout_service/internal/adapter/http/handlers/mocks"
	"checkout_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	orders := mocks.NewMockIOrderUseCase(ctrl)
	r := NewRouter(Handlers{
		Checkout: handlers.NewCheckoutHandler(mocks.NewMockICheckoutUseCase(ctrl), nil),
		Orders:   handlers.NewOrderHandler(orders, nil),
		Settings: handlers.NewSettingsHandler(mocks.NewMockISettingsUseCase(ctrl), nil),
		Products: handlers.NewProductHandler(mocks.NewMockIProductUseCase(ctrl)),
	}, zap.NewNop())
	return r, orders
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_KeepsClientRequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestNewRouter_MountsOrderRoutes(t *testing.T) {
	r, orders := newTestRouter(t)
	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"ord-1"`)
}

func TestNewRouter_RecoversFromPanic(t *testing.T) {
	r, orders := newTestRouter(t)
	orders.EXPECT().ListOrders(gomock.Any()).DoAndReturn(func(_ any) ([]entities.Order, error) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
