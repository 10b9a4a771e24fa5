package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "checkout_service/internal/adapter/http/dto/response"
	"checkout_service/internal/adapter/http/handlers/mocks"
	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	return r
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Now().UTC()

	t.Run("all orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{
			{ID: "ord-2", CreatedAt: now},
			{ID: "ord-1", CreatedAt: now.Add(-time.Hour)},
		}, nil)

		w := doJSON(newOrderRouter(uc), http.MethodGet, "/v1/orders", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 2 || body[0].ID != "ord-2" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("by payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListByPaymentID(gomock.Any(), "pay-1").Return([]entities.Order{{ID: "ord-1", PaymentID: "pay-1"}}, nil)

		w := doJSON(newOrderRouter(uc), http.MethodGet, "/v1/orders?payment_id=pay-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("scan failed"))

		w := doJSON(newOrderRouter(uc), http.MethodGet, "/v1/orders", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

	w := doJSON(newOrderRouter(uc), http.MethodGet, "/v1/orders/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(uc), http.MethodPatch, "/v1/orders/ord-1/status", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "ord-1", "APPROVED").Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		w := doJSON(newOrderRouter(uc), http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"APPROVED"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "ord-1", "CONFIRMED").Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusConfirmed}, nil)

		w := doJSON(newOrderRouter(uc), http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"CONFIRMED"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.PaymentStatus != "CONFIRMED" {
			t.Fatalf("expected CONFIRMED, got %q", body.PaymentStatus)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-9").Return(usecase.ErrOrderNotFound)

		w := doJSON(newOrderRouter(uc), http.MethodDelete, "/v1/orders/ord-9", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
