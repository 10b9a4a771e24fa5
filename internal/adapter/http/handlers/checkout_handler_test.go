package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	response "checkout_service/internal/adapter/http/dto/response"
	"checkout_service/internal/adapter/http/handlers/mocks"
	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase"
	"checkout_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	cardCheckoutBody = `{
		"product_id": "prod-1",
		"customer": {"name": "Ana Souza", "email": "ana@example.com"},
		"card": {"holder_name": "ANA SOUZA", "number": "4111111111111111", "expiry_month": 12, "expiry_year": 2030, "cvv": "123"}
	}`
	pixCheckoutBody = `{"product_id": "prod-1", "customer": {"name": "Ana Souza", "email": "ana@example.com"}}`
	iphoneUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
)

func newCheckoutRouter(uc usecase.ICheckoutUseCase) *gin.Engine {
	h := NewCheckoutHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/checkout/card", h.PayWithCard)
	r.POST("/v1/checkout/pix", h.PayWithPix)
	return r
}

func doJSON(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func confirmedCardResult() usecase.CheckoutResult {
	order := entities.Order{ID: "ord-1", PaymentID: "pay-1", PaymentMethod: entities.PaymentMethodCard, PaymentStatus: entities.PaymentStatusConfirmed}
	return usecase.CheckoutResult{
		Payment:  entities.PaymentResult{Success: true, Method: entities.PaymentMethodCard, PaymentID: "pay-1", Status: entities.PaymentStatusConfirmed},
		Order:    &order,
		Redirect: entities.RedirectSuccess,
	}
}

func TestCheckoutHandler_PayWithCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", `{"product_id":"prod-1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success maps command and device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().PayWithCard(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.CardCheckoutCommand) (usecase.CheckoutResult, error) {
			if cmd.ProductID != "prod-1" || cmd.Customer.Email != "ana@example.com" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			if cmd.Card.Number != "4111111111111111" || cmd.Card.ExpiryMonth != 12 || cmd.Card.ExpiryYear != 2030 {
				t.Fatalf("unexpected card: %+v", cmd.Card)
			}
			if cmd.DeviceType != entities.DeviceTypeMobile {
				t.Fatalf("expected mobile device, got %q", cmd.DeviceType)
			}
			return confirmedCardResult(), nil
		})

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", cardCheckoutBody, map[string]string{"User-Agent": iphoneUserAgent})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Redirect.Path != "/payment-success" || body.Order == nil || body.Order.ID != "ord-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("declined answers 402 with body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		order := entities.Order{ID: "ord-2", PaymentStatus: entities.PaymentStatusRejected}
		uc.EXPECT().PayWithCard(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{
			Payment:  entities.PaymentResult{Method: entities.PaymentMethodCard, Status: entities.PaymentStatusRejected, Error: "payment declined"},
			Order:    &order,
			Redirect: entities.RedirectFailure,
		}, usecase.ErrPaymentDeclined)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", cardCheckoutBody, nil)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Redirect.Target != "failure" || body.Payment.Error != "payment declined" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("duplicate of declined attempt answers 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		order := entities.Order{ID: "ord-2", PaymentID: "pay-1", PaymentStatus: entities.PaymentStatusRejected}
		uc.EXPECT().PayWithCard(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{
			Payment:    entities.PaymentResult{Method: entities.PaymentMethodCard, PaymentID: "pay-1", Status: entities.PaymentStatusRejected, Error: "payment declined"},
			Order:      &order,
			Duplicated: true,
			Redirect:   entities.RedirectFailure,
		}, usecase.ErrPaymentDeclined)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", cardCheckoutBody, nil)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Duplicated || body.Redirect.Target != "failure" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("duplicate answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		out := confirmedCardResult()
		out.Duplicated = true
		uc.EXPECT().PayWithCard(gomock.Any(), gomock.Any()).Return(out, nil)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", cardCheckoutBody, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Duplicated {
			t.Fatalf("expected duplicated flag")
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
			want string
		}{
			{"card data", fmt.Errorf("%w: card expired", usecase.ErrInvalidCardData), http.StatusBadRequest, "INVALID_CARD_DATA"},
			{"product", usecase.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
			{"configuration", usecase.ErrCardPaymentsDisabled, http.StatusServiceUnavailable, "PAYMENT_CONFIGURATION_ERROR"},
			{"provider", fmt.Errorf("%w: timeout", usecase.ErrProviderFailure), http.StatusBadGateway, "PAYMENT_PROVIDER_ERROR"},
			{"order", fmt.Errorf("%w: dynamo down", usecase.ErrOrderProcessing), http.StatusInternalServerError, "ORDER_PROCESSING_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				uc.EXPECT().PayWithCard(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, tc.err)

				w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/card", cardCheckoutBody, nil)
				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
				var body pkg.HTTPError
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if body.Code != tc.want {
					t.Fatalf("expected %s, got %s", tc.want, body.Code)
				}
			})
		}
	})
}

func TestCheckoutHandler_PayWithPix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		order := entities.Order{ID: "ord-3", PaymentMethod: entities.PaymentMethodPix, PaymentStatus: entities.PaymentStatusPending}
		uc.EXPECT().PayWithPix(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.PixCheckoutCommand) (usecase.CheckoutResult, error) {
			if cmd.DeviceType != entities.DeviceTypeDesktop {
				t.Fatalf("expected desktop device, got %q", cmd.DeviceType)
			}
			return usecase.CheckoutResult{
				Payment: entities.PaymentResult{
					Success: true,
					Method:  entities.PaymentMethodPix,
					Status:  entities.PaymentStatusPending,
					Pix:     &entities.PixPaymentDetails{QRCodePayload: "000201br.gov.bcb.pix"},
				},
				Order:    &order,
				Redirect: entities.RedirectSuccess,
			}, nil
		})

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/pix", pixCheckoutBody, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Payment.Pix == nil || body.Payment.Pix.QRCodePayload == "" {
			t.Fatalf("expected pix details, got %+v", body.Payment)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/pix", `{"product_id":"prod-1","customer":{"name":"Ana","email":"not-an-email"}}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().PayWithPix(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, fmt.Errorf("%w: %w", usecase.ErrProviderFailure, usecase.ErrPaymentGatewayUnauthorized))

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/pix", pixCheckoutBody, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
