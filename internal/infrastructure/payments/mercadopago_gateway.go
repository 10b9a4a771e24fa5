package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingAccessToken       = errors.New("missing mercado pago access token")
	ErrInvalidProviderPaymentID = errors.New("invalid mercado pago payment id")
)

// mercadoPagoDateLayout is the timestamp format Mercado Pago expects for
// date_of_expiration.
const mercadoPagoDateLayout = "2006-01-02T15:04:05.000-07:00"

// MercadoPagoGateway talks to Mercado Pago with the access token of the current
// attempt; no client is shared between calls because the active key comes from
// the payment settings snapshot.
//
// In mock mode nothing leaves the process: payments are approved (PIX ones
// pending) and a fake QR code is returned.
type MercadoPagoGateway struct {
	mockMode bool
	now      func() time.Time
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(mockMode bool, logger *zap.Logger) *MercadoPagoGateway {
	logger = logging.OrNop(logger).Named("gateway.mercadopago")
	if mockMode {
		logger.Info("mock mode enabled")
	}
	return &MercadoPagoGateway{mockMode: mockMode, now: time.Now, logger: logger}
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, apiKey string, c interfaces.ProviderCustomer) (string, error) {
	if g.mockMode {
		id := "mock-customer-" + strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		g.logger.Debug("mock customer created", zap.String("customer_id", id))
		return id, nil
	}

	cfg, err := newSDKConfig(apiKey)
	if err != nil {
		return "", err
	}

	var req customer.Request
	if err := remarshal(customerPayload(c), &req); err != nil {
		return "", fmt.Errorf("build customer request: %w", err)
	}

	resp, err := customer.NewClient(cfg).Create(ctx, req)
	if err != nil {
		g.logger.Warn("sdk customer create failed", zap.Error(err))
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := remarshal(resp, &out); err != nil {
		return "", fmt.Errorf("decode customer response: %w", err)
	}
	g.logger.Info("customer created", zap.String("customer_id", out.ID))
	return out.ID, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, apiKey string, r interfaces.ProviderPaymentRequest) (interfaces.ProviderPayment, error) {
	if g.mockMode {
		return g.mockPayment(r)
	}

	cfg, err := newSDKConfig(apiKey)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}

	body, err := paymentPayload(r)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}
	var req payment.Request
	if err := remarshal(body, &req); err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("build payment request: %w", err)
	}

	g.logger.Info("create payment start",
		zap.String("method", string(r.Method)),
		zap.String("external_reference", r.ExternalReference),
	)
	resp, err := payment.NewClient(cfg).Create(ctx, req)
	if err != nil {
		g.logger.Error("sdk payment create failed", zap.String("external_reference", r.ExternalReference), zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("encode payment response: %w", err)
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.logger.Info("create payment success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return interfaces.ProviderPayment{ID: id, Status: resp.Status, Response: raw}, nil
}

func (g *MercadoPagoGateway) GetPixQrCode(ctx context.Context, apiKey string, providerPaymentID string) (interfaces.PixQrCode, error) {
	if g.mockMode {
		return g.mockPixQrCode(providerPaymentID), nil
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return interfaces.PixQrCode{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}
	cfg, err := newSDKConfig(apiKey)
	if err != nil {
		return interfaces.PixQrCode{}, err
	}

	resp, err := payment.NewClient(cfg).Get(ctx, id)
	if err != nil {
		g.logger.Error("sdk payment get failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return interfaces.PixQrCode{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PixQrCode{}, fmt.Errorf("encode payment response: %w", err)
	}
	return decodePixQrCode(raw)
}

func (g *MercadoPagoGateway) mockPayment(r interfaces.ProviderPaymentRequest) (interfaces.ProviderPayment, error) {
	id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	status, detail := "approved", "accredited"
	if r.Method == entities.PaymentMethodPix {
		status, detail = "pending", "pending_waiting_transfer"
	}

	body, err := paymentPayload(r)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}
	body["id"] = id
	body["status"] = status
	body["status_detail"] = detail
	body["date_created"] = g.now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}
	g.logger.Info("mock payment created", zap.String("provider_payment_id", id), zap.String("provider_status", status))
	return interfaces.ProviderPayment{ID: id, Status: status, Response: raw}, nil
}

func (g *MercadoPagoGateway) mockPixQrCode(providerPaymentID string) interfaces.PixQrCode {
	payload := "00020126580014br.gov.bcb.pix0136mock-" + providerPaymentID + "5204000053039865802BR6009SAO PAULO62070503***6304ABCD"
	return interfaces.PixQrCode{
		Payload:        payload,
		EncodedImage:   base64.StdEncoding.EncodeToString([]byte(payload)),
		ExpirationDate: g.now().UTC().Add(30 * time.Minute),
	}
}

func newSDKConfig(apiKey string) (*config.Config, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create mercado pago config: %w", err)
	}
	return cfg, nil
}

// paymentPayload renders the request in Mercado Pago wire format.
func paymentPayload(r interfaces.ProviderPaymentRequest) (map[string]any, error) {
	amount, _ := r.Amount.Round(2).Float64()
	body := map[string]any{
		"transaction_amount": amount,
		"description":        r.Description,
		"external_reference": r.ExternalReference,
		"payer":              payerPayload(r.Payer, r.CustomerID),
	}

	switch r.Method {
	case entities.PaymentMethodPix:
		body["payment_method_id"] = "pix"
		if r.ExpiresAt != nil {
			body["date_of_expiration"] = r.ExpiresAt.Format(mercadoPagoDateLayout)
		}
	case entities.PaymentMethodCard:
		if strings.TrimSpace(r.CardToken) == "" {
			return nil, errors.New("card token is required")
		}
		body["token"] = r.CardToken
		installments := r.Installments
		if installments < 1 {
			installments = 1
		}
		body["installments"] = installments
		if r.CardMethodID != "" {
			body["payment_method_id"] = r.CardMethodID
		}
	default:
		return nil, fmt.Errorf("unsupported payment method %q", r.Method)
	}
	return body, nil
}

func payerPayload(c interfaces.ProviderCustomer, customerID string) map[string]any {
	first, last := splitName(c.Name)
	payer := map[string]any{
		"email":      c.Email,
		"first_name": first,
		"last_name":  last,
	}
	if customerID != "" {
		payer["type"] = "customer"
		payer["id"] = customerID
	}
	if doc := onlyDigits(c.Document); doc != "" {
		docType := "CPF"
		if len(doc) == 14 {
			docType = "CNPJ"
		}
		payer["identification"] = map[string]any{"type": docType, "number": doc}
	}
	return payer
}

func customerPayload(c interfaces.ProviderCustomer) map[string]any {
	body := payerPayload(c, "")
	if phone := onlyDigits(c.Phone); len(phone) > 2 {
		body["phone"] = map[string]any{"area_code": phone[:2], "number": phone[2:]}
	}
	return body
}

type pixPaymentResponse struct {
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// decodePixQrCode extracts the PIX artifact from a payment response. A missing
// or unparsable expiration is left zero for the caller to fill in.
func decodePixQrCode(raw []byte) (interfaces.PixQrCode, error) {
	var resp pixPaymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.PixQrCode{}, fmt.Errorf("decode pix response: %w", err)
	}

	qr := interfaces.PixQrCode{
		Payload:      resp.PointOfInteraction.TransactionData.QRCode,
		EncodedImage: resp.PointOfInteraction.TransactionData.QRCodeBase64,
	}
	if s := strings.TrimSpace(resp.DateOfExpiration); s != "" {
		for _, layout := range []string{time.RFC3339Nano, mercadoPagoDateLayout} {
			if t, err := time.Parse(layout, s); err == nil {
				qr.ExpirationDate = t.UTC()
				break
			}
		}
	}
	return qr, nil
}

func remarshal(in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
