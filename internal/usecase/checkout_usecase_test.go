package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"
	mock_interfaces "checkout_service/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	settingsRepo *mock_interfaces.MockISettingsRepository
	productRepo  *mock_interfaces.MockIProductRepository
	orderRepo    *mock_interfaces.MockIOrderRepository
	gateway      *mock_interfaces.MockIPaymentGateway
	guard        *SubmissionGuard
	uc           *CheckoutUseCase
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	ctrl := gomock.NewController(t)
	f := checkoutFixture{
		settingsRepo: mock_interfaces.NewMockISettingsRepository(ctrl),
		productRepo:  mock_interfaces.NewMockIProductRepository(ctrl),
		orderRepo:    mock_interfaces.NewMockIOrderRepository(ctrl),
		gateway:      mock_interfaces.NewMockIPaymentGateway(ctrl),
		guard:        NewSubmissionGuard(),
	}
	f.uc = NewCheckoutUseCase(
		NewSettingsUseCase(f.settingsRepo),
		NewProductUseCase(f.productRepo),
		NewOrderUseCase(f.orderRepo),
		newTestCardSettlement(f.gateway),
		newTestPixSettlement(f.gateway),
		f.guard,
		zap.NewNop(),
	)
	return f
}

func (f checkoutFixture) withSettings(s entities.PaymentSettings) {
	f.settingsRepo.EXPECT().Get(gomock.Any()).Return(s, true, nil).AnyTimes()
}

func (f checkoutFixture) withProduct(p entities.Product) {
	f.productRepo.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil).AnyTimes()
}

func cardCommand(paymentID string) CardCheckoutCommand {
	card := validCard()
	card.PaymentID = paymentID
	return CardCheckoutCommand{
		ProductID:  "prod-1",
		Customer:   entities.CustomerSnapshot{Name: "Maria Silva", Email: "maria@example.com"},
		Card:       card,
		DeviceType: entities.DeviceTypeMobile,
	}
}

func echoOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	return o, nil
}

func TestCheckout_PayWithCard_ScenarioA(t *testing.T) {
	f := newCheckoutFixture(t)
	settings := entities.DefaultPaymentSettings()
	settings.ManualCardProcessing = true
	settings.ManualCardStatus = "ANALYSIS"
	f.withSettings(settings)
	f.withProduct(testProduct())

	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder).Times(1)

	out, err := f.uc.PayWithCard(context.Background(), cardCommand(""))
	require.NoError(t, err)

	require.NotNil(t, out.Order)
	assert.Equal(t, entities.PaymentStatusAnalysis, out.Order.PaymentStatus)
	assert.Equal(t, entities.RedirectSuccess, out.Redirect)
	assert.False(t, out.Duplicated)
	assert.Equal(t, entities.DeviceTypeMobile, out.Order.DeviceType)
	assert.Equal(t, "E-book", out.Order.Product.Name)
	assert.Equal(t, "1111", out.Order.CardLast4)
	assert.NotEmpty(t, out.Order.ID)
}

func TestCheckout_PayWithCard_ScenarioB_RejectionIsRecordedOnce(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(entities.DefaultPaymentSettings())
	product := testProduct()
	product.OverrideGlobalStatus = true
	product.CustomManualStatus = "DENIED"
	f.withProduct(product)

	var recorded []entities.Order
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			recorded = append(recorded, o)
			return o, nil
		}).Times(1)

	out, err := f.uc.PayWithCard(context.Background(), cardCommand(""))
	require.ErrorIs(t, err, ErrPaymentDeclined)

	require.Len(t, recorded, 1)
	assert.Equal(t, entities.PaymentStatusRejected, recorded[0].PaymentStatus)
	assert.False(t, out.Payment.Success)
	assert.Equal(t, entities.RedirectFailure, out.Redirect)
	require.NotNil(t, out.Order)
}

func TestCheckout_PayWithCard_DuplicateSubmission(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(entities.DefaultPaymentSettings())
	f.withProduct(testProduct())

	var stored entities.Order
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return o, nil
		}).Times(1)
	f.orderRepo.EXPECT().ListByPaymentID(gomock.Any(), "pay-1").
		DoAndReturn(func(context.Context, string) ([]entities.Order, error) {
			return []entities.Order{stored}, nil
		})

	first, err := f.uc.PayWithCard(context.Background(), cardCommand("pay-1"))
	require.NoError(t, err)
	assert.False(t, first.Duplicated)

	second, err := f.uc.PayWithCard(context.Background(), cardCommand("pay-1"))
	require.NoError(t, err)
	assert.True(t, second.Duplicated)
	require.NotNil(t, second.Order)
	assert.Equal(t, first.Order.ID, second.Order.ID)
	assert.Equal(t, entities.RedirectSuccess, second.Redirect)
}

func providerCardCommand(paymentID string) CardCheckoutCommand {
	cmd := cardCommand(paymentID)
	cmd.Card.Token = "tok-1"
	return cmd
}

func providerSettings() entities.PaymentSettings {
	settings := entities.DefaultPaymentSettings()
	settings.SandboxAPIKey = "TEST-key"
	return settings
}

func TestCheckout_PayWithCard_ConcurrentSamePaymentIDChargesOnce(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(providerSettings())
	f.withProduct(testProduct())

	var calls atomic.Int32
	f.gateway.EXPECT().CreatePayment(gomock.Any(), "TEST-key", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req interfaces.ProviderPaymentRequest) (interfaces.ProviderPayment, error) {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)
			return interfaces.ProviderPayment{ID: "mp-1", Status: "approved"}, nil
		}).AnyTimes()
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder).AnyTimes()
	f.orderRepo.EXPECT().ListByPaymentID(gomock.Any(), "pay-same").Return(nil, nil).AnyTimes()

	results := make([]CheckoutResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.PayWithCard(context.Background(), providerCardCommand("pay-same"))
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), calls.Load())
	assert.NotEqual(t, results[0].Duplicated, results[1].Duplicated)
}

func TestCheckout_PayWithCard_GeneratedPaymentIDIsClaimed(t *testing.T) {
	f := newCheckoutFixture(t)
	f.uc.newID = func() string { return "pay-checkout" }
	f.withSettings(providerSettings())
	f.withProduct(testProduct())

	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req interfaces.ProviderPaymentRequest) (interfaces.ProviderPayment, error) {
			assert.Equal(t, "pay-checkout", req.ExternalReference)
			return interfaces.ProviderPayment{ID: "mp-1", Status: "approved"}, nil
		})
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

	out, err := f.uc.PayWithCard(context.Background(), providerCardCommand(""))
	require.NoError(t, err)
	assert.Equal(t, "pay-checkout", out.Payment.PaymentID)
	assert.True(t, f.guard.Seen("pay-checkout"))
}

func TestCheckout_PayWithCard_OrderFailureKeepsPaymentIDClaimed(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(providerSettings())
	f.withProduct(testProduct())

	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.ProviderPayment{ID: "mp-1", Status: "approved"}, nil).Times(1)
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo unavailable")).Times(1)
	f.orderRepo.EXPECT().ListByPaymentID(gomock.Any(), "pay-1").Return(nil, nil)

	out, err := f.uc.PayWithCard(context.Background(), providerCardCommand("pay-1"))
	require.ErrorIs(t, err, ErrOrderProcessing)
	assert.Nil(t, out.Order)
	assert.Equal(t, "mp-1", out.Payment.ProviderPaymentID)
	assert.True(t, f.guard.Seen("pay-1"))

	// the same id again is not charged a second time
	out, err = f.uc.PayWithCard(context.Background(), providerCardCommand("pay-1"))
	require.NoError(t, err)
	assert.True(t, out.Duplicated)
	assert.Nil(t, out.Order)
}

func TestCheckout_PayWithCard_ProviderFailureKeepsPaymentIDClaimed(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(providerSettings())
	f.withProduct(testProduct())

	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.ProviderPayment{}, errors.New("connection reset by peer")).Times(1)

	_, err := f.uc.PayWithCard(context.Background(), providerCardCommand("pay-1"))
	require.ErrorIs(t, err, ErrProviderFailure)
	assert.True(t, f.guard.Seen("pay-1"))
}

func TestCheckout_PayWithCard_RefusalReleasesPaymentID(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(entities.DefaultPaymentSettings())
	f.withProduct(testProduct())
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder).Times(1)

	bad := cardCommand("pay-1")
	bad.Card.CVV = "1"
	_, err := f.uc.PayWithCard(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidCardData)
	assert.False(t, f.guard.Seen("pay-1"))

	// corrected card data under the same id goes through
	out, err := f.uc.PayWithCard(context.Background(), cardCommand("pay-1"))
	require.NoError(t, err)
	require.NotNil(t, out.Order)
	assert.False(t, out.Duplicated)
}

func TestCheckout_PayWithCard_DuplicateOfDeclinedAttempt(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withSettings(entities.DefaultPaymentSettings())
	product := testProduct()
	product.OverrideGlobalStatus = true
	product.CustomManualStatus = "DENIED"
	f.withProduct(product)

	var stored entities.Order
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return o, nil
		}).Times(1)
	f.orderRepo.EXPECT().ListByPaymentID(gomock.Any(), "pay-1").
		DoAndReturn(func(context.Context, string) ([]entities.Order, error) {
			return []entities.Order{stored}, nil
		})

	_, err := f.uc.PayWithCard(context.Background(), cardCommand("pay-1"))
	require.ErrorIs(t, err, ErrPaymentDeclined)

	second, err := f.uc.PayWithCard(context.Background(), cardCommand("pay-1"))
	require.ErrorIs(t, err, ErrPaymentDeclined)
	assert.True(t, second.Duplicated)
	require.NotNil(t, second.Order)
	assert.Equal(t, entities.RedirectFailure, second.Redirect)
	assert.Equal(t, entities.FailureKindDeclined, second.Payment.ErrorKind)
}

func TestCheckout_PayWithCard_Errors(t *testing.T) {
	t.Run("product not found", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.withSettings(entities.DefaultPaymentSettings())
		f.productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := f.uc.PayWithCard(context.Background(), cardCommand(""))
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("invalid customer", func(t *testing.T) {
		f := newCheckoutFixture(t)
		cmd := cardCommand("")
		cmd.Customer.Email = " "

		_, err := f.uc.PayWithCard(context.Background(), cmd)
		assert.ErrorIs(t, err, ErrInvalidCustomer)
	})

	t.Run("configuration error creates no order", func(t *testing.T) {
		f := newCheckoutFixture(t)
		settings := entities.DefaultPaymentSettings()
		settings.AllowCreditCard = false
		f.withSettings(settings)
		f.withProduct(testProduct())

		out, err := f.uc.PayWithCard(context.Background(), cardCommand(""))
		assert.ErrorIs(t, err, ErrPaymentConfiguration)
		assert.Nil(t, out.Order)
	})

	t.Run("settings load failure", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.PaymentSettings{}, false, errors.New("boom"))

		_, err := f.uc.PayWithCard(context.Background(), cardCommand(""))
		require.Error(t, err)
	})
}

func TestCheckout_PayWithPix(t *testing.T) {
	t.Run("manual page records pending order", func(t *testing.T) {
		f := newCheckoutFixture(t)
		settings := entities.DefaultPaymentSettings()
		settings.ManualPixPage = true
		f.withSettings(settings)
		f.withProduct(testProduct())

		f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		out, err := f.uc.PayWithPix(context.Background(), PixCheckoutCommand{
			ProductID: "prod-1",
			Customer:  entities.CustomerSnapshot{Name: "Joao", Email: "joao@example.com"},
		})
		require.NoError(t, err)
		require.NotNil(t, out.Order)
		assert.Equal(t, entities.PaymentStatusPending, out.Order.PaymentStatus)
		assert.Equal(t, entities.PaymentMethodPix, out.Order.PaymentMethod)
		require.NotNil(t, out.Order.PixExpirationDate)
		assert.Equal(t, pixNow.Add(24*time.Hour), *out.Order.PixExpirationDate)
		assert.Equal(t, entities.RedirectSuccess, out.Redirect)
	})

	t.Run("provider failure maps to provider error", func(t *testing.T) {
		f := newCheckoutFixture(t)
		settings := entities.DefaultPaymentSettings()
		settings.SandboxAPIKey = "TEST-key"
		f.withSettings(settings)
		f.withProduct(testProduct())

		f.gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.ProviderPayment{}, errors.New("connection reset by peer"))

		out, err := f.uc.PayWithPix(context.Background(), PixCheckoutCommand{
			ProductID: "prod-1",
			Customer:  entities.CustomerSnapshot{Name: "Joao", Email: "joao@example.com"},
		})
		assert.ErrorIs(t, err, ErrProviderFailure)
		assert.False(t, out.Payment.Success)
		assert.Nil(t, out.Order)
	})
}
