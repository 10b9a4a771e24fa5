package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProviderFailure                = errors.New("payment provider failure")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ProviderErrorKind is the classification of a provider failure.
type ProviderErrorKind string

const (
	ProviderErrorBadRequest       ProviderErrorKind = "bad_request"
	ProviderErrorUnauthorized     ProviderErrorKind = "unauthorized"
	ProviderErrorInvalidUsers     ProviderErrorKind = "invalid_users"
	ProviderErrorCustomerNotFound ProviderErrorKind = "customer_not_found"
	ProviderErrorTimeout          ProviderErrorKind = "timeout"
	ProviderErrorUnknown          ProviderErrorKind = "unknown"
)

// ProviderError wraps a failed call to the payment provider.
//
// errors.Is matches ErrProviderFailure for every kind, plus the kind-specific
// sentinel when there is one.
type ProviderError struct {
	Op   string
	Kind ProviderErrorKind
	Err  error
}

func newProviderError(op string, err error) *ProviderError {
	return &ProviderError{Op: op, Kind: classifyProviderError(err), Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", ErrProviderFailure, e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	errs := []error{ErrProviderFailure, e.Err}
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	return errs
}

func (k ProviderErrorKind) sentinel() error {
	switch k {
	case ProviderErrorBadRequest:
		return ErrPaymentGatewayBadRequest
	case ProviderErrorUnauthorized:
		return ErrPaymentGatewayUnauthorized
	case ProviderErrorInvalidUsers:
		return ErrPaymentGatewayInvalidUsers
	case ProviderErrorCustomerNotFound:
		return ErrPaymentGatewayCustomerNotFound
	}
	return nil
}

// classifyProviderError inspects the provider error text. Mercado Pago returns
// its error envelope as JSON inside the SDK error message.
func classifyProviderError(err error) ProviderErrorKind {
	switch {
	case err == nil:
		return ProviderErrorUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return ProviderErrorTimeout
	case isGatewayCustomerNotFound(err):
		return ProviderErrorCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ProviderErrorInvalidUsers
	case isGatewayUnauthorized(err):
		return ProviderErrorUnauthorized
	case isGatewayBadRequest(err):
		return ProviderErrorBadRequest
	}
	return ProviderErrorUnknown
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
