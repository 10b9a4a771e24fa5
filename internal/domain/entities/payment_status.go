package entities

import "strings"

// PaymentStatus is the canonical payment status. Every other status vocabulary
// (provider responses, admin manual configuration, legacy names) is folded into
// one of these four values by NormalizeStatus.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusAnalysis  PaymentStatus = "ANALYSIS"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusRejected  PaymentStatus = "REJECTED"
)

// statusAliases maps upper-cased raw values to their canonical status.
//
// DENIED is part of the admin manual-status vocabulary and IN_PROCESS is the
// Mercado Pago "under review" status; both are folded here so there is a single
// normalization table.
var statusAliases = map[string]PaymentStatus{
	"APPROVED":  PaymentStatusConfirmed,
	"CONFIRMED": PaymentStatusConfirmed,
	"PAID":      PaymentStatusConfirmed,
	"RECEIVED":  PaymentStatusConfirmed,
	"COMPLETED": PaymentStatusConfirmed,

	"REJECTED":  PaymentStatusRejected,
	"DECLINED":  PaymentStatusRejected,
	"DENIED":    PaymentStatusRejected,
	"FAILED":    PaymentStatusRejected,
	"CANCELED":  PaymentStatusRejected,
	"CANCELLED": PaymentStatusRejected,

	"ANALYSIS":       PaymentStatusAnalysis,
	"REVIEW":         PaymentStatusAnalysis,
	"ANALYZING":      PaymentStatusAnalysis,
	"IN_ANALYSIS":    PaymentStatusAnalysis,
	"UNDER_ANALYSIS": PaymentStatusAnalysis,
	"IN_PROCESS":     PaymentStatusAnalysis,

	"PENDING":          PaymentStatusPending,
	"AWAITING":         PaymentStatusPending,
	"AWAITING_PAYMENT": PaymentStatusPending,
	"WAITING":          PaymentStatusPending,
}

// NormalizeStatus maps a raw status string to its canonical value. The second
// return value is false when the input is empty or not part of any known
// vocabulary, in which case PENDING is returned.
func NormalizeStatus(raw string) (PaymentStatus, bool) {
	key := normalizeStatusKey(raw)
	if key == "" {
		return PaymentStatusPending, false
	}
	s, ok := statusAliases[key]
	if !ok {
		return PaymentStatusPending, false
	}
	return s, true
}

// ParsePaymentStatus accepts only the canonical vocabulary (case-insensitive).
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	s := PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAnalysis, PaymentStatusConfirmed, PaymentStatusRejected:
		return true
	}
	return false
}

func (s PaymentStatus) IsRejected() bool {
	return s == PaymentStatusRejected
}

// IsRejectedStatus is true iff status is REJECTED.
func IsRejectedStatus(status PaymentStatus) bool {
	return status.IsRejected()
}

func normalizeStatusKey(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	return key
}
