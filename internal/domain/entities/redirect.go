package entities

// RedirectTarget is the logical destination the storefront navigates to after a
// settlement attempt.
type RedirectTarget string

const (
	RedirectSuccess RedirectTarget = "success"
	RedirectFailure RedirectTarget = "failure"
)

// RedirectFor is the single mapping from canonical status to navigation target.
// PENDING and ANALYSIS are provisional successes: the success page shows a
// "processing / under review" message for them.
func RedirectFor(status PaymentStatus) RedirectTarget {
	if status.IsRejected() {
		return RedirectFailure
	}
	return RedirectSuccess
}

func (t RedirectTarget) Path() string {
	if t == RedirectFailure {
		return "/payment-failed"
	}
	return "/payment-success"
}
