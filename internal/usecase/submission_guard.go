package usecase

import (
	"strings"
	"sync"
)

// SubmissionGuard remembers payment ids claimed for settlement during the life
// of the process, so a repeated or concurrent submission of the same attempt
// is neither charged nor recorded twice.
//
// It is best-effort and local to one process: it is not a distributed lock and
// it forgets everything on restart.
type SubmissionGuard struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{claimed: make(map[string]struct{})}
}

// Seen reports whether paymentID was already claimed.
func (g *SubmissionGuard) Seen(paymentID string) bool {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.claimed[paymentID]
	return ok
}

// Claim marks paymentID as taken. It returns false when the id was already
// claimed. Empty ids are never claimed.
func (g *SubmissionGuard) Claim(paymentID string) bool {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.claimed[paymentID]; ok {
		return false
	}
	g.claimed[paymentID] = struct{}{}
	return true
}

// Release forgets paymentID so an explicit retry can go through.
func (g *SubmissionGuard) Release(paymentID string) {
	paymentID = strings.TrimSpace(paymentID)
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.claimed, paymentID)
}
