// internal/issuer/mock.go
package issuer

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"issuing-service/internal/domain"
)

// DefaultMaxAmount is the per-transaction limit applied when the config
// does not set one.
const DefaultMaxAmount = 1_000_000

const (
	minTokenLength    = 10
	blockedCardSuffix = "999"
	invalidCardMark   = "0000"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// MockClient is a rule-based stand-in for the card network. Structural
// problems with the input fail loudly as validation errors; blocked or
// invalid cards and limit breaches are ordinary business declines, since
// the caller still has to record a terminal transaction for them.
type MockClient struct {
	maxAmount float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockClient builds a mock issuer. A nil rnd gets a time-seeded
// generator; tests pass a fixed seed. The generator is shared across
// in-flight authorizations and guarded by a mutex.
func NewMockClient(maxAmount float64, rnd *rand.Rand) *MockClient {
	if maxAmount <= 0 {
		maxAmount = DefaultMaxAmount
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockClient{maxAmount: maxAmount, rnd: rnd}
}

// Authorize applies the issuer rules in order, first failing rule wins.
func (c *MockClient) Authorize(_ context.Context, cardToken string, amount float64, _ string) (Decision, error) {
	if strings.TrimSpace(cardToken) == "" {
		return Decision{}, domain.NewValidationError("card token cannot be empty")
	}
	if len(cardToken) < minTokenLength {
		return Decision{}, domain.NewValidationError(
			fmt.Sprintf("card token must be at least %d characters long", minTokenLength))
	}
	if !tokenPattern.MatchString(cardToken) {
		return Decision{}, domain.NewValidationError("card token can only contain letters, numbers, and underscores")
	}
	if strings.HasSuffix(cardToken, blockedCardSuffix) {
		return Decision{Approved: false, ResponseCode: CodeCardBlocked}, nil
	}
	if strings.Contains(cardToken, invalidCardMark) {
		return Decision{Approved: false, ResponseCode: CodeInvalidCard}, nil
	}
	if amount <= 0 {
		return Decision{}, domain.NewValidationError("transaction amount must be greater than zero")
	}
	if amount > c.maxAmount {
		return Decision{Approved: false, ResponseCode: CodeLimitExceeded}, nil
	}

	// 50/50 stand-in for the real network decision.
	c.mu.Lock()
	approved := c.rnd.Intn(2) == 0
	c.mu.Unlock()

	if approved {
		return Decision{Approved: true, ResponseCode: CodeApproved}, nil
	}
	return Decision{Approved: false, ResponseCode: CodeDeclined}, nil
}
