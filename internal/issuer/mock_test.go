package issuer

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"issuing-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(seed int64) *MockClient {
	return NewMockClient(0, rand.New(rand.NewSource(seed)))
}

func TestMockClientValidation(t *testing.T) {
	tests := map[string]struct {
		token   string
		amount  float64
		wantErr string
	}{
		"empty token": {
			token:   "",
			amount:  100,
			wantErr: "card token cannot be empty",
		},
		"blank token": {
			token:   "   ",
			amount:  100,
			wantErr: "card token cannot be empty",
		},
		"short token": {
			token:   "tok_12",
			amount:  100,
			wantErr: "card token must be at least 10 characters long",
		},
		"invalid characters": {
			token:   "tok-abc123xyz",
			amount:  100,
			wantErr: "card token can only contain letters, numbers, and underscores",
		},
		"non positive amount": {
			token:   "tok_abc123xyz",
			amount:  0,
			wantErr: "transaction amount must be greater than zero",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(1)
			_, err := c.Authorize(context.Background(), tc.token, tc.amount, "CLP")
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())

			var ve *domain.ValidationError
			assert.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
		})
	}
}

func TestMockClientShapeChecksWinOverBusinessOutcomes(t *testing.T) {
	// A token that is both too short and ends in 999: the shape failure
	// must fire before the blocked-card outcome.
	c := newTestClient(1)
	_, err := c.Authorize(context.Background(), "tok999", 100, "CLP")
	require.Error(t, err)
	assert.Equal(t, "card token must be at least 10 characters long", err.Error())
}

func TestMockClientDeterministicOutcomes(t *testing.T) {
	tests := map[string]struct {
		token    string
		amount   float64
		wantCode string
	}{
		"blocked card": {
			token:    "AAAA999AAA999",
			amount:   100,
			wantCode: CodeCardBlocked,
		},
		"blocked card suffix only": {
			token:    "AAAAAAA999",
			amount:   100,
			wantCode: CodeCardBlocked,
		},
		"invalid card": {
			token:    "tok_0000abcd",
			amount:   100,
			wantCode: CodeInvalidCard,
		},
		"limit exceeded": {
			token:    "tok_abc123xyz",
			amount:   1_000_001,
			wantCode: CodeLimitExceeded,
		},
	}

	// The outcome must not depend on the randomness seed.
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				c := newTestClient(seed)
				decision, err := c.Authorize(context.Background(), tc.token, tc.amount, "CLP")
				require.NoError(t, err)
				assert.False(t, decision.Approved)
				assert.Equal(t, tc.wantCode, decision.ResponseCode)
			}
		})
	}
}

func TestMockClientBlockedBeatsInvalid(t *testing.T) {
	// Token both contains 0000 and ends in 999: the blocked-card rule
	// runs first.
	c := newTestClient(1)
	decision, err := c.Authorize(context.Background(), "tok_0000_999", 100, "CLP")
	require.NoError(t, err)
	assert.Equal(t, CodeCardBlocked, decision.ResponseCode)
}

func TestMockClientBlockedRuleIsSuffixOnly(t *testing.T) {
	// 999 in the middle of the token does not trip the blocked-card
	// rule; only a 999 suffix does.
	for seed := int64(0); seed < 20; seed++ {
		c := newTestClient(seed)
		decision, err := c.Authorize(context.Background(), "AAAA999AAA", 100, "CLP")
		require.NoError(t, err)
		assert.Contains(t, []string{CodeApproved, CodeDeclined}, decision.ResponseCode)
	}
}

func TestMockClientRandomDecision(t *testing.T) {
	c := newTestClient(42)

	approvals, declines := 0, 0
	for i := 0; i < 200; i++ {
		decision, err := c.Authorize(context.Background(), "tok_abc123xyz", 100, "CLP")
		require.NoError(t, err)
		if decision.Approved {
			assert.Equal(t, CodeApproved, decision.ResponseCode)
			approvals++
		} else {
			assert.Equal(t, CodeDeclined, decision.ResponseCode)
			declines++
		}
	}

	// With 200 draws both outcomes occur for any reasonable seed.
	assert.Positive(t, approvals)
	assert.Positive(t, declines)
}

func TestMockClientConcurrentAuthorize(t *testing.T) {
	c := newTestClient(7)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := c.Authorize(context.Background(), "tok_abc123xyz", 100, "CLP")
			assert.NoError(t, err)
			assert.Contains(t, []string{CodeApproved, CodeDeclined}, decision.ResponseCode)
		}()
	}
	wg.Wait()
}

func TestMockClientMaxAmountConfigurable(t *testing.T) {
	c := NewMockClient(500, rand.New(rand.NewSource(1)))

	decision, err := c.Authorize(context.Background(), "tok_abc123xyz", 501, "CLP")
	require.NoError(t, err)
	assert.Equal(t, CodeLimitExceeded, decision.ResponseCode)
}
