// internal/issuer/issuer.go
package issuer

import "context"

// Issuer response codes. "00"/"05" follow the conventional approval and
// generic-decline codes; the named codes are issuer-specific decline
// reasons that still produce a recorded transaction.
const (
	CodeApproved      = "00"
	CodeDeclined      = "05"
	CodeCardBlocked   = "CARD_BLOCKED"
	CodeInvalidCard   = "INVALID_CARD"
	CodeLimitExceeded = "LIMIT_EXCEEDED"
)

// Decision is the issuer's answer to a single authorization attempt. It is
// transient: the workflow consumes it once and never persists it.
type Decision struct {
	Approved     bool   `json:"approved"`
	ResponseCode string `json:"responseCode"`
}

// Client authorizes the use of a card for a given amount and currency.
// Implementations must be safe for concurrent use; the workflow treats the
// call as synchronous and never retries it. The currency is accepted but
// not interpreted yet, it is kept for issuer-specific routing later.
type Client interface {
	Authorize(ctx context.Context, cardToken string, amount float64, currency string) (Decision, error)
}
