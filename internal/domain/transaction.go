// internal/domain/transaction.go
package domain

import (
	"fmt"
	"time"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusDeclined TransactionStatus = "DECLINED"
)

// ParseStatus maps a caller-supplied string onto a known transaction status.
func ParseStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusPending, StatusApproved, StatusDeclined:
		return TransactionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown transaction status: %q", s)
	}
}

// Transaction is the persisted record of a payment authorization. PENDING
// exists only in memory while the issuer decision is outstanding; the store
// only ever sees a transaction in a terminal status, written exactly once
// and never updated.
type Transaction struct {
	ID           string            `json:"id"`
	MerchantID   string            `json:"merchantId"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Status       TransactionStatus `json:"status"`
	ResponseCode string            `json:"responseCode"`
	CreatedAt    time.Time         `json:"createdAt"`
}
