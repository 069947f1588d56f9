// internal/domain/payment.go
package domain

import "time"

// PaymentRequest is the inbound authorization request from a merchant.
type PaymentRequest struct {
	MerchantID     string  `json:"merchantId"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	CardToken      string  `json:"cardToken"`
	ExpirationDate string  `json:"expirationDate"`
}

// Validate enforces the request shape before the workflow runs. The
// expiration date is only required to be present; its MM/YY format is not
// checked here.
func (r *PaymentRequest) Validate() error {
	if r.MerchantID == "" {
		return NewValidationError("merchantId is required")
	}
	if r.Amount <= 0 {
		return NewValidationError("amount must be greater than zero")
	}
	if r.Currency == "" {
		return NewValidationError("currency is required")
	}
	if r.CardToken == "" {
		return NewValidationError("cardToken is required")
	}
	if r.ExpirationDate == "" {
		return NewValidationError("expirationDate is required")
	}
	return nil
}

// PaymentResponse is the success payload for both processing and lookup.
type PaymentResponse struct {
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
	ResponseCode  string            `json:"responseCode"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// NewPaymentResponse shapes a transaction into its external representation.
func NewPaymentResponse(tx *Transaction) PaymentResponse {
	return PaymentResponse{
		TransactionID: tx.ID,
		Status:        tx.Status,
		ResponseCode:  tx.ResponseCode,
		CreatedAt:     tx.CreatedAt,
	}
}

// ErrorResponse is the stable error payload for every failed request.
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}
