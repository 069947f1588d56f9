// internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"errors"
	"time"

	"issuing-service/internal/domain"
	"issuing-service/internal/issuer"
	"issuing-service/internal/logging"
	"issuing-service/internal/repository"
	"issuing-service/pkg/id"

	"go.uber.org/zap"
)

// PaymentUsecase owns the authorization state machine: one issuer call,
// one terminal status, at most one store write per request. It is
// stateless and safe for concurrent use.
type PaymentUsecase struct {
	repo   repository.TransactionRepository
	issuer issuer.Client
	logger *zap.Logger
}

func NewPaymentUsecase(
	repo repository.TransactionRepository,
	issuerClient issuer.Client,
	logger *zap.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		repo:   repo,
		issuer: issuerClient,
		logger: logger,
	}
}

// Process authorizes a payment and persists the terminal transaction. Any
// failure, whether issuer-side or store-side, surfaces as a BusinessError
// carrying the cause's message, and leaves no record behind: a transaction
// either exists in a terminal status or does not exist at all.
func (uc *PaymentUsecase) Process(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error) {
	log := logging.FromContext(ctx, uc.logger)

	log.Info("processing payment",
		zap.String("merchant_id", req.MerchantID),
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency))

	tx := &domain.Transaction{
		ID:         id.NewTransactionID(),
		MerchantID: req.MerchantID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	decision, err := uc.issuer.Authorize(ctx, req.CardToken, req.Amount, req.Currency)
	if err != nil {
		log.Error("issuer authorization failed",
			zap.String("merchant_id", req.MerchantID),
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		return nil, domain.NewBusinessError("Failed to process payment: " + err.Error())
	}

	log.Info("issuer decision received",
		zap.Bool("approved", decision.Approved),
		zap.String("response_code", decision.ResponseCode))

	if decision.Approved {
		tx.Status = domain.StatusApproved
	} else {
		tx.Status = domain.StatusDeclined
		log.Warn("payment declined",
			zap.String("response_code", decision.ResponseCode))
	}
	tx.ResponseCode = decision.ResponseCode

	if err := uc.repo.Create(ctx, tx); err != nil {
		log.Error("failed to persist transaction",
			zap.String("transaction_id", tx.ID),
			zap.Error(err))
		return nil, domain.NewBusinessError("Failed to process payment: " + err.Error())
	}

	log.Info("transaction saved",
		zap.String("transaction_id", tx.ID),
		zap.String("status", string(tx.Status)))

	return tx, nil
}

// GetByID looks up a transaction. A store miss is reported through the
// business channel with the literal legacy message, so the HTTP surface
// keeps answering 400 BUSINESS_ERROR for unknown ids.
func (uc *PaymentUsecase) GetByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	log := logging.FromContext(ctx, uc.logger)

	tx, err := uc.repo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("transaction not found",
				zap.String("transaction_id", transactionID))
			return nil, domain.NewBusinessError("Transaction not found")
		}
		log.Error("failed to load transaction",
			zap.String("transaction_id", transactionID),
			zap.Error(err))
		return nil, err
	}

	log.Info("transaction retrieved",
		zap.String("transaction_id", transactionID),
		zap.String("status", string(tx.Status)))

	return tx, nil
}

// List returns transactions matching the filter, newest first.
func (uc *PaymentUsecase) List(ctx context.Context, filter repository.ListFilter) ([]domain.Transaction, error) {
	return uc.repo.List(ctx, filter)
}
