package services

import (
	"context"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/response_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/utils"
)

type TransactionServiceInterface interface {
	ListByOrder(ctx context.Context, orderID string) ([]response_models.TransactionResponse, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]response_models.TransactionResponse, error)
}

type TransactionService struct {
	txnRepo   repositories.TransactionRepositoryInterface
	orderRepo repositories.OrderRepositoryInterface
}

func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
) TransactionServiceInterface {
	return &TransactionService{
		txnRepo:   txnRepo,
		orderRepo: orderRepo,
	}
}

func (s *TransactionService) ListByOrder(ctx context.Context, orderID string) ([]response_models.TransactionResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	txns, err := s.txnRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toTransactionResponses(txns), nil
}

func (s *TransactionService) ListAll(ctx context.Context, page int, pageSize int) ([]response_models.TransactionResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toTransactionResponses(txns), nil
}

func toTransactionResponses(txns []db_models.Transaction) []response_models.TransactionResponse {
	responses := make([]response_models.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, response_models.TransactionResponse{
			ID:             txn.ID,
			OrderID:        txn.OrderID,
			Amount:         txn.AmountMinor,
			Currency:       txn.Currency,
			PaymentMethod:  string(txn.PaymentMethod),
			Status:         string(txn.Status),
			Gateway:        txn.Gateway,
			GatewayOrderID: txn.GatewayOrderID,
			GatewayTxnID:   txn.GatewayTxnID,
			PaidAt:         txn.PaidAt,
			CreatedAt:      txn.CreatedAt,
		})
	}
	return responses
}
