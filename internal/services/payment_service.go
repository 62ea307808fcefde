package services

import (
	"context"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/internal/models/response_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/gateway"
	"refurbmart/pkg/utils"
)

type PaymentServiceInterface interface {
	// VerifyPayment checks the gateway signature for a client-completed
	// checkout. On a valid signature the order and its latest transaction
	// are settled together; on a forged or mismatched signature nothing is
	// mutated.
	VerifyPayment(ctx context.Context, callerID string, req request_models.VerifyPaymentRequest) (*response_models.OrderSummary, error)
}

type PaymentService struct {
	orderRepo repositories.OrderRepositoryInterface
	gw        gateway.Gateway
}

func NewPaymentService(orderRepo repositories.OrderRepositoryInterface, gw gateway.Gateway) PaymentServiceInterface {
	return &PaymentService{
		orderRepo: orderRepo,
		gw:        gw,
	}
}

func (s *PaymentService) VerifyPayment(ctx context.Context, callerID string, req request_models.VerifyPaymentRequest) (*response_models.OrderSummary, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	if order.UserID.String() != callerID {
		return nil, utils.ErrNotOrderOwner
	}

	// The callback must reference this order's own payment intent; a valid
	// signature from another order's checkout settles nothing here.
	if order.PaymentMethod != db_models.PaymentMethodOnline ||
		order.GatewayOrderID == "" ||
		req.GatewayOrderID != order.GatewayOrderID {
		return nil, utils.ErrPaymentVerifyFail
	}

	if !s.gw.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		return nil, utils.ErrPaymentVerifyFail
	}

	// Already settled: a retried callback for a paid order is acknowledged
	// without touching the ledger again.
	if order.PaymentStatus == db_models.PaymentStatusPaid {
		summary := toOrderSummary(order)
		return &summary, nil
	}

	if err := s.orderRepo.MarkPaid(ctx, order, req.GatewayPaymentID, req.Signature); err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := toOrderSummary(order)
	return &summary, nil
}
