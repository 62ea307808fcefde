package repositories

import (
	"context"

	"refurbmart/internal/models/db_models"

	"gorm.io/gorm"
)

type TransactionRepositoryInterface interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	ListByOrder(ctx context.Context, orderID string) ([]db_models.Transaction, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Transaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

type transactionRepository struct {
	db *gorm.DB
}

func (r *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) ListByOrder(ctx context.Context, orderID string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
