package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrMasterNotFound    = errors.New("master option not found")
	ErrSubMasterNotFound = errors.New("sub master option not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrDuplicateEntry    = errors.New("duplicate entry")

	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrQuantityTooHigh    = errors.New("quantity exceeds per-item limit")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrReturnNotAllowed   = errors.New("order cannot be returned at this stage")
	ErrNotOrderOwner      = errors.New("order belongs to another account")
	ErrPaymentVerifyFail  = errors.New("payment signature verification failed")
	ErrPaymentUnavailable = errors.New("payment service unavailable")

	ErrTransactionNotFound = errors.New("transaction not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
