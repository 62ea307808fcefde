package controllers

import (
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// ListTransactions godoc
// @Summary List payment transactions (staff only)
// @Description With order_id set, returns that order's attempts newest first; otherwise pages through all transactions
// @Tags Transactions
// @Produce json
// @Param order_id query string false "Order ID filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/transactions [get]
func (t *TransactionController) ListTransactions(c *gin.Context) {
	orderID := c.Query("order_id")

	if orderID != "" {
		txns, err := t.transactionService.ListByOrder(c.Request.Context(), orderID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, txns, "Transactions fetched successfully")
		return
	}

	page, pageSize := paging(c)
	txns, err := t.transactionService.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}
