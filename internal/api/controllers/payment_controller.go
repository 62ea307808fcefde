package controllers

import (
	"net/http"

	"refurbmart/internal/models/request_models"
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// VerifyPayment godoc
// @Summary Verify a completed gateway payment
// @Description Checks the gateway checksum for the order/payment pair; a valid signature settles the order
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Gateway callback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := p.paymentService.VerifyPayment(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Payment verified")
}
