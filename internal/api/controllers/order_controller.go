package controllers

import (
	"net/http"
	"strconv"

	"refurbmart/internal/models/request_models"
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary Create an order from a cart
// @Description Place an order; online payment methods additionally return the gateway checkout parameters
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (o *OrderController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	resp, err := o.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order placed successfully")
}

// ListMyOrders godoc
// @Summary List the caller's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [get]
func (o *OrderController) ListMyOrders(c *gin.Context) {
	page, pageSize := paging(c)
	orders, err := o.orderService.ListOrdersForUser(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// GetOrder godoc
// @Summary Get one order
// @Description Customers see their own orders, staff any order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (o *OrderController) GetOrder(c *gin.Context) {
	order, err := o.orderService.GetOrder(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order fetched successfully")
}

// UpdateStatus godoc
// @Summary Transition an order's status (staff only)
// @Description Moves the order along the lifecycle; delivering a cash-on-delivery order marks it paid
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id}/status [put]
func (o *OrderController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := o.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order status updated")
}

// RequestReturn godoc
// @Summary Request a return on a dispatched or delivered order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id}/return [post]
func (o *OrderController) RequestReturn(c *gin.Context) {
	resp, err := o.orderService.RequestReturn(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Message)
}

// ListAllOrders godoc
// @Summary List every order (staff only)
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/orders [get]
func (o *OrderController) ListAllOrders(c *gin.Context) {
	page, pageSize := paging(c)
	orders, err := o.orderService.ListAllOrders(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

func paging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}
