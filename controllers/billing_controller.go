package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/services"
)

type BillingController struct {
	Billing *services.BillingService
	Orders  *services.OrderService
}

func NewBillingController(billing *services.BillingService, orders *services.OrderService) *BillingController {
	return &BillingController{Billing: billing, Orders: orders}
}

// GET /billing/orders?status=ready|completed
func (bc *BillingController) Queue(c *gin.Context) {
	orders, err := bc.Billing.Queue(c.Request.Context(), c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /billing/orders/:id/invoice
func (bc *BillingController) Invoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := bc.Billing.Invoice(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, inv)
}

type SettleReq struct {
	PaymentMethod string `json:"paymentMethod"`
}

// POST /billing/orders/:id/settle
func (bc *BillingController) Settle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SettleReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := bc.Orders.Settle(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		resp.Error(c, err)
		return
	}
	inv, err := bc.Billing.Invoice(c.Request.Context(), o.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, inv)
}
