package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/services"
	"tableorder/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type PlaceOrderReq struct {
	// menu item id -> kitchen note
	Notes map[string]string `json:"notes"`
}

// POST /orders
// The body is optional; without it the cart is ordered as is.
func (oc *OrderController) Place(c *gin.Context) {
	var req PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}
	in := &services.PlaceOrderIn{Notes: map[uint]string{}}
	for k, note := range req.Notes {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			resp.BadRequest(c, "notes must be keyed by menu item id")
			return
		}
		in.Notes[uint(id)] = note
	}

	o, err := oc.Orders.PlaceFromCart(c.Request.Context(), utils.CurrentSessionID(c), in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, err := oc.Orders.ListForSession(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
