package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"tableorder/entity"
	"tableorder/pkg/resp"
	"tableorder/services"
)

type KitchenController struct {
	Orders *services.OrderService
}

func NewKitchenController(orders *services.OrderService) *KitchenController {
	return &KitchenController{Orders: orders}
}

// GET /kitchen/orders
func (kc *KitchenController) Board(c *gin.Context) {
	b, err := kc.Orders.KitchenBoard(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// PATCH /kitchen/orders/:id/start
func (kc *KitchenController) Start(c *gin.Context) {
	kc.advance(c, kc.Orders.StartPreparation)
}

// PATCH /kitchen/orders/:id/ready
func (kc *KitchenController) Ready(c *gin.Context) {
	kc.advance(c, kc.Orders.MarkReady)
}

func (kc *KitchenController) advance(c *gin.Context, step func(context.Context, uint) (*entity.Order, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := step(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}
