package controllers

import (
	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/services"
	"tableorder/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// POST /session?table=T1
func (cc *CartController) OpenSession(c *gin.Context) {
	out, err := cc.Carts.OpenSession(c.Request.Context(), c.Query("table"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	v, err := cc.Carts.Get(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}

type AddItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := cc.Carts.Add(c.Request.Context(), utils.CurrentSessionID(c), req.MenuItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}

type UpdateQtyReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   *int `json:"quantity" binding:"required,max=999"`
}

// PATCH /cart/items/qty
// A quantity of zero or less removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req UpdateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := cc.Carts.UpdateQuantity(c.Request.Context(), utils.CurrentSessionID(c), req.MenuItemID, *req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := cc.Carts.Remove(c.Request.Context(), utils.CurrentSessionID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	v, err := cc.Carts.Clear(c.Request.Context(), utils.CurrentSessionID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}

type SetTableReq struct {
	TableNumber string `json:"tableNumber" binding:"required"`
}

// PATCH /cart/table
func (cc *CartController) SetTable(c *gin.Context) {
	var req SetTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := cc.Carts.SetTable(c.Request.Context(), utils.CurrentSessionID(c), req.TableNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, v)
}
