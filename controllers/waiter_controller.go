package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/services"
	"tableorder/utils"
)

type WaiterController struct {
	tables *services.TableService
	calls  *services.WaiterCallService
}

func NewWaiterController(tables *services.TableService, calls *services.WaiterCallService) *WaiterController {
	return &WaiterController{tables: tables, calls: calls}
}

// GET /waiter/tables?search=
func (wc *WaiterController) Tables(c *gin.Context) {
	views, err := wc.tables.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, views)
}

type SetTableStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /waiter/tables/:id/status
func (wc *WaiterController) SetTableStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetTableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := wc.tables.SetBaseStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /waiter/calls?status=
func (wc *WaiterController) Calls(c *gin.Context) {
	calls, err := wc.calls.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, calls)
}

// PATCH /waiter/calls/:id/acknowledge
func (wc *WaiterController) Acknowledge(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	call, err := wc.calls.Acknowledge(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, call)
}

// PATCH /waiter/calls/:id/resolve
func (wc *WaiterController) Resolve(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	call, err := wc.calls.Resolve(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, call)
}

type CallWaiterReq struct {
	Reason string `json:"reason"`
}

// POST /calls
func (wc *WaiterController) CallWaiter(c *gin.Context) {
	var req CallWaiterReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}
	call, err := wc.calls.Create(c.Request.Context(), utils.CurrentSessionID(c), req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, call)
}
