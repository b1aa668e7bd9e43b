package controllers

import (
	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/services"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu?category=&search=
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.ListForCustomer(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	cats, err := mc.Menu.Categories(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /admin/menu
func (mc *MenuController) AdminList(c *gin.Context) {
	items, err := mc.Menu.ListAll(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menu.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := mc.Menu.Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// PATCH /admin/menu/:id/availability
func (mc *MenuController) ToggleAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := mc.Menu.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}
