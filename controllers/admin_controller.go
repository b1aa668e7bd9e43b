package controllers

import (
	"github.com/gin-gonic/gin"

	"tableorder/entity"
	"tableorder/pkg/resp"
	"tableorder/services"
)

type AdminController struct {
	Reports  *services.ReportService
	Settings *services.SettingsService
	tables   *services.TableService
}

func NewAdminController(reports *services.ReportService, settings *services.SettingsService, tables *services.TableService) *AdminController {
	return &AdminController{Reports: reports, Settings: settings, tables: tables}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	d, err := ac.Reports.Dashboard(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /admin/settings
func (ac *AdminController) GetSettings(c *gin.Context) {
	resp.OK(c, ac.Settings.Get())
}

// PUT /admin/settings
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var req entity.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := ac.Settings.Update(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, s)
}

// GET /admin/tables
func (ac *AdminController) Tables(c *gin.Context) {
	views, err := ac.tables.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, views)
}

// GET /admin/tables/:id/qr
func (ac *AdminController) TableQR(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	link, err := ac.tables.EntryLink(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, link)
}
