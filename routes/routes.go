package routes

import (
	"github.com/gin-gonic/gin"

	"tableorder/controllers"
	"tableorder/middlewares"
	"tableorder/pkg/resp"
	"tableorder/ws"
)

func RegisterRoutes(r *gin.Engine, d *Deps, hub *ws.Hub) {
	r.GET("/health", health(hub))

	// Controllers
	menuCtrl := controllers.NewMenuController(d.Menu)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Orders)
	kitchenCtrl := controllers.NewKitchenController(d.Orders)
	waiterCtrl := controllers.NewWaiterController(d.Tables, d.Calls)
	billingCtrl := controllers.NewBillingController(d.Billing, d.Orders)
	adminCtrl := controllers.NewAdminController(d.Reports, d.Settings, d.Tables)

	// Customer (public)
	r.POST("/session", cartCtrl.OpenSession)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/categories", menuCtrl.Categories)

	// Customer (session token)
	cust := r.Group("/", middlewares.SessionMiddleware(d.SessionSecret))
	{
		cust.GET("/cart", cartCtrl.Get)
		cust.POST("/cart/items", cartCtrl.AddItem)
		cust.PATCH("/cart/items/qty", cartCtrl.UpdateQuantity)
		cust.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		cust.DELETE("/cart", cartCtrl.Clear)
		cust.PATCH("/cart/table", cartCtrl.SetTable)
		cust.POST("/orders", orderCtrl.Place)
		cust.GET("/orders", orderCtrl.ListMine)
		cust.POST("/calls", waiterCtrl.CallWaiter)
	}

	kitchen := r.Group("/kitchen")
	{
		kitchen.GET("/orders", kitchenCtrl.Board)
		kitchen.PATCH("/orders/:id/start", kitchenCtrl.Start)
		kitchen.PATCH("/orders/:id/ready", kitchenCtrl.Ready)
	}

	waiter := r.Group("/waiter")
	{
		waiter.GET("/tables", waiterCtrl.Tables)
		waiter.PATCH("/tables/:id/status", waiterCtrl.SetTableStatus)
		waiter.GET("/calls", waiterCtrl.Calls)
		waiter.PATCH("/calls/:id/acknowledge", waiterCtrl.Acknowledge)
		waiter.PATCH("/calls/:id/resolve", waiterCtrl.Resolve)
	}

	billing := r.Group("/billing")
	{
		billing.GET("/orders", billingCtrl.Queue)
		billing.GET("/orders/:id/invoice", billingCtrl.Invoice)
		billing.POST("/orders/:id/settle", billingCtrl.Settle)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/menu", menuCtrl.AdminList)
		admin.POST("/menu", menuCtrl.Create)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)
		admin.GET("/settings", adminCtrl.GetSettings)
		admin.PUT("/settings", adminCtrl.UpdateSettings)
		admin.GET("/tables", adminCtrl.Tables)
		admin.GET("/tables/:id/qr", adminCtrl.TableQR)
	}

	// Live updates
	r.GET("/ws/:channel", hub.HandleWebSocket)
}

// health reports liveness and how many staff screens are listening.
func health(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs := gin.H{}
		for _, ch := range []string{ws.ChannelKitchen, ws.ChannelWaiter, ws.ChannelBilling, ws.ChannelAdmin} {
			subs[ch] = hub.Subscribers(ch)
		}
		resp.OK(c, gin.H{"subscribers": subs})
	}
}
