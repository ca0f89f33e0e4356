package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/m1075397715/car-rental-management/app"
	"github.com/m1075397715/car-rental-management/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.MustSrv(a.Store, a.Tr, a.Config.DBFile)
	vehicleCtl := controllers.NewVehicleController(s)
	customerCtl := controllers.NewCustomerController(s)
	orderCtl := controllers.NewOrderController(s)
	fineCtl := controllers.NewFineController(s)
	sysCtl := controllers.NewSystemController(s)

	// ------------------------------
	// 车辆管理
	// ------------------------------
	vehicles := r.Group("/api/vehicles")
	{
		vehicles.GET("", vehicleCtl.List)
		vehicles.POST("/search", vehicleCtl.Search)
		vehicles.POST("/sort", vehicleCtl.Sort)
		vehicles.POST("/page", vehicleCtl.PageNav)
		vehicles.POST("", vehicleCtl.Create)
		vehicles.PUT("/:id", vehicleCtl.Update)
		vehicles.DELETE("/:id", vehicleCtl.Delete)
		vehicles.GET("/export", vehicleCtl.ExportCSV)
	}

	// ------------------------------
	// 客户管理
	// ------------------------------
	customers := r.Group("/api/customers")
	{
		customers.GET("", customerCtl.List)
		customers.POST("/search", customerCtl.Search)
		customers.POST("/sort", customerCtl.Sort)
		customers.POST("/page", customerCtl.PageNav)
		customers.POST("", customerCtl.Create)
		customers.PUT("/:id", customerCtl.Update)
		customers.DELETE("/:id", customerCtl.Delete)
		customers.GET("/:id/orders", customerCtl.History)
		customers.GET("/export", customerCtl.ExportCSV)
	}

	// ------------------------------
	// 订单管理（含续租）
	// ------------------------------
	orders := r.Group("/api/orders")
	{
		orders.GET("", orderCtl.List)
		orders.POST("/search", orderCtl.Search)
		orders.POST("/sort", orderCtl.Sort)
		orders.POST("/page", orderCtl.PageNav)
		orders.POST("", orderCtl.Create)
		orders.PUT("/:id", orderCtl.Update)
		orders.DELETE("/:id", orderCtl.Delete)
		orders.POST("/:id/renew", orderCtl.Renew)
		orders.GET("/export", orderCtl.ExportCSV)
	}

	// ------------------------------
	// 罚款记录
	// ------------------------------
	fines := r.Group("/api/fines")
	{
		fines.GET("", fineCtl.List)
		fines.POST("/search", fineCtl.Search)
		fines.POST("/sort", fineCtl.Sort)
		fines.POST("/page", fineCtl.PageNav)
		fines.POST("", fineCtl.Create)
		fines.PUT("/:id", fineCtl.Update)
		fines.DELETE("/:id", fineCtl.Delete)
		fines.GET("/export", fineCtl.ExportCSV)
	}

	// ------------------------------
	// 全局：时钟 / 语言 / 备份
	// ------------------------------
	r.GET("/api/clock", sysCtl.Clock)
	r.POST("/api/lang", sysCtl.SwitchLang)
	r.GET("/api/backup", sysCtl.Backup)
}
