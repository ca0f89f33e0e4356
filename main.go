package main

import (
	"github.com/sirupsen/logrus"

	"github.com/m1075397715/car-rental-management/app"
	"github.com/m1075397715/car-rental-management/routes"
)

func main() {
	application := app.MustNew()
	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := application.Config.Port
	logrus.Infof("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server: %v", err)
	}
}
