package router

import (
	"github.com/labstack/echo/v4"

	"beesurvey/pkg/farmer/controller"
)

func New(
	e *echo.Echo,
	farmerCtrl controller.FarmerController,
	locCtrl interface {
		States(echo.Context) error
		Villages(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// one save endpoint per survey screen
	s := e.Group("/survey")
	s.POST("/farmer-home", farmerCtrl.SaveFarmerHome)
	s.POST("/land-details", farmerCtrl.SaveLandDetails)
	s.POST("/crop-details", farmerCtrl.SaveCropDetails)
	s.POST("/flower-details", farmerCtrl.SaveFlowerDetails)
	s.POST("/beekeeping-details", farmerCtrl.SaveBeekeepingDetails)

	s.GET("/latest", farmerCtrl.Latest)
	s.GET("", farmerCtrl.List)
	s.DELETE("/:id", farmerCtrl.Delete)
	s.GET("/export.xlsx", farmerCtrl.Export)

	e.GET("/locations/states", locCtrl.States)
	e.GET("/locations/villages", locCtrl.Villages)

	return e
}
