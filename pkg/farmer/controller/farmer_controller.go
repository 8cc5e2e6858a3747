package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	SaveFarmerHome(c echo.Context) error
	SaveLandDetails(c echo.Context) error
	SaveCropDetails(c echo.Context) error
	SaveFlowerDetails(c echo.Context) error
	SaveBeekeepingDetails(c echo.Context) error
	Latest(c echo.Context) error
	List(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
}
