package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"beesurvey/pkg/location"
)

type LocationCtrl struct{ dir *location.Directory }

func New(dir *location.Directory) *LocationCtrl { return &LocationCtrl{dir} }

func (h *LocationCtrl) States(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dir.States())
}

func (h *LocationCtrl) Villages(c echo.Context) error {
	state := c.QueryParam("state")
	if state == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "state is required"})
	}
	return c.JSON(http.StatusOK, h.dir.Villages(state))
}
