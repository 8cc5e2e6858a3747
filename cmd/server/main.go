package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"beesurvey/config"
	"beesurvey/database"
	"beesurvey/router"

	// Farmer survey
	farmerCtrlImp "beesurvey/pkg/farmer/controllerImp"
	farmerRepoImp "beesurvey/pkg/farmer/repositoryImp"
	farmerSvcImp "beesurvey/pkg/farmer/serviceImp"

	// Location directory
	"beesurvey/pkg/location"
	locCtrlImp "beesurvey/pkg/location/controllerImp"

	// Health
	healthCtrlImp "beesurvey/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate; the handle lives for the whole process
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// 3) Farmer survey store wiring
	farmerRepo := farmerRepoImp.New(db)
	farmerSvc := farmerSvcImp.NewFarmerService(farmerRepo)
	farmerCtrl := farmerCtrlImp.New(farmerSvc)

	// 4) Location directory; refresh is best-effort, the seed works offline
	dir := location.NewDirectory()
	if cfg.LocationDirURL != "" {
		if err := dir.Refresh(cfg.LocationDirURL); err != nil {
			log.Printf("[loc] gazetteer refresh failed, keeping built-in lists: %v", err)
		}
	}
	locCtrl := locCtrlImp.New(dir)

	// 5) Health
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	router.New(e, farmerCtrl, locCtrl, healthCtrl)

	log.Printf("[srv] listening on :%s (db=%s)", cfg.Port, cfg.DBPath)
	log.Fatal(e.Start(":" + cfg.Port))
}
