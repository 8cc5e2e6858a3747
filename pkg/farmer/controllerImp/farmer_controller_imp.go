package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"beesurvey/entities"
	"beesurvey/pkg/export"
	"beesurvey/pkg/farmer/service"
)

// FarmerCtrl exposes one save endpoint per survey screen. Each endpoint
// binds only the fields its screen owns and runs that screen's
// required-field checks before anything reaches the store.
type FarmerCtrl struct{ svc service.FarmerService }

func New(svc service.FarmerService) *FarmerCtrl { return &FarmerCtrl{svc} }

type reqField struct {
	v    *string
	name string
}

func firstMissing(fields []reqField) string {
	for _, f := range fields {
		if f.v == nil || strings.TrimSpace(*f.v) == "" {
			return f.name
		}
	}
	return ""
}

func (h *FarmerCtrl) save(c echo.Context, p *entities.FarmerPatch) error {
	rec, err := h.svc.SaveStep(p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

type farmerHomeReq struct {
	FullName           *string `json:"full_name"`
	ContactNumber      *string `json:"contact_number"`
	Gender             *string `json:"gender"`
	LocationState      *string `json:"location_state"`
	LocationVillage    *string `json:"location_village"`
	LocationBlockName  *string `json:"location_block_name"`
	LocationStreetName *string `json:"location_street_name"`
	LocationPlotNumber *string `json:"location_plot_number"`
}

func (h *FarmerCtrl) SaveFarmerHome(c echo.Context) error {
	var req farmerHomeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if miss := firstMissing([]reqField{
		{req.FullName, "full name"},
		{req.ContactNumber, "contact number"},
		{req.Gender, "gender"},
		{req.LocationState, "state"},
		{req.LocationVillage, "village"},
	}); miss != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": miss + " is required"})
	}
	return h.save(c, &entities.FarmerPatch{
		FullName:           req.FullName,
		ContactNumber:      req.ContactNumber,
		Gender:             req.Gender,
		LocationState:      req.LocationState,
		LocationVillage:    req.LocationVillage,
		LocationBlockName:  req.LocationBlockName,
		LocationStreetName: req.LocationStreetName,
		LocationPlotNumber: req.LocationPlotNumber,
	})
}

type landDetailsReq struct {
	AreaValue   *string `json:"area_value"`
	UnitOfArea  *string `json:"unit_of_area"`
	LandHolding *string `json:"land_holding"`
	GeotagData  *string `json:"geotag_data"`
}

func (h *FarmerCtrl) SaveLandDetails(c echo.Context) error {
	var req landDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if miss := firstMissing([]reqField{
		{req.UnitOfArea, "unit of area"},
		{req.AreaValue, "area of plantation"},
		{req.LandHolding, "land holding"},
	}); miss != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": miss + " is required"})
	}
	return h.save(c, &entities.FarmerPatch{
		AreaValue:   req.AreaValue,
		UnitOfArea:  req.UnitOfArea,
		LandHolding: req.LandHolding,
		GeotagData:  req.GeotagData,
	})
}

type cropDetailsReq struct {
	Flower1                *string                          `json:"flower1"`
	FlowerTypes            *string                          `json:"flower_types"`
	HybridCropVariety      *string                          `json:"hybrid_crop_variety"`
	BloomingDurations      []entities.BloomingDurationInput `json:"blooming_durations"`
	CurrentAreaOfFlowering *string                          `json:"current_area_of_flowering"`
	SelectedPhotos         []string                         `json:"selected_photos"`
}

func (h *FarmerCtrl) SaveCropDetails(c echo.Context) error {
	var req cropDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if miss := firstMissing([]reqField{
		{req.Flower1, "flower"},
		{req.FlowerTypes, "flower types"},
		{req.HybridCropVariety, "hybrid crop variety"},
		{req.CurrentAreaOfFlowering, "current area of flowering"},
	}); miss != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": miss + " is required"})
	}
	// the store takes durations as given; end-after-start is checked here
	for _, d := range req.BloomingDurations {
		if d.StartedOn != nil && d.EndsOn != nil && !d.EndsOn.After(*d.StartedOn) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "blooming end date must be after start date"})
		}
	}
	return h.save(c, &entities.FarmerPatch{
		Flower1:                req.Flower1,
		FlowerTypes:            req.FlowerTypes,
		HybridCropVariety:      req.HybridCropVariety,
		BloomingDurations:      req.BloomingDurations,
		CurrentAreaOfFlowering: req.CurrentAreaOfFlowering,
		SelectedPhotos:         req.SelectedPhotos,
	})
}

type flowerDetailsReq struct {
	BeePollination *string `json:"bee_pollination"`
	UsedBees       *string `json:"used_bees"`
	BeeExperience  *string `json:"bee_experience"`
	WhatWentWrong  *string `json:"what_went_wrong"`
	WillingToPay   *string `json:"willing_to_pay"`
}

func (h *FarmerCtrl) SaveFlowerDetails(c echo.Context) error {
	var req flowerDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if miss := firstMissing([]reqField{
		{req.BeePollination, "bee pollination answer"},
		{req.UsedBees, "used bees answer"},
		{req.BeeExperience, "bee experience"},
		{req.WhatWentWrong, "what went wrong"},
		{req.WillingToPay, "willing to pay answer"},
	}); miss != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": miss + " is required"})
	}
	return h.save(c, &entities.FarmerPatch{
		BeePollination: req.BeePollination,
		UsedBees:       req.UsedBees,
		BeeExperience:  req.BeeExperience,
		WhatWentWrong:  req.WhatWentWrong,
		WillingToPay:   req.WillingToPay,
	})
}

type beekeepingDetailsReq struct {
	Fertilizers          *string  `json:"fertilizers"`
	SelectedFertilizers  []string `json:"selected_fertilizers"`
	Pesticides           *string  `json:"pesticides"`
	SelectedPesticides   []string `json:"selected_pesticides"`
	SelectedRisks        []string `json:"selected_risks"`
	SelectedBeeBoxPhotos []string `json:"selected_bee_box_photos"`
	SendConsentForm      *bool    `json:"send_consent_form"`
}

func (h *FarmerCtrl) SaveBeekeepingDetails(c echo.Context) error {
	var req beekeepingDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if miss := firstMissing([]reqField{
		{req.Fertilizers, "fertilizers answer"},
		{req.Pesticides, "pesticides answer"},
	}); miss != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": miss + " is required"})
	}
	return h.save(c, &entities.FarmerPatch{
		Fertilizers:          req.Fertilizers,
		SelectedFertilizers:  req.SelectedFertilizers,
		Pesticides:           req.Pesticides,
		SelectedPesticides:   req.SelectedPesticides,
		SelectedRisks:        req.SelectedRisks,
		SelectedBeeBoxPhotos: req.SelectedBeeBoxPhotos,
		SendConsentForm:      req.SendConsentForm,
	})
}

func (h *FarmerCtrl) Latest(c echo.Context) error {
	rec, err := h.svc.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no survey in progress"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *FarmerCtrl) List(c echo.Context) error {
	recs, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *FarmerCtrl) Delete(c echo.Context) error {
	if err := h.svc.DeleteByID(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FarmerCtrl) Export(c echo.Context) error {
	recs, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	wb, err := export.Workbook(recs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer wb.Close()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="survey.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}
