package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"beesurvey/entities"
)

const sheet = "Survey"

var headers = []string{
	"ID", "Created At", "Updated At",
	"Full Name", "Contact Number", "Gender",
	"State", "Village", "Block", "Street", "Plot",
	"Area", "Unit", "Land Holding", "Geotag",
	"Flower", "Flower Types", "Hybrid Variety", "Blooming Durations",
	"Current Area Of Flowering", "Photos",
	"Bee Pollination", "Used Bees", "Bee Experience", "What Went Wrong", "Willing To Pay",
	"Fertilizers", "Selected Fertilizers", "Pesticides", "Selected Pesticides",
	"Risks", "Bee Box Photos", "Consent Form",
}

// Workbook renders accumulated survey records as a spreadsheet, one row per
// record, newest first as given.
func Workbook(records []entities.FarmerRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		values := []any{
			rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.UpdatedAt.Format("2006-01-02 15:04:05"),
			str(rec.FullName), str(rec.ContactNumber), str(rec.Gender),
			str(rec.LocationState), str(rec.LocationVillage), str(rec.LocationBlockName),
			str(rec.LocationStreetName), str(rec.LocationPlotNumber),
			str(rec.AreaValue), str(rec.UnitOfArea), str(rec.LandHolding), str(rec.GeotagData),
			str(rec.Flower1), str(rec.FlowerTypes), str(rec.HybridCropVariety),
			durations(rec.BloomingDurations),
			str(rec.CurrentAreaOfFlowering), strings.Join(rec.SelectedPhotos, ", "),
			str(rec.BeePollination), str(rec.UsedBees), str(rec.BeeExperience),
			str(rec.WhatWentWrong), str(rec.WillingToPay),
			str(rec.Fertilizers), strings.Join(rec.SelectedFertilizers, ", "),
			str(rec.Pesticides), strings.Join(rec.SelectedPesticides, ", "),
			strings.Join(rec.SelectedRisks, ", "), strings.Join(rec.SelectedBeeBoxPhotos, ", "),
			rec.SendConsentForm,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func durations(ds []entities.BloomingDuration) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		from, to := "?", "?"
		if d.StartedOn != nil {
			from = d.StartedOn.Format("2006-01-02")
		}
		if d.EndsOn != nil {
			to = d.EndsOn.Format("2006-01-02")
		}
		parts = append(parts, from+".."+to)
	}
	return strings.Join(parts, "; ")
}
