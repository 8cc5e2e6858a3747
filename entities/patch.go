package entities

import "time"

// FarmerPatch is the partial field set one screen submits. Nil means "not
// touched"; list fields distinguish nil (keep stored contents) from an empty
// slice (clear them). A patch that includes a list field replaces that
// field's whole contents in submission order.
type FarmerPatch struct {
	FullName           *string `json:"full_name"`
	ContactNumber      *string `json:"contact_number"`
	Gender             *string `json:"gender"`
	LocationState      *string `json:"location_state"`
	LocationVillage    *string `json:"location_village"`
	LocationBlockName  *string `json:"location_block_name"`
	LocationStreetName *string `json:"location_street_name"`
	LocationPlotNumber *string `json:"location_plot_number"`

	AreaValue   *string `json:"area_value"`
	UnitOfArea  *string `json:"unit_of_area"`
	LandHolding *string `json:"land_holding"`
	GeotagData  *string `json:"geotag_data"`

	Flower1                *string                 `json:"flower1"`
	FlowerTypes            *string                 `json:"flower_types"`
	HybridCropVariety      *string                 `json:"hybrid_crop_variety"`
	BloomingDurations      []BloomingDurationInput `json:"blooming_durations"`
	CurrentAreaOfFlowering *string                 `json:"current_area_of_flowering"`
	SelectedPhotos         []string                `json:"selected_photos"`

	BeePollination *string `json:"bee_pollination"`
	UsedBees       *string `json:"used_bees"`
	BeeExperience  *string `json:"bee_experience"`
	WhatWentWrong  *string `json:"what_went_wrong"`
	WillingToPay   *string `json:"willing_to_pay"`

	Fertilizers          *string  `json:"fertilizers"`
	SelectedFertilizers  []string `json:"selected_fertilizers"`
	Pesticides           *string  `json:"pesticides"`
	SelectedPesticides   []string `json:"selected_pesticides"`
	SelectedRisks        []string `json:"selected_risks"`
	SelectedBeeBoxPhotos []string `json:"selected_bee_box_photos"`
	SendConsentForm      *bool    `json:"send_consent_form"`
}

// BloomingDurationInput carries one interval as entered on the crop screen.
// IDs come from the screen and are not deduplicated here.
type BloomingDurationInput struct {
	ID        int        `json:"id"`
	StartedOn *time.Time `json:"started_on"`
	EndsOn    *time.Time `json:"ends_on"`
}
