package entities

import "time"

// FarmerRecord accumulates one survey session. Each screen of the flow owns
// a slice of the fields and merges only those; everything optional stays nil
// until its screen saves.
type FarmerRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Farmer home
	FullName           *string `json:"full_name,omitempty"`
	ContactNumber      *string `json:"contact_number,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	LocationState      *string `json:"location_state,omitempty"`
	LocationVillage    *string `json:"location_village,omitempty"`
	LocationBlockName  *string `json:"location_block_name,omitempty"`
	LocationStreetName *string `json:"location_street_name,omitempty"`
	LocationPlotNumber *string `json:"location_plot_number,omitempty"`

	// Land details
	AreaValue   *string `json:"area_value,omitempty"`
	UnitOfArea  *string `json:"unit_of_area,omitempty"`
	LandHolding *string `json:"land_holding,omitempty"`
	GeotagData  *string `json:"geotag_data,omitempty"` // JSON blob from the geotag capture

	// Crop details
	Flower1                *string            `json:"flower1,omitempty"`
	FlowerTypes            *string            `json:"flower_types,omitempty"`
	HybridCropVariety      *string            `json:"hybrid_crop_variety,omitempty"`
	BloomingDurations      []BloomingDuration `gorm:"foreignKey:FarmerRecordID" json:"blooming_durations"`
	CurrentAreaOfFlowering *string            `json:"current_area_of_flowering,omitempty"`
	SelectedPhotos         []string           `gorm:"serializer:json" json:"selected_photos"`

	// Flower details
	BeePollination *string `json:"bee_pollination,omitempty"`
	UsedBees       *string `json:"used_bees,omitempty"`
	BeeExperience  *string `json:"bee_experience,omitempty"`
	WhatWentWrong  *string `json:"what_went_wrong,omitempty"`
	WillingToPay   *string `json:"willing_to_pay,omitempty"`

	// Beekeeping details
	Fertilizers          *string  `json:"fertilizers,omitempty"`
	SelectedFertilizers  []string `gorm:"serializer:json" json:"selected_fertilizers"`
	Pesticides           *string  `json:"pesticides,omitempty"`
	SelectedPesticides   []string `gorm:"serializer:json" json:"selected_pesticides"`
	SelectedRisks        []string `gorm:"serializer:json" json:"selected_risks"`
	SelectedBeeBoxPhotos []string `gorm:"serializer:json" json:"selected_bee_box_photos"`
	SendConsentForm      bool     `json:"send_consent_form"`
}

// BloomingDuration is owned by exactly one FarmerRecord and is replaced, not
// merged, whenever its screen re-saves. DurationID is assigned by the caller
// and unique only within the owning record, so rows carry their own key.
type BloomingDuration struct {
	RowID          uint       `gorm:"primaryKey" json:"-"`
	FarmerRecordID string     `gorm:"index" json:"-"`
	DurationID     int        `json:"id"`
	StartedOn      *time.Time `json:"started_on"`
	EndsOn         *time.Time `json:"ends_on"` // must be after StartedOn; the saving screen checks this
}
