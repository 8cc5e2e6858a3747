package repositoryImp

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"beesurvey/entities"
	"beesurvey/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Upsert(p *entities.FarmerPatch) (*entities.FarmerRecord, error) {
	var out entities.FarmerRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rec entities.FarmerRecord
		err := tx.Order("created_at DESC").First(&rec).Error
		switch {
		case err == nil:
			if err := mergeInto(tx, &rec, p); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := createFrom(tx, &rec, p); err != nil {
				return err
			}
		default:
			return err
		}
		// reload so the returned snapshot carries the durations as stored
		return tx.Preload("BloomingDurations", durationOrder).First(&out, "id = ?", rec.ID).Error
	})
	if err != nil {
		return nil, &repository.PersistenceError{Op: "upsert", Err: err}
	}
	return &out, nil
}

// mergeInto applies the patch to the active record. Scalars overwrite, list
// columns are replaced wholesale, duration rows are deleted and recreated.
// UpdatedAt is touched even when the patch is empty.
func mergeInto(tx *gorm.DB, rec *entities.FarmerRecord, p *entities.FarmerPatch) error {
	if p.BloomingDurations != nil {
		if err := tx.Where("farmer_record_id = ?", rec.ID).Delete(&entities.BloomingDuration{}).Error; err != nil {
			return err
		}
		if err := insertDurations(tx, rec.ID, p.BloomingDurations); err != nil {
			return err
		}
	}

	applyScalars(rec, p)
	applyLists(rec, p)
	if p.SendConsentForm != nil {
		rec.SendConsentForm = *p.SendConsentForm
	}
	rec.UpdatedAt = time.Now()

	// durations are managed by hand above
	return tx.Omit(clause.Associations).Save(rec).Error
}

// createFrom builds the first record of the store from the patch. The
// consent flag defaults to true when the creating patch leaves it unset.
func createFrom(tx *gorm.DB, rec *entities.FarmerRecord, p *entities.FarmerPatch) error {
	now := time.Now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.SendConsentForm = true

	applyScalars(rec, p)
	applyLists(rec, p)
	if p.SendConsentForm != nil {
		rec.SendConsentForm = *p.SendConsentForm
	}

	if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
		return err
	}
	return insertDurations(tx, rec.ID, p.BloomingDurations)
}

// insertDurations recreates the owned duration rows in input order,
// preserving caller-assigned ids. Duplicate ids within one patch are stored
// as-is; the rows have their own key.
func insertDurations(tx *gorm.DB, recordID string, in []entities.BloomingDurationInput) error {
	for _, d := range in {
		row := entities.BloomingDuration{
			FarmerRecordID: recordID,
			DurationID:     d.ID,
			StartedOn:      d.StartedOn,
			EndsOn:         d.EndsOn,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func applyScalars(rec *entities.FarmerRecord, p *entities.FarmerPatch) {
	set := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	set(&rec.FullName, p.FullName)
	set(&rec.ContactNumber, p.ContactNumber)
	set(&rec.Gender, p.Gender)
	set(&rec.LocationState, p.LocationState)
	set(&rec.LocationVillage, p.LocationVillage)
	set(&rec.LocationBlockName, p.LocationBlockName)
	set(&rec.LocationStreetName, p.LocationStreetName)
	set(&rec.LocationPlotNumber, p.LocationPlotNumber)
	set(&rec.AreaValue, p.AreaValue)
	set(&rec.UnitOfArea, p.UnitOfArea)
	set(&rec.LandHolding, p.LandHolding)
	set(&rec.GeotagData, p.GeotagData)
	set(&rec.Flower1, p.Flower1)
	set(&rec.FlowerTypes, p.FlowerTypes)
	set(&rec.HybridCropVariety, p.HybridCropVariety)
	set(&rec.CurrentAreaOfFlowering, p.CurrentAreaOfFlowering)
	set(&rec.BeePollination, p.BeePollination)
	set(&rec.UsedBees, p.UsedBees)
	set(&rec.BeeExperience, p.BeeExperience)
	set(&rec.WhatWentWrong, p.WhatWentWrong)
	set(&rec.WillingToPay, p.WillingToPay)
	set(&rec.Fertilizers, p.Fertilizers)
	set(&rec.Pesticides, p.Pesticides)
}

// applyLists replaces whole list columns. nil = untouched, empty = cleared.
func applyLists(rec *entities.FarmerRecord, p *entities.FarmerPatch) {
	if p.SelectedPhotos != nil {
		rec.SelectedPhotos = p.SelectedPhotos
	}
	if p.SelectedFertilizers != nil {
		rec.SelectedFertilizers = p.SelectedFertilizers
	}
	if p.SelectedPesticides != nil {
		rec.SelectedPesticides = p.SelectedPesticides
	}
	if p.SelectedRisks != nil {
		rec.SelectedRisks = p.SelectedRisks
	}
	if p.SelectedBeeBoxPhotos != nil {
		rec.SelectedBeeBoxPhotos = p.SelectedBeeBoxPhotos
	}
}

func durationOrder(db *gorm.DB) *gorm.DB { return db.Order("row_id ASC") }

func (r *farmerRepo) Latest() (*entities.FarmerRecord, error) {
	var rec entities.FarmerRecord
	err := r.db.Preload("BloomingDurations", durationOrder).Order("created_at DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *farmerRepo) All() ([]entities.FarmerRecord, error) {
	var out []entities.FarmerRecord
	if err := r.db.Preload("BloomingDurations", durationOrder).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmerRepo) DeleteByID(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farmer_record_id = ?", id).Delete(&entities.BloomingDuration{}).Error; err != nil {
			return err
		}
		// missing ids delete zero rows, which is fine
		return tx.Where("id = ?", id).Delete(&entities.FarmerRecord{}).Error
	})
	if err != nil {
		return &repository.PersistenceError{Op: "delete " + id, Err: err}
	}
	return nil
}
