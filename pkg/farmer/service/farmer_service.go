package service

import "beesurvey/entities"

type FarmerService interface {
	SaveStep(p *entities.FarmerPatch) (*entities.FarmerRecord, error)
	Latest() (*entities.FarmerRecord, error)
	All() ([]entities.FarmerRecord, error)
	DeleteByID(id string) error
}
