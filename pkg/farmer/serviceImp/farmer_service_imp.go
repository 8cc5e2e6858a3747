package serviceImp

import (
	"beesurvey/entities"
	repo "beesurvey/pkg/farmer/repository"
	"beesurvey/pkg/farmer/service"
)

type farmerSvc struct{ r repo.FarmerRepository }

func NewFarmerService(r repo.FarmerRepository) service.FarmerService { return &farmerSvc{r} }

// SaveStep merges one screen's fields into the in-progress record. Input
// validation happened on the screen side already; nothing is checked here.
func (s *farmerSvc) SaveStep(p *entities.FarmerPatch) (*entities.FarmerRecord, error) {
	return s.r.Upsert(p)
}

func (s *farmerSvc) Latest() (*entities.FarmerRecord, error) { return s.r.Latest() }

func (s *farmerSvc) All() ([]entities.FarmerRecord, error) { return s.r.All() }

func (s *farmerSvc) DeleteByID(id string) error { return s.r.DeleteByID(id) }
