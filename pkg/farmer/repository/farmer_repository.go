package repository

import "beesurvey/entities"

// FarmerRepository is the merge engine plus the read-only facade over the
// single in-progress survey record. The "active" record is always the most
// recently created one; Upsert creates it only when none exists.
type FarmerRepository interface {
	// Upsert applies a partial field set to the active record inside one
	// transaction, creating the record if the store is empty. Scalars
	// overwrite; list fields present in the patch are replaced wholesale;
	// blooming durations are deleted and recreated. UpdatedAt is touched on
	// every call, even with an empty patch.
	Upsert(p *entities.FarmerPatch) (*entities.FarmerRecord, error)

	// Latest returns the active record with durations loaded, or (nil, nil)
	// when the store is empty.
	Latest() (*entities.FarmerRecord, error)

	// All returns every record, newest first.
	All() ([]entities.FarmerRecord, error)

	// DeleteByID removes a record and its owned durations. Unknown ids are a
	// silent no-op.
	DeleteByID(id string) error
}
