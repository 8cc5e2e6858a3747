// database/bootstrap.go
package database

import (
	"errors"
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"beesurvey/entities"
)

// SchemaVersion is stamped into the sqlite file. There is no migration
// logic; bumping it is an external concern.
const SchemaVersion = 1

// ErrStorageUnavailable means the survey database file could not be opened
// or initialized. Fatal to the operation, recoverable by restarting with a
// healthy file.
var ErrStorageUnavailable = errors.New("storage unavailable")

// OpenSQLite opens the on-device survey store. The composition root calls
// this once and injects the handle; the connection lives for the process and
// no close is exposed.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %v: %w", path, err, ErrStorageUnavailable)
	}

	if err := db.AutoMigrate(
		&entities.FarmerRecord{},
		&entities.BloomingDuration{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %v: %w", err, ErrStorageUnavailable)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)).Error; err != nil {
		return nil, fmt.Errorf("stamp schema version: %v: %w", err, ErrStorageUnavailable)
	}

	return db, nil
}
