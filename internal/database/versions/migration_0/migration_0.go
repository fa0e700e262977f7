// Package migration_0 snapshots the schema as it was when the migration was
// written, so later schema changes cannot retroactively alter it.
package migration_0

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PatientRecord struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name   string `gorm:"not null"`
	Age    int    `gorm:"not null"`
	Gender string `gorm:"not null"`

	Symptoms datatypes.JSON

	DoctorType string

	CreationTime time.Time
}

func Migration(txn *gorm.DB) error {
	return txn.AutoMigrate(&PatientRecord{})
}

func Rollback(txn *gorm.DB) error {
	return txn.Migrator().DropTable(&PatientRecord{})
}
