package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PatientRecord is the durable form of an accepted appointment. Records are
// created once at triage finalization and never updated; the dashboard
// reads them back in bulk.
type PatientRecord struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name   string `gorm:"not null"`
	Age    int    `gorm:"not null"`
	Gender string `gorm:"not null"`

	// Symptoms holds the session's raw symptom strings as a JSON array.
	Symptoms datatypes.JSON

	DoctorType string

	CreationTime time.Time
}
