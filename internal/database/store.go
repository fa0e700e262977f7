package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

// CreatePatientRecord inserts a finalized appointment. Records are
// append-only; nothing ever updates or deletes them.
func CreatePatientRecord(ctx context.Context, db *gorm.DB, name string, age int, gender string, symptoms []string, doctorType string) error {
	symptomsJSON, err := json.Marshal(symptoms)
	if err != nil {
		return fmt.Errorf("could not marshal symptoms: %w", err)
	}

	record := PatientRecord{
		Id:           uuid.New(),
		Name:         name,
		Age:          age,
		Gender:       gender,
		Symptoms:     datatypes.JSON(symptomsJSON),
		DoctorType:   doctorType,
		CreationTime: time.Now().UTC(),
	}

	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.WithContext(ctx).Create(&record).Error
}

// ListPatientRecords returns every stored appointment, oldest first.
func ListPatientRecords(ctx context.Context, db *gorm.DB) ([]PatientRecord, error) {
	var records []PatientRecord
	err := db.WithContext(ctx).Order("creation_time ASC").Find(&records).Error
	return records, err
}

// ListPatientRecordsOn returns the appointments created on the given UTC
// day, for the same-day dashboard.
func ListPatientRecordsOn(ctx context.Context, db *gorm.DB, day time.Time) ([]PatientRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var records []PatientRecord
	err := db.WithContext(ctx).
		Where("creation_time >= ? AND creation_time < ?", start, end).
		Order("creation_time ASC").
		Find(&records).Error
	return records, err
}

// SymptomList decodes the record's JSON symptom list.
func (r *PatientRecord) SymptomList() ([]string, error) {
	var symptoms []string
	if len(r.Symptoms) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(r.Symptoms, &symptoms); err != nil {
		return nil, fmt.Errorf("invalid symptoms JSON: %w", err)
	}
	return symptoms, nil
}

// Store adapts the package-level record operations to the interface the
// intake controller persists through.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePatientRecord(ctx context.Context, name string, age int, gender string, symptoms []string, doctorType string) error {
	return CreatePatientRecord(ctx, s.db, name, age, gender, symptoms, doctorType)
}
