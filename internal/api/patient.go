package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/shrawanc911/HealthSyncInnovators/internal/database"
	"github.com/shrawanc911/HealthSyncInnovators/pkg/api"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

func (s *PatientService) AddRoutes(r chi.Router) {
	r.Route("/patient", func(r chi.Router) {
		r.Post("/add-appointment", RestHandler(s.AddAppointment))
		r.Get("/getPatient", RestHandler(s.GetPatients))
	})
}

func (s *PatientService) AddAppointment(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AddAppointmentRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Name == "" || req.Age <= 0 || req.Gender == "" || len(req.Symptoms) == 0 || req.DoctorType == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "data insufficient")
	}

	if err := database.CreatePatientRecord(r.Context(), s.db, req.Name, req.Age, req.Gender, req.Symptoms, req.DoctorType); err != nil {
		return nil, CodedErrorf(http.StatusNotImplemented, "failed to save appointment")
	}

	return api.AddAppointmentResponse{Message: "Appointment added successfully."}, nil
}

func (s *PatientService) GetPatients(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.GetPatientsParams](r)
	if err != nil {
		return nil, err
	}

	var records []database.PatientRecord
	if params.Date != "" {
		day, parseErr := time.Parse("2006-01-02", params.Date)
		if parseErr != nil {
			return nil, CodedErrorf(http.StatusBadRequest, "invalid date %q, expected YYYY-MM-DD", params.Date)
		}
		records, err = database.ListPatientRecordsOn(r.Context(), s.db, day)
	} else {
		records, err = database.ListPatientRecords(r.Context(), s.db)
	}
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving patient records")
	}

	resp := api.GetPatientsResponse{Data: make([]api.PatientRecord, 0, len(records))}
	for _, rec := range records {
		symptoms, symErr := rec.SymptomList()
		if symErr != nil {
			return nil, CodedErrorf(http.StatusInternalServerError, "corrupt symptom data for record %s", rec.Id)
		}
		resp.Data = append(resp.Data, api.PatientRecord{
			Id:         rec.Id,
			Name:       rec.Name,
			Age:        rec.Age,
			Gender:     rec.Gender,
			Symptoms:   symptoms,
			DoctorType: rec.DoctorType,
		})
	}

	return resp, nil
}
