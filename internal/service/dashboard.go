package service

import (
	"fmt"
	"time"

	"quiroclinic-backend/internal/database/models"
	"quiroclinic-backend/internal/repository"
)

// DashboardService aggregates organization-scoped counts for the dashboard.
type DashboardService struct {
	patientRepo repository.PatientRepositoryInterface
	measureRepo repository.MeasureRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(patientRepo repository.PatientRepositoryInterface, measureRepo repository.MeasureRepositoryInterface, userRepo repository.UserRepositoryInterface) *DashboardService {
	return &DashboardService{
		patientRepo: patientRepo,
		measureRepo: measureRepo,
		userRepo:    userRepo,
	}
}

// DashboardStatsResponse represents the dashboard counters
type DashboardStatsResponse struct {
	PatientCount        int64 `json:"patient_count"`
	MeasureCount        int64 `json:"measure_count"`
	UserCount           int64 `json:"user_count"`
	RecentActivityCount int64 `json:"recent_activity_count"`
}

// Stats returns the caller's organization counters; recent activity is the
// number of measures created in the last 24 hours.
func (s *DashboardService) Stats(caller *models.User) (*DashboardStatsResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	patientCount, err := s.patientRepo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	measureCount, err := s.measureRepo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count measures: %w", err)
	}
	userCount, err := s.userRepo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	recent, err := s.measureRepo.CountCreatedSince(orgID, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent measures: %w", err)
	}

	return &DashboardStatsResponse{
		PatientCount:        patientCount,
		MeasureCount:        measureCount,
		UserCount:           userCount,
		RecentActivityCount: recent,
	}, nil
}
