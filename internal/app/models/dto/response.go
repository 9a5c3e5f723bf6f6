package dto

import "github.com/yigit/placementportal/internal/app/models"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Company deleted"`
}

// FlaggedSuccessResponse is a success message that also carries the success flag
type FlaggedSuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Student profile updated"`
}

// StudentCreatedResponse is returned by POST /students
type StudentCreatedResponse struct {
	Message string          `json:"message" example:"Student added successfully"`
	Student *models.Student `json:"student"`
}

// CompanyCreatedResponse is returned by POST /companies
type CompanyCreatedResponse struct {
	Message string          `json:"message" example:"Company added successfully"`
	Company *models.Company `json:"company"`
}

// HealthResponse reports service readiness
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
