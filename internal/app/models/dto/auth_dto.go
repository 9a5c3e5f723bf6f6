package dto

import "github.com/yigit/placementportal/internal/app/models"

// LoginRequest represents the login request body
type LoginRequest struct {
	Uname    string `json:"uname" example:"faculty1"`
	Password string `json:"password" example:"secret"`
}

// LoginResponse represents a successful login.
// RegistrationNo is only present for student logins.
type LoginResponse struct {
	Success        bool            `json:"success" example:"true"`
	Message        string          `json:"message" example:"Login successful"`
	UserType       models.UserType `json:"userType" example:"student" enums:"faculty,student,company"`
	RegistrationNo *string         `json:"registrationNo,omitempty" example:"21CS123"`
}
