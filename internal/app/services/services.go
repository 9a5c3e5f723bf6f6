package services

import (
	"time"

	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
)

// Services defined in this package:
// - StudentService: student records and their resume/photo blobs
// - CompanyService: company records
// - SessionService: interview sessions and the calendar view
// - NotificationService: broadcast notifications
// - AuthService: login against the faculty, student and company credential tables

// Services holds all the service instances
type Services struct {
	StudentService      StudentService
	CompanyService      CompanyService
	SessionService      SessionService
	NotificationService NotificationService
	AuthService         AuthService
}

// NewServices wires every service onto the repositories and the blob store
func NewServices(repos *repositories.Repositories, blobs filestorage.BlobStore) *Services {
	return &Services{
		StudentService:      NewStudentService(repos.StudentRepository, blobs, time.Now),
		CompanyService:      NewCompanyService(repos.CompanyRepository),
		SessionService:      NewSessionService(repos.SessionRepository),
		NotificationService: NewNotificationService(repos.NotificationRepository, time.Now),
		AuthService:         NewAuthService(repos.LoginRepository),
	}
}
