package repositories

import (
	"github.com/yigit/placementportal/internal/db"
)

// Collection names shared by every driver
const (
	StudentsCollection      = "students"
	CompaniesCollection     = "companies"
	SessionsCollection      = "sessions"
	NotificationsCollection = "notifications"
	FacultyLoginsCollection = "facultylogins"
	StudentLoginsCollection = "studentlogins"
	CompanyLoginsCollection = "companylogins"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	CompanyRepository      *CompanyRepository
	SessionRepository      *SessionRepository
	NotificationRepository *NotificationRepository
	LoginRepository        *LoginRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database db.Database) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(database),
		CompanyRepository:      NewCompanyRepository(database),
		SessionRepository:      NewSessionRepository(database),
		NotificationRepository: NewNotificationRepository(database),
		LoginRepository:        NewLoginRepository(database),
	}
}
