package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/controllers"
)

// SetupRouter configures all application routes. Every route is public.
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
	sessionController *controllers.SessionController,
	notificationController *controllers.NotificationController,
	authController *controllers.AuthController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	// Student routes. Lookups by registration number live under the singular path.
	students := router.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/resume", studentController.GetResume)
		students.GET("/:id/photo", studentController.GetPhoto)
	}
	student := router.Group("/student")
	{
		student.GET("/:regNo", studentController.GetStudentByRegistrationNo)
		student.PUT("/:regNo", studentController.UpdateStudentProfile)
	}

	companies := router.Group("/companies")
	{
		companies.GET("", companyController.GetAllCompanies)
		companies.POST("", companyController.CreateCompany)
		companies.GET("/:id", companyController.GetCompanyByID)
		companies.PUT("/:id", companyController.UpdateCompany)
		companies.DELETE("/:id", companyController.DeleteCompany)
	}

	sessions := router.Group("/sessions")
	{
		sessions.GET("", sessionController.GetSessions)
		sessions.POST("", sessionController.CreateSession)
		sessions.PUT("/:id", sessionController.UpdateSession)
		sessions.DELETE("/:id", sessionController.DeleteSession)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.POST("", notificationController.CreateNotification)
	}

	router.POST("/login", authController.Login)
}
