package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// StudentController handles student records and their files
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents godoc
// @Summary List students
// @Description Get every student record
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateStudent godoc
// @Summary Add a student
// @Description Create a student from form fields with an optional resume and photo upload
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "Name"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param registrationNo formData string false "Registration number"
// @Param dob formData string false "Date of birth (dd-mm-yyyy)"
// @Param course formData string false "Course"
// @Param semester formData int false "Semester"
// @Param address formData string false "Address"
// @Param state formData string false "State"
// @Param cgpa formData number false "CGPA"
// @Param activeBacklogs formData int false "Active backlogs"
// @Param certifications formData int false "Certifications"
// @Param projects formData int false "Projects"
// @Param internships formData int false "Internships"
// @Param researchPapers formData int false "Research papers"
// @Param resume formData file false "Resume"
// @Param photo formData file false "Photo"
// @Success 200 {object} dto.StudentCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var profile models.StudentProfile
	if err := ctx.ShouldBind(&profile); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resume, err := optionalFormFile(ctx, "resume")
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	photo, err := optionalFormFile(ctx, "photo")
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &profile, resume, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCreatedResponse{
		Message: "Student added successfully",
		Student: student,
	})
}

// GetStudentByRegistrationNo godoc
// @Summary Get a student by registration number
// @Tags students
// @Produce json
// @Param regNo path string true "Registration number"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/{regNo} [get]
func (c *StudentController) GetStudentByRegistrationNo(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByRegistrationNo(ctx, ctx.Param("regNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// UpdateStudentProfile godoc
// @Summary Update a student profile
// @Description Set the given fields on the student with the registration number
// @Tags students
// @Accept json
// @Produce json
// @Param regNo path string true "Registration number"
// @Param profile body models.StudentProfile true "Fields to change"
// @Success 200 {object} dto.FlaggedSuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/{regNo} [put]
func (c *StudentController) UpdateStudentProfile(ctx *gin.Context) {
	var profile models.StudentProfile
	if err := bindOptionalJSON(ctx, &profile); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.UpdateStudentProfile(ctx, ctx.Param("regNo"), &profile); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FlaggedSuccessResponse{
		Success: true,
		Message: "Student profile updated",
	})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Delete the student and, best effort, its resume file
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "student")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student and resume deleted"})
}

// GetResume godoc
// @Summary Download a student's resume
// @Tags students
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/resume [get]
func (c *StudentController) GetResume(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "student")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := c.studentService.OpenResume(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Content.Close()

	ctx.DataFromReader(http.StatusOK, -1, file.ContentType, file.Content, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, file.FileName),
	})
}

// GetPhoto godoc
// @Summary Get a student's photo
// @Tags students
// @Produce image/jpeg
// @Param id path string true "Student ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/photo [get]
func (c *StudentController) GetPhoto(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "student")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := c.studentService.OpenPhoto(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Content.Close()

	// Nothing is written until the first byte arrives, so an early stream error is still a 404
	body := bufio.NewReader(file.Content)
	if _, err := body.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn().Err(err).Str("studentId", id.Hex()).Msg("Photo stream failed before first byte")
		middleware.HandleAPIError(ctx, apperrors.ErrFileNotFound)
		return
	}

	ctx.DataFromReader(http.StatusOK, -1, file.ContentType, body, nil)
}
