package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
	"github.com/yigit/placementportal/internal/pkg/helpers"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// Content types served for downloads regardless of what was uploaded
const (
	ResumeContentType = "application/pdf"
	PhotoContentType  = "image/jpeg"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileDownload is an opened blob ready to be streamed to a client
type FileDownload struct {
	FileName    string
	ContentType string
	Content     io.ReadCloser
}

// StudentService defines the interface for student operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentByRegistrationNo(ctx context.Context, regNo string) (*models.Student, error)
	CreateStudent(ctx context.Context, profile *models.StudentProfile, resume, photo *multipart.FileHeader) (*models.Student, error)
	UpdateStudentProfile(ctx context.Context, regNo string, profile *models.StudentProfile) error
	DeleteStudent(ctx context.Context, id primitive.ObjectID) error
	OpenResume(ctx context.Context, id primitive.ObjectID) (*FileDownload, error)
	OpenPhoto(ctx context.Context, id primitive.ObjectID) (*FileDownload, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	blobs       filestorage.BlobStore
	now         func() time.Time
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo *repositories.StudentRepository, blobs filestorage.BlobStore, now func() time.Time) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		blobs:       blobs,
		now:         now,
	}
}

// GetAllStudents returns every student, never nil
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// GetStudentByRegistrationNo fetches the first student with regNo
func (s *studentServiceImpl) GetStudentByRegistrationNo(ctx context.Context, regNo string) (*models.Student, error) {
	student, err := s.studentRepo.FindByRegistrationNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// CreateStudent stores the optional resume and photo, then inserts the record referencing them.
// A blob stored before a failed insert is left in place and its reference logged.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, profile *models.StudentProfile, resume, photo *multipart.FileHeader) (*models.Student, error) {
	student := &models.Student{}
	if profile != nil {
		student.StudentProfile = *profile
	}

	var err error
	if student.ResumeFileID, err = s.storeUpload(ctx, resume); err != nil {
		return nil, fmt.Errorf("error storing resume: %w", err)
	}
	if student.PhotoFileID, err = s.storeUpload(ctx, photo); err != nil {
		s.logOrphans(student, err)
		return nil, fmt.Errorf("error storing photo: %w", err)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		s.logOrphans(student, err)
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().
		Str("studentId", student.ID.Hex()).
		Bool("resume", student.ResumeFileID != nil).
		Bool("photo", student.PhotoFileID != nil).
		Msg("Student created")
	return student, nil
}

// storeUpload writes one multipart part to the blob store; a nil header yields a nil reference
func (s *studentServiceImpl) storeUpload(ctx context.Context, fh *multipart.FileHeader) (*primitive.ObjectID, error) {
	if fh == nil {
		return nil, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := helpers.UploadName(s.now(), fh.Filename)
	ref, err := s.blobs.Put(ctx, name, fh.Header.Get("Content-Type"), src, fh.Size)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *studentServiceImpl) logOrphans(student *models.Student, cause error) {
	for kind, ref := range map[string]*primitive.ObjectID{"resume": student.ResumeFileID, "photo": student.PhotoFileID} {
		if ref == nil {
			continue
		}
		logger.Error().Err(cause).Str("kind", kind).Str("fileId", ref.Hex()).Msg("Stored file left without a student record")
	}
}

// UpdateStudentProfile sets the given fields on the student with regNo
func (s *studentServiceImpl) UpdateStudentProfile(ctx context.Context, regNo string, profile *models.StudentProfile) error {
	if profile == nil {
		profile = &models.StudentProfile{}
	}
	if err := s.studentRepo.UpdateByRegistrationNo(ctx, regNo, profile); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent removes the record. The resume blob is removed best-effort first.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error retrieving student: %w", err)
	}

	if student.ResumeFileID != nil {
		if err := s.blobs.Delete(ctx, *student.ResumeFileID); err != nil {
			logger.Warn().Err(err).Str("fileId", student.ResumeFileID.Hex()).Msg("Resume already deleted or not found")
		}
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// OpenResume opens the student's resume for download
func (s *studentServiceImpl) OpenResume(ctx context.Context, id primitive.ObjectID) (*FileDownload, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repositories.ErrStudentNotFound) {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil || student.ResumeFileID == nil {
		return nil, apperrors.ErrResumeNotFound
	}

	content, err := s.blobs.Open(ctx, *student.ResumeFileID)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, fmt.Errorf("error opening resume: %w", err)
	}

	return &FileDownload{
		FileName:    ResumeFileName(student),
		ContentType: ResumeContentType,
		Content:     content,
	}, nil
}

// OpenPhoto opens the student's photo for display
func (s *studentServiceImpl) OpenPhoto(ctx context.Context, id primitive.ObjectID) (*FileDownload, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repositories.ErrStudentNotFound) {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil || student.PhotoFileID == nil {
		return nil, apperrors.ErrPhotoNotFound
	}

	content, err := s.blobs.Open(ctx, *student.PhotoFileID)
	if err != nil {
		logger.Warn().Err(err).Str("fileId", student.PhotoFileID.Hex()).Msg("Failed to open photo")
		return nil, apperrors.ErrFileNotFound
	}

	return &FileDownload{
		ContentType: PhotoContentType,
		Content:     content,
	}, nil
}

// ResumeFileName builds "<registrationNo>_Resume.pdf" with whitespace runs replaced by underscores.
// Students without a registration number fall back to their id.
func ResumeFileName(student *models.Student) string {
	base := student.ID.Hex()
	if student.RegistrationNo != nil && *student.RegistrationNo != "" {
		base = whitespaceRun.ReplaceAllString(*student.RegistrationNo, "_")
	}
	return base + "_Resume.pdf"
}
