package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
)

// ErrStudentNotFound is returned when no student matches the lookup
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository handles database operations for students
type StudentRepository struct {
	coll db.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database db.Database) *StudentRepository {
	return &StudentRepository{
		coll: database.Collection(StudentsCollection),
	}
}

// FindAll returns every student in store order
func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.coll.Find(ctx, nil, db.FindOptions{}, &students); err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// FindByID retrieves a student by its document id
func (r *StudentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return r.findOne(ctx, db.ByID(id))
}

// FindByRegistrationNo retrieves the first student with the given registration number
func (r *StudentRepository) FindByRegistrationNo(ctx context.Context, regNo string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"registrationNo": regNo})
}

func (r *StudentRepository) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var student models.Student
	if err := r.coll.FindOne(ctx, filter, &student); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// Create inserts the student and sets its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	id, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	student.ID = id
	return nil
}

// UpdateByRegistrationNo sets the non-nil profile fields on the matching student
func (r *StudentRepository) UpdateByRegistrationNo(ctx context.Context, regNo string, profile *models.StudentProfile) error {
	err := r.coll.UpdateOne(ctx, bson.M{"registrationNo": regNo}, profile, nil)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.coll.DeleteOne(ctx, db.ByID(id)); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
