package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
)

// ErrLoginNotFound is returned when a credential table has no row for the username
var ErrLoginNotFound = errors.New("login not found")

// LoginRepository reads the three credential collections
type LoginRepository struct {
	faculty db.Collection
	student db.Collection
	company db.Collection
}

// NewLoginRepository creates a new login repository
func NewLoginRepository(database db.Database) *LoginRepository {
	return &LoginRepository{
		faculty: database.Collection(FacultyLoginsCollection),
		student: database.Collection(StudentLoginsCollection),
		company: database.Collection(CompanyLoginsCollection),
	}
}

func findByUname(ctx context.Context, coll db.Collection, uname string, result interface{}) error {
	if err := coll.FindOne(ctx, bson.M{"uname": uname}, result); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrLoginNotFound
		}
		return fmt.Errorf("error retrieving login: %w", err)
	}
	return nil
}

// FindFacultyByUname looks up a faculty login
func (r *LoginRepository) FindFacultyByUname(ctx context.Context, uname string) (*models.FacultyLogin, error) {
	var login models.FacultyLogin
	if err := findByUname(ctx, r.faculty, uname, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// FindStudentByUname looks up a student login
func (r *LoginRepository) FindStudentByUname(ctx context.Context, uname string) (*models.StudentLogin, error) {
	var login models.StudentLogin
	if err := findByUname(ctx, r.student, uname, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// FindCompanyByUname looks up a company login
func (r *LoginRepository) FindCompanyByUname(ctx context.Context, uname string) (*models.CompanyLogin, error) {
	var login models.CompanyLogin
	if err := findByUname(ctx, r.company, uname, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// CreateFaculty inserts a faculty login
func (r *LoginRepository) CreateFaculty(ctx context.Context, login *models.FacultyLogin) error {
	id, err := r.faculty.InsertOne(ctx, login)
	if err != nil {
		return fmt.Errorf("error creating faculty login: %w", err)
	}
	login.ID = id
	return nil
}

// CreateStudent inserts a student login
func (r *LoginRepository) CreateStudent(ctx context.Context, login *models.StudentLogin) error {
	id, err := r.student.InsertOne(ctx, login)
	if err != nil {
		return fmt.Errorf("error creating student login: %w", err)
	}
	login.ID = id
	return nil
}

// CreateCompany inserts a company login
func (r *LoginRepository) CreateCompany(ctx context.Context, login *models.CompanyLogin) error {
	id, err := r.company.InsertOne(ctx, login)
	if err != nil {
		return fmt.Errorf("error creating company login: %w", err)
	}
	login.ID = id
	return nil
}
