package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
)

// ErrCompanyNotFound is returned when no company has the requested id
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	coll db.Collection
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(database db.Database) *CompanyRepository {
	return &CompanyRepository{
		coll: database.Collection(CompaniesCollection),
	}
}

// FindAll returns every company
func (r *CompanyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := r.coll.Find(ctx, nil, db.FindOptions{}, &companies); err != nil {
		return nil, fmt.Errorf("error retrieving companies: %w", err)
	}
	return companies, nil
}

// FindByID retrieves a company by id
func (r *CompanyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	if err := r.coll.FindOne(ctx, db.ByID(id), &company); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return &company, nil
}

// Create inserts the company and sets its generated ID
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	id, err := r.coll.InsertOne(ctx, company)
	if err != nil {
		return fmt.Errorf("error creating company: %w", err)
	}
	company.ID = id
	return nil
}

// Update merges the non-nil profile fields into the company and returns the result
func (r *CompanyRepository) Update(ctx context.Context, id primitive.ObjectID, profile *models.CompanyProfile) (*models.Company, error) {
	var updated models.Company
	if err := r.coll.UpdateOne(ctx, db.ByID(id), profile, &updated); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error updating company: %w", err)
	}
	return &updated, nil
}

// Delete removes a company by id
func (r *CompanyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.coll.DeleteOne(ctx, db.ByID(id)); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("error deleting company: %w", err)
	}
	return nil
}
