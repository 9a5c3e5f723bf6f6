package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	GetAllCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	CreateCompany(ctx context.Context, profile *models.CompanyProfile) (*models.Company, error)
	UpdateCompany(ctx context.Context, id primitive.ObjectID, profile *models.CompanyProfile) (*models.Company, error)
	DeleteCompany(ctx context.Context, id primitive.ObjectID) error
}

// companyServiceImpl implements CompanyService
type companyServiceImpl struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo *repositories.CompanyRepository) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

func mapCompanyError(err error, action string) error {
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return apperrors.ErrCompanyNotFound
	}
	return fmt.Errorf("error %s company: %w", action, err)
}

// GetAllCompanies returns every company, never nil
func (s *companyServiceImpl) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// GetCompanyByID retrieves a company
func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCompanyError(err, "retrieving")
	}
	return company, nil
}

// CreateCompany stores a new company with whatever fields were given
func (s *companyServiceImpl) CreateCompany(ctx context.Context, profile *models.CompanyProfile) (*models.Company, error) {
	company := &models.Company{}
	if profile != nil {
		company.CompanyProfile = *profile
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("error creating company: %w", err)
	}
	return company, nil
}

// UpdateCompany merges the given fields and returns the merged company
func (s *companyServiceImpl) UpdateCompany(ctx context.Context, id primitive.ObjectID, profile *models.CompanyProfile) (*models.Company, error) {
	if profile == nil {
		profile = &models.CompanyProfile{}
	}
	company, err := s.companyRepo.Update(ctx, id, profile)
	if err != nil {
		return nil, mapCompanyError(err, "updating")
	}
	return company, nil
}

// DeleteCompany removes a company
func (s *companyServiceImpl) DeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return mapCompanyError(err, "deleting")
	}
	return nil
}
