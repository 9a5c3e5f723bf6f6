package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

func TestCompanyService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyService(repositories.NewCompanyRepository(db.NewMemoryDB()))

	empty, err := svc.GetAllCompanies(ctx)
	if err != nil {
		t.Fatalf("GetAllCompanies() unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("GetAllCompanies() on empty store = %#v, want empty non-nil slice", empty)
	}

	minCGPA := 7.0
	created, err := svc.CreateCompany(ctx, &models.CompanyProfile{CompanyName: strPtr("Acme"), MinCGPA: &minCGPA})
	if err != nil {
		t.Fatalf("CreateCompany() unexpected error: %v", err)
	}

	pkg := 12.5
	updated, err := svc.UpdateCompany(ctx, created.ID, &models.CompanyProfile{AvgPackageLPA: &pkg})
	if err != nil {
		t.Fatalf("UpdateCompany() unexpected error: %v", err)
	}
	if *updated.CompanyName != "Acme" || *updated.MinCGPA != 7 || *updated.AvgPackageLPA != 12.5 {
		t.Errorf("UpdateCompany() = %+v, want merged fields", updated.CompanyProfile)
	}

	got, err := svc.GetCompanyByID(ctx, created.ID)
	if err != nil || *got.AvgPackageLPA != 12.5 {
		t.Fatalf("GetCompanyByID() = %+v, %v", got, err)
	}

	if err := svc.DeleteCompany(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCompany() unexpected error: %v", err)
	}
	if err := svc.DeleteCompany(ctx, created.ID); !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("DeleteCompany(again) error = %v, want ErrCompanyNotFound", err)
	}
	if _, err := svc.UpdateCompany(ctx, created.ID, &models.CompanyProfile{}); !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("UpdateCompany(deleted) error = %v, want ErrCompanyNotFound", err)
	}
}
