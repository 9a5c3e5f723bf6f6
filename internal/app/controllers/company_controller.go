package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// CompanyController handles company records
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// GetAllCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} models.Company
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	companies, err := c.companyService.GetAllCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, companies)
}

// GetCompanyByID godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "company")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.GetCompanyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}

// CreateCompany godoc
// @Summary Add a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body models.CompanyProfile true "Company fields"
// @Success 200 {object} dto.CompanyCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var profile models.CompanyProfile
	if err := bindOptionalJSON(ctx, &profile); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	company, err := c.companyService.CreateCompany(ctx, &profile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompanyCreatedResponse{
		Message: "Company added successfully",
		Company: company,
	})
}

// UpdateCompany godoc
// @Summary Update a company
// @Description Merge the given fields into the company and return it
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body models.CompanyProfile true "Fields to change"
// @Success 200 {object} models.Company
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "company")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var profile models.CompanyProfile
	if err := bindOptionalJSON(ctx, &profile); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	company, err := c.companyService.UpdateCompany(ctx, id, &profile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "company")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.companyService.DeleteCompany(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Company deleted"})
}
