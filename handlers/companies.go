package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

const companyNotFound = "Company not found"

// CompanyHandler handles company requests
type CompanyHandler struct {
	companies storage.CompanyRepository
	logger    *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companies storage.CompanyRepository, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companies: companies,
		logger:    logger.Named("companies"),
	}
}

// List returns companies
// @Summary List companies
// @Description List companies filtered by name and industry (partial match), newest first
// @Tags Companies
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param name query string false "Name contains"
// @Param industry query string false "Industry contains"
// @Success 200 {array} models.Company
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	var query models.CompanyListQuery
	if !bindQuery(c, &query) {
		return
	}

	companies, err := h.companies.ListCompanies(c.Request.Context(), query)
	if err != nil {
		storeError(c, h.logger, err, companyNotFound, "")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Get returns one company
// @Summary Get company
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companies.GetCompany(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.logger, err, companyNotFound, "")
		return
	}
	c.JSON(http.StatusOK, company)
}

// Create creates a company owned by the caller
// @Summary Create company
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompanyRequest true "Company"
// @Success 201 {object} models.Company
// @Failure 400 {object} models.ErrorResponse "Invalid body or duplicate name"
// @Failure 403 {object} models.ErrorResponse "Recruiter role required"
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		CreatedBy:   &userID,
	}
	if err := h.companies.CreateCompany(c.Request.Context(), company); err != nil {
		storeError(c, h.logger, err, companyNotFound, "A company with this name already exists")
		return
	}

	h.logger.Info("company created", zap.String("company_id", company.ID.String()))
	c.JSON(http.StatusCreated, company)
}

// Update changes a company created by the caller
// @Summary Update company
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body models.CompanyUpdateRequest true "Fields to change"
// @Success 200 {object} models.Company
// @Failure 403 {object} models.ErrorResponse "Not the creator"
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	company, ok := h.ownedCompany(c, "You can only update companies you created")
	if !ok {
		return
	}

	var req models.CompanyUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.companies.UpdateCompany(c.Request.Context(), company.ID, req.Changes())
	if err != nil {
		storeError(c, h.logger, err, companyNotFound, "A company with this name already exists")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a company created by the caller, with its jobs and applications
// @Summary Delete company
// @Tags Companies
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse "Not the creator"
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	company, ok := h.ownedCompany(c, "You can only delete companies you created")
	if !ok {
		return
	}

	if err := h.companies.DeleteCompany(c.Request.Context(), company.ID); err != nil {
		storeError(c, h.logger, err, companyNotFound, "")
		return
	}

	h.logger.Info("company deleted", zap.String("company_id", company.ID.String()))
	c.Status(http.StatusNoContent)
}

func (h *CompanyHandler) ownedCompany(c *gin.Context, forbidden string) (*models.Company, bool) {
	userID, _, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	company, err := h.companies.GetCompany(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.logger, err, companyNotFound, "")
		return nil, false
	}
	if !isOwner(company.CreatedBy, userID) {
		respondError(c, http.StatusForbidden, forbidden, "")
		return nil, false
	}
	return company, true
}
