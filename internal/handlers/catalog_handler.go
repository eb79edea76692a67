package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
)

type ConstructionCompanyHandler struct {
	companyService *services.ConstructionCompanyService
}

func NewConstructionCompanyHandler(companyService *services.ConstructionCompanyService) *ConstructionCompanyHandler {
	return &ConstructionCompanyHandler{companyService: companyService}
}

// @Summary List Construction Companies
// @Tags Construction Companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or CNPJ"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /construction_companies [get]
func (h *ConstructionCompanyHandler) Index(c *gin.Context) {
	query := listQuery(c)
	query.Filters["active"] = c.Query("active")

	companies, total, err := h.companyService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ConstructionCompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, companies[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"construction_companies": responses, "pagination": pagination(query, total)})
}

// @Summary Get Construction Company
// @Tags Construction Companies
// @Produce json
// @Param company_id path int true "Company ID"
// @Success 200 {object} models.ConstructionCompanyResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /construction_companies/{company_id} [get]
func (h *ConstructionCompanyHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	company, err := h.companyService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"construction_company": company.ToResponse()})
}

// @Summary Create Construction Company
// @Tags Construction Companies
// @Accept json
// @Produce json
// @Param request body models.ConstructionCompany true "Company Data"
// @Success 201 {object} models.ConstructionCompanyResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /construction_companies [post]
func (h *ConstructionCompanyHandler) Create(c *gin.Context) {
	var company models.ConstructionCompany
	if err := BindNestedOrFlat(c, "construction_company", &company); err != nil {
		badRequest(c, "dados da construtora inválidos")
		return
	}
	if err := h.companyService.Create(c.Request.Context(), &company, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"construction_company": company.ToResponse()})
}

// @Summary Update Construction Company
// @Tags Construction Companies
// @Accept json
// @Produce json
// @Param company_id path int true "Company ID"
// @Param request body models.ConstructionCompany true "Company Data"
// @Success 200 {object} models.ConstructionCompanyResponse
// @Security BearerAuth
// @Router /construction_companies/{company_id} [put]
func (h *ConstructionCompanyHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	company := models.ConstructionCompany{Active: true}
	if err := BindNestedOrFlat(c, "construction_company", &company); err != nil {
		badRequest(c, "dados da construtora inválidos")
		return
	}
	updated, err := h.companyService.Update(c.Request.Context(), id, &company, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"construction_company": updated.ToResponse()})
}

// @Summary Delete Construction Company
// @Description Only companies without developments can be deleted
// @Tags Construction Companies
// @Produce json
// @Param company_id path int true "Company ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /construction_companies/{company_id} [delete]
func (h *ConstructionCompanyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	if err := h.companyService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "construtora excluída"})
}

type DevelopmentHandler struct {
	developmentService *services.DevelopmentService
	unitTypeService    *services.UnitTypeService
	unitService        *services.UnitService
}

func NewDevelopmentHandler(developmentService *services.DevelopmentService, unitTypeService *services.UnitTypeService, unitService *services.UnitService) *DevelopmentHandler {
	return &DevelopmentHandler{
		developmentService: developmentService,
		unitTypeService:    unitTypeService,
		unitService:        unitService,
	}
}

// @Summary List Developments
// @Tags Developments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or city"
// @Param status query string false "Filter by status"
// @Param property_type query string false "Filter by property type"
// @Param construction_company_id query int false "Filter by construction company"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /developments [get]
func (h *DevelopmentHandler) Index(c *gin.Context) {
	query := listQuery(c)
	for _, key := range []string{"status", "property_type", "construction_company_id", "active"} {
		query.Filters[key] = c.Query(key)
	}

	developments, total, err := h.developmentService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.DevelopmentResponse, 0, len(developments))
	for i := range developments {
		responses = append(responses, developments[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"developments": responses, "pagination": pagination(query, total)})
}

// @Summary Get Development
// @Tags Developments
// @Produce json
// @Param development_id path int true "Development ID"
// @Success 200 {object} models.DevelopmentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /developments/{development_id} [get]
func (h *DevelopmentHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	development, err := h.developmentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"development": development.ToResponse()})
}

// @Summary Development Info
// @Description Construction company, active unit types and available units, used when filling a proposal
// @Tags Developments
// @Produce json
// @Param development_id path int true "Development ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /developments/{development_id}/info [get]
func (h *DevelopmentHandler) Info(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	development, err := h.developmentService.Info(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	available := make([]models.UnitResponse, 0, len(development.Units))
	for i := range development.Units {
		if development.Units[i].Status == models.UnitStatusAvailable {
			available = append(available, development.Units[i].ToResponse())
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"development":          development.ToResponse(),
		"construction_company": development.ConstructionCompany.ToResponse(),
		"available_units":      available,
	})
}

// @Summary Create Development
// @Tags Developments
// @Accept json
// @Produce json
// @Param request body models.Development true "Development Data"
// @Success 201 {object} models.DevelopmentResponse
// @Security BearerAuth
// @Router /developments [post]
func (h *DevelopmentHandler) Create(c *gin.Context) {
	var development models.Development
	if err := BindNestedOrFlat(c, "development", &development); err != nil {
		badRequest(c, "dados do empreendimento inválidos")
		return
	}
	if err := h.developmentService.Create(c.Request.Context(), &development, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"development": development.ToResponse()})
}

// @Summary Update Development
// @Tags Developments
// @Accept json
// @Produce json
// @Param development_id path int true "Development ID"
// @Param request body models.Development true "Development Data"
// @Success 200 {object} models.DevelopmentResponse
// @Security BearerAuth
// @Router /developments/{development_id} [put]
func (h *DevelopmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	development := models.Development{Active: true}
	if err := BindNestedOrFlat(c, "development", &development); err != nil {
		badRequest(c, "dados do empreendimento inválidos")
		return
	}
	updated, err := h.developmentService.Update(c.Request.Context(), id, &development, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"development": updated.ToResponse()})
}

// @Summary Delete Development
// @Description Only developments without proposals can be deleted
// @Tags Developments
// @Produce json
// @Param development_id path int true "Development ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /developments/{development_id} [delete]
func (h *DevelopmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	if err := h.developmentService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empreendimento excluído"})
}

// @Summary Upload Development Image
// @Description Stores the image and a thumbnail
// @Tags Developments
// @Accept multipart/form-data
// @Produce json
// @Param development_id path int true "Development ID"
// @Param image formData file true "JPG or PNG image"
// @Success 200 {object} models.DevelopmentResponse
// @Security BearerAuth
// @Router /developments/{development_id}/image [post]
func (h *DevelopmentHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		badRequest(c, "arquivo de imagem é obrigatório")
		return
	}
	defer file.Close()

	development, err := h.developmentService.UploadImage(c.Request.Context(), id, file, header, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"development": development.ToResponse()})
}

// @Summary List Unit Types of a Development
// @Tags Unit Types
// @Produce json
// @Param development_id path int true "Development ID"
// @Param active query bool false "Only active unit types"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /developments/{development_id}/unit_types [get]
func (h *DevelopmentHandler) UnitTypes(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	unitTypes, err := h.unitTypeService.FindByDevelopment(c.Request.Context(), id, c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]models.UnitTypeResponse, 0, len(unitTypes))
	for i := range unitTypes {
		responses = append(responses, unitTypes[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"unit_types": responses})
}

// @Summary List Units of a Development
// @Tags Units
// @Produce json
// @Param development_id path int true "Development ID"
// @Param status query string false "Filter by status (available, reserved, sold, blocked)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /developments/{development_id}/units [get]
func (h *DevelopmentHandler) Units(c *gin.Context) {
	id, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	units, err := h.unitService.FindByDevelopment(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]models.UnitResponse, 0, len(units))
	for i := range units {
		responses = append(responses, units[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"units": responses})
}

type UnitTypeHandler struct {
	unitTypeService *services.UnitTypeService
}

func NewUnitTypeHandler(unitTypeService *services.UnitTypeService) *UnitTypeHandler {
	return &UnitTypeHandler{unitTypeService: unitTypeService}
}

// @Summary Create Unit Type
// @Tags Unit Types
// @Accept json
// @Produce json
// @Param development_id path int true "Development ID"
// @Param request body models.UnitType true "Unit Type Data"
// @Success 201 {object} models.UnitTypeResponse
// @Security BearerAuth
// @Router /developments/{development_id}/unit_types [post]
func (h *UnitTypeHandler) Create(c *gin.Context) {
	developmentID, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	var unitType models.UnitType
	if err := BindNestedOrFlat(c, "unit_type", &unitType); err != nil {
		badRequest(c, "dados da tipologia inválidos")
		return
	}
	if err := h.unitTypeService.Create(c.Request.Context(), developmentID, &unitType, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"unit_type": unitType.ToResponse()})
}

// @Summary Update Unit Type
// @Tags Unit Types
// @Accept json
// @Produce json
// @Param unit_type_id path int true "Unit Type ID"
// @Param request body models.UnitType true "Unit Type Data"
// @Success 200 {object} models.UnitTypeResponse
// @Security BearerAuth
// @Router /unit_types/{unit_type_id} [put]
func (h *UnitTypeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "unit_type_id")
	if !ok {
		return
	}
	unitType := models.UnitType{Active: true}
	if err := BindNestedOrFlat(c, "unit_type", &unitType); err != nil {
		badRequest(c, "dados da tipologia inválidos")
		return
	}
	updated, err := h.unitTypeService.Update(c.Request.Context(), id, &unitType, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit_type": updated.ToResponse()})
}

// @Summary Delete Unit Type
// @Description Only unit types no unit uses can be deleted
// @Tags Unit Types
// @Produce json
// @Param unit_type_id path int true "Unit Type ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /unit_types/{unit_type_id} [delete]
func (h *UnitTypeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "unit_type_id")
	if !ok {
		return
	}
	if err := h.unitTypeService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tipologia excluída"})
}

// @Summary Upload Unit Type Image
// @Tags Unit Types
// @Accept multipart/form-data
// @Produce json
// @Param unit_type_id path int true "Unit Type ID"
// @Param image formData file true "JPG or PNG image"
// @Success 200 {object} models.UnitTypeResponse
// @Security BearerAuth
// @Router /unit_types/{unit_type_id}/image [post]
func (h *UnitTypeHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "unit_type_id")
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		badRequest(c, "arquivo de imagem é obrigatório")
		return
	}
	defer file.Close()

	unitType, err := h.unitTypeService.UploadImage(c.Request.Context(), id, file, header, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit_type": unitType.ToResponse()})
}

type UnitHandler struct {
	unitService *services.UnitService
}

func NewUnitHandler(unitService *services.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// @Summary Get Unit
// @Tags Units
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Success 200 {object} models.UnitResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /units/{unit_id} [get]
func (h *UnitHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	unit, err := h.unitService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": unit.ToResponse()})
}

// @Summary Create Unit
// @Tags Units
// @Accept json
// @Produce json
// @Param development_id path int true "Development ID"
// @Param request body models.Unit true "Unit Data"
// @Success 201 {object} models.UnitResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /developments/{development_id}/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	developmentID, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	var unit models.Unit
	if err := BindNestedOrFlat(c, "unit", &unit); err != nil {
		badRequest(c, "dados da unidade inválidos")
		return
	}
	if err := h.unitService.Create(c.Request.Context(), developmentID, &unit, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"unit": unit.ToResponse()})
}

// @Summary Create Units in Batch
// @Description Creates units named "<prefix> NN". Identifiers that already exist are skipped and reported.
// @Tags Units
// @Accept json
// @Produce json
// @Param development_id path int true "Development ID"
// @Param request body services.BatchInput true "Batch Data"
// @Success 201 {object} services.BatchResult
// @Security BearerAuth
// @Router /developments/{development_id}/units/batch [post]
func (h *UnitHandler) CreateBatch(c *gin.Context) {
	developmentID, ok := paramID(c, "development_id")
	if !ok {
		return
	}
	var in services.BatchInput
	if err := BindNestedOrFlat(c, "batch", &in); err != nil {
		badRequest(c, "dados do lote inválidos")
		return
	}
	result, err := h.unitService.CreateBatch(c.Request.Context(), developmentID, in, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	created := make([]models.UnitResponse, 0, len(result.Created))
	for i := range result.Created {
		created = append(created, result.Created[i].ToResponse())
	}
	c.JSON(http.StatusCreated, gin.H{"created": created, "skipped": result.Skipped})
}

// @Summary Update Unit
// @Tags Units
// @Accept json
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param request body models.Unit true "Unit Data"
// @Success 200 {object} models.UnitResponse
// @Security BearerAuth
// @Router /units/{unit_id} [put]
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	var unit models.Unit
	if err := BindNestedOrFlat(c, "unit", &unit); err != nil {
		badRequest(c, "dados da unidade inválidos")
		return
	}
	updated, err := h.unitService.Update(c.Request.Context(), id, &unit, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": updated.ToResponse()})
}

// @Summary Delete Unit
// @Description Only units without proposals or contracts can be deleted
// @Tags Units
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /units/{unit_id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	if err := h.unitService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unidade excluída"})
}

type BlockRequest struct {
	Reason string `json:"reason"`
}

// @Summary Block Unit
// @Description Takes a unit off the market
// @Tags Units
// @Accept json
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param request body BlockRequest false "Reason"
// @Success 200 {object} models.UnitResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /units/{unit_id}/block [post]
func (h *UnitHandler) Block(c *gin.Context) {
	id, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	var req BlockRequest
	_ = c.ShouldBindJSON(&req)

	unit, err := h.unitService.Block(c.Request.Context(), middleware.GetPolicy(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": unit.ToResponse(), "message": "unidade bloqueada"})
}

// @Summary Unblock Unit
// @Tags Units
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Success 200 {object} models.UnitResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /units/{unit_id}/unblock [post]
func (h *UnitHandler) Unblock(c *gin.Context) {
	id, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	unit, err := h.unitService.Unblock(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": unit.ToResponse(), "message": "unidade desbloqueada"})
}
