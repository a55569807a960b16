package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clinicrm/internal/models/request_models"
	"clinicrm/internal/services"
	"clinicrm/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerController(customerService services.CustomerServiceInterface) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Description Register a customer or lead; phone or email required
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.CreateCustomerRequest true "Customer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /customers [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req request_models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customer, err := cc.customerService.CreateCustomer(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Customer created successfully")
}

// ListCustomers godoc
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Router /customers [get]
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	customers, err := cc.customerService.ListCustomers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customers, "Customers fetched successfully")
}

// GetCustomer godoc
// @Summary Get one customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id} [get]
func (cc *CustomerController) GetCustomer(c *gin.Context) {

	customer, err := cc.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Customer fetched successfully")
}

// AddNote godoc
// @Summary Add a note to a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Param request body request_models.CreateCustomerNoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id}/notes [post]
func (cc *CustomerController) AddNote(c *gin.Context) {
	var req request_models.CreateCustomerNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.customerService.AddNote(c.Request.Context(), c.Param("id"), req, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Note added successfully")
}

// ListNotes godoc
// @Summary List a customer's notes
// @Tags Customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Router /customers/{id}/notes [get]
func (cc *CustomerController) ListNotes(c *gin.Context) {

	notes, err := cc.customerService.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notes, "Notes fetched successfully")
}

// ListHistory godoc
// @Summary List a customer's audit history
// @Tags Customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Router /customers/{id}/history [get]
func (cc *CustomerController) ListHistory(c *gin.Context) {

	entries, err := cc.customerService.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "History fetched successfully")
}

// CreateStatus godoc
// @Summary Create a customer status
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.CreateCustomerStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Router /customers/statuses [post]
func (cc *CustomerController) CreateStatus(c *gin.Context) {
	var req request_models.CreateCustomerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.customerService.CreateStatus(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status created successfully")
}

// ListStatuses godoc
// @Summary List customer statuses
// @Tags Customers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /customers/statuses [get]
func (cc *CustomerController) ListStatuses(c *gin.Context) {

	statuses, err := cc.customerService.ListStatuses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, statuses, "Statuses fetched successfully")
}
