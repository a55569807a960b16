package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicrm/internal/models/request_models"
	"clinicrm/internal/services"
	"clinicrm/pkg/utils"
)

type OperationController struct {
	operationService    services.OperationServiceInterface
	notificationService services.NotificationServiceInterface
}

func NewOperationController(
	operationService services.OperationServiceInterface,
	notificationService services.NotificationServiceInterface) *OperationController {
	return &OperationController{
		operationService:    operationService,
		notificationService: notificationService,
	}
}

// CreateOperationType godoc
// @Summary Create an operation type
// @Description Register a named operation kind in the catalog
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body request_models.CreateOperationTypeRequest true "Operation type payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /operations/types [post]
func (o *OperationController) CreateOperationType(c *gin.Context) {
	var req request_models.CreateOperationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	opType, err := o.operationService.CreateOperationType(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, opType, "Operation type created successfully")
}

// ListOperationTypes godoc
// @Summary List operation types
// @Description Fetch all operation types ordered by name
// @Tags Operations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /operations/types [get]
func (o *OperationController) ListOperationTypes(c *gin.Context) {

	opTypes, err := o.operationService.ListOperationTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, opTypes, "Operation types fetched successfully")
}

// SchedulePlan godoc
// @Summary Schedule a follow-up plan
// @Description Create a follow-up plan for a customer from a base date
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body request_models.SchedulePlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /operations/schedule [post]
func (o *OperationController) SchedulePlan(c *gin.Context) {
	var req request_models.SchedulePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := o.operationService.SchedulePlan(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Follow-up plan created successfully")
}

// ListCustomerPlans godoc
// @Summary List a customer's follow-up plans
// @Tags Operations
// @Produce json
// @Param customerId path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Router /operations/followups/{customerId} [get]
func (o *OperationController) ListCustomerPlans(c *gin.Context) {

	plans, err := o.operationService.ListPlansByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Follow-up plans fetched successfully")
}

// DeletePlan godoc
// @Summary Delete a follow-up plan
// @Tags Operations
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /operations/schedule/{id} [delete]
func (o *OperationController) DeletePlan(c *gin.Context) {

	if err := o.operationService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Follow-up plan deleted successfully")
}

// UpdateFollowupItem godoc
// @Summary Update one follow-up item
// @Description Partially update the done flag and note of a single item
// @Tags Operations
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Param request body request_models.UpdateFollowupItemRequest true "Item update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /operations/followups/{id}/item [patch]
func (o *OperationController) UpdateFollowupItem(c *gin.Context) {
	var req request_models.UpdateFollowupItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := o.operationService.UpdateFollowupItem(c.Request.Context(), c.Param("id"), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Follow-up item updated successfully")
}

// ListNotifications godoc
// @Summary Scan due follow-up notifications
// @Description Stateless scan of day follow-ups due today or overdue
// @Tags Operations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /operations/notifications [get]
func (o *OperationController) ListNotifications(c *gin.Context) {

	notifications, err := o.notificationService.ScanFollowups(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}
