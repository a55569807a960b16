package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicrm/internal/models/request_models"
	"clinicrm/internal/services"
	"clinicrm/pkg/utils"
)

type MeetingController struct {
	meetingService services.MeetingServiceInterface
}

func NewMeetingController(meetingService services.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
	}
}

// CreateMeeting godoc
// @Summary Schedule a meeting
// @Tags Meetings
// @Accept json
// @Produce json
// @Param request body request_models.CreateMeetingRequest true "Meeting payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /meetings [post]
func (mc *MeetingController) CreateMeeting(c *gin.Context) {
	var req request_models.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meeting, err := mc.meetingService.CreateMeeting(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meeting, "Meeting created successfully")
}

// ListCustomerMeetings godoc
// @Summary List a customer's meetings
// @Tags Meetings
// @Produce json
// @Param customerId path string true "Customer id"
// @Success 200 {object} utils.APIResponse
// @Router /meetings/customer/{customerId} [get]
func (mc *MeetingController) ListCustomerMeetings(c *gin.Context) {

	meetings, err := mc.meetingService.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meetings, "Meetings fetched successfully")
}

// UpdateMeetingStatus godoc
// @Summary Update a meeting's status
// @Tags Meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting id"
// @Param request body request_models.UpdateMeetingStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meetings/{id}/status [patch]
func (mc *MeetingController) UpdateMeetingStatus(c *gin.Context) {
	var req request_models.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := mc.meetingService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meeting status updated successfully")
}

// DeleteMeeting godoc
// @Summary Delete a meeting
// @Tags Meetings
// @Produce json
// @Param id path string true "Meeting id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /meetings/{id} [delete]
func (mc *MeetingController) DeleteMeeting(c *gin.Context) {

	if err := mc.meetingService.DeleteMeeting(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meeting deleted successfully")
}
