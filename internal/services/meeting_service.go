package services

import (
	"context"

	"github.com/google/uuid"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/utils"
)

type MeetingServiceInterface interface {
	CreateMeeting(ctx context.Context, req request_models.CreateMeetingRequest, userID string) (*db_models.Meeting, error)
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.Meeting, error)
	UpdateStatus(ctx context.Context, meetingID string, status string) error
	DeleteMeeting(ctx context.Context, meetingID string) error
}

type MeetingService struct {
	meetingRepo repositories.IMeetingRepository
}

func NewMeetingService(meetingRepo repositories.IMeetingRepository) MeetingServiceInterface {
	return &MeetingService{
		meetingRepo: meetingRepo,
	}
}

func (m *MeetingService) CreateMeeting(ctx context.Context, req request_models.CreateMeetingRequest, userID string) (*db_models.Meeting, error) {

	scheduledAt, err := utils.ParseScheduleDate(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	meeting := &db_models.Meeting{
		CustomerID:  customerID,
		UserID:      parseActorID(userID),
		Title:       req.Title,
		ScheduledAt: scheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      db_models.MeetingStatusPlanned,
	}

	if err := m.meetingRepo.Insert(ctx, meeting); err != nil {
		return nil, utils.TranslateDBError(err, false)
	}
	return meeting, nil
}

func (m *MeetingService) ListByCustomer(ctx context.Context, customerID string) ([]db_models.Meeting, error) {

	meetings, err := m.meetingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return meetings, nil
}

func (m *MeetingService) UpdateStatus(ctx context.Context, meetingID string, status string) error {

	affected, err := m.meetingRepo.UpdateStatus(ctx, meetingID, status)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrMeetingNotFound
	}
	return nil
}

func (m *MeetingService) DeleteMeeting(ctx context.Context, meetingID string) error {

	affected, err := m.meetingRepo.Delete(ctx, meetingID)
	if err != nil {
		return utils.TranslateDBError(err, true)
	}
	if affected == 0 {
		return utils.ErrMeetingNotFound
	}
	return nil
}
